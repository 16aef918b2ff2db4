// Package streamio opens timecode inputs and outputs, handling "-" for the
// standard streams and xz compression.
package streamio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/five82/tcutil/internal/util"
	"github.com/ulikunitz/xz"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

// xzMagic starts every xz stream.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// Input is a readable timecode source.
type Input struct {
	io.Reader
	file *os.File
}

// Open opens path for reading. Compressed input is detected from the stream
// header, so the extension does not matter.
func Open(path string) (*Input, error) {
	var f *os.File
	if path == Stdio {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
	}

	in, err := newInput(f)
	if err != nil {
		if f != os.Stdin {
			_ = f.Close()
		}
		return nil, err
	}
	if f != os.Stdin {
		in.file = f
	}
	return in, nil
}

// NewInput wraps r, decompressing it when it starts with an xz header.
func NewInput(r io.Reader) (*Input, error) {
	return newInput(r)
}

func newInput(r io.Reader) (*Input, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if !bytes.Equal(head, xzMagic) {
		return &Input{Reader: br}, nil
	}

	xzr, err := xz.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("xz reader: %w", err)
	}
	return &Input{Reader: xzr}, nil
}

// Close closes the underlying file. Standard input is left open.
func (in *Input) Close() error {
	if in.file == nil {
		return nil
	}
	return in.file.Close()
}

// OutputOptions controls Create.
type OutputOptions struct {
	// Overwrite replaces an existing file. Otherwise Create fails if path exists.
	Overwrite bool
	// Compress writes an xz stream.
	Compress bool
}

// Output is a writable timecode destination.
type Output struct {
	w       io.Writer
	counter *countingWriter
	xzw     *xz.Writer
	file    *os.File
	path    string
}

// Create opens path for writing. Missing parent directories are created.
func Create(path string, opts OutputOptions) (*Output, error) {
	var f *os.File
	if path == Stdio {
		f = os.Stdout
	} else {
		if err := util.EnsureDirectory(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
		flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
		if opts.Overwrite {
			flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		}
		var err error
		f, err = os.OpenFile(path, flags, 0644)
		if err != nil {
			return nil, fmt.Errorf("create output: %w", err)
		}
	}

	out, err := newOutput(f, opts.Compress)
	if err != nil {
		if f != os.Stdout {
			_ = f.Close()
			_ = os.Remove(path)
		}
		return nil, err
	}
	if f != os.Stdout {
		out.file = f
		out.path = path
	}
	return out, nil
}

// NewOutput wraps w. Closing the Output does not close w.
func NewOutput(w io.Writer, compress bool) (*Output, error) {
	return newOutput(w, compress)
}

func newOutput(w io.Writer, compress bool) (*Output, error) {
	counter := &countingWriter{w: w}
	out := &Output{w: counter, counter: counter}
	if compress {
		xzw, err := xz.NewWriter(counter)
		if err != nil {
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		out.xzw = xzw
		out.w = xzw
	}
	return out, nil
}

func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Path returns the file path, or "" for standard output and wrapped writers.
func (o *Output) Path() string {
	return o.path
}

// BytesWritten returns the number of bytes that reached the destination.
func (o *Output) BytesWritten() int64 {
	return o.counter.n
}

// Close flushes the compressor and closes the file.
func (o *Output) Close() error {
	var firstErr error
	if o.xzw != nil {
		firstErr = o.xzw.Close()
		o.xzw = nil
	}
	if o.file != nil {
		if err := o.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		o.file = nil
	}
	return firstErr
}

// Abort closes the output and removes a partially written file.
func (o *Output) Abort() error {
	o.xzw = nil
	if o.file != nil {
		_ = o.file.Close()
		o.file = nil
	}
	if o.path == "" {
		return nil
	}
	return os.Remove(o.path)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
