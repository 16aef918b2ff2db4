package timecode

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/five82/tcutil/internal/errors"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

var headerPattern = regexp.MustCompile(`^# time(?:code|stamp) format (v[12])\b`)

// DecodeOptions controls Decode.
type DecodeOptions struct {
	// Version forces the input format. VersionAuto requires a format header.
	Version Version
	// TotalFrames pads a v1 timecode with default-rate frames up to this count.
	// Ignored for v2 input.
	TotalFrames int
}

// Decode parses a v1 or v2 timecode stream. On any error no Timecode is returned.
func Decode(r io.Reader, opts DecodeOptions) (*Timecode, error) {
	if opts.Version != VersionAuto && !opts.Version.Valid() {
		return nil, errors.NewArgumentError(fmt.Sprintf("unsupported timecode version %s", opts.Version))
	}

	lr := newLineReader(r)
	version, err := lr.readHeader(opts.Version)
	if err != nil {
		return nil, err
	}

	switch version {
	case V1:
		return decodeV1(lr, opts.TotalFrames)
	default:
		return decodeV2(lr)
	}
}

// DetectVersion reads the format header from r without decoding the body.
func DetectVersion(r io.Reader) (Version, error) {
	return newLineReader(r).readHeader(VersionAuto)
}

// lineReader yields trimmed data lines, skipping blank lines and # comments.
type lineReader struct {
	scanner *bufio.Scanner
	lineNo  int
	pending *string
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineReader{scanner: scanner}
}

// readHeader consumes the format header. With a forced version the header is
// optional, but it must not name the other format.
func (lr *lineReader) readHeader(want Version) (Version, error) {
	var first string
	for lr.scanner.Scan() {
		lr.lineNo++
		line := strings.TrimSpace(strings.TrimPrefix(lr.scanner.Text(), "\ufeff"))
		if line != "" {
			first = line
			break
		}
	}
	if err := lr.scanner.Err(); err != nil {
		return VersionAuto, errors.NewIOError("reading timecode header", err)
	}

	m := headerPattern.FindStringSubmatch(first)
	if m == nil {
		if want == VersionAuto {
			if first == "" {
				return VersionAuto, errors.NewFormatError("empty input, expected a timecode format header")
			}
			return VersionAuto, errors.NewLineFormatError(lr.lineNo, first, "illegal file header or timecode version")
		}
		if first != "" {
			lr.pending = &first
		}
		return want, nil
	}

	found, _ := ParseVersion(m[1])
	if want != VersionAuto && found != want {
		return VersionAuto, errors.NewLineFormatError(lr.lineNo, first,
			fmt.Sprintf("header declares %s but %s was requested", found, want))
	}
	return found, nil
}

// next returns the next data line and its 1-based line number.
func (lr *lineReader) next() (string, int, bool) {
	if lr.pending != nil {
		line := *lr.pending
		lr.pending = nil
		if !strings.HasPrefix(line, "#") {
			return line, lr.lineNo, true
		}
	}
	for lr.scanner.Scan() {
		lr.lineNo++
		line := strings.TrimSpace(lr.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, lr.lineNo, true
	}
	return "", lr.lineNo, false
}

func (lr *lineReader) err() error {
	if err := lr.scanner.Err(); err != nil {
		return errors.NewIOError(fmt.Sprintf("reading timecode after line %d", lr.lineNo), err)
	}
	return nil
}
