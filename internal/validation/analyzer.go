// Package validation provides post-conversion checks on written timecode files.
package validation

import (
	"github.com/five82/tcutil/internal/streamio"
	"github.com/five82/tcutil/internal/timecode"
)

// TimecodeReader re-reads a written timecode file.
// This interface allows validation logic to be tested without files.
type TimecodeReader interface {
	// ReadTimecode decodes the file at path. frames pads v1 output whose
	// trailing default-rate frames are implied rather than listed.
	ReadTimecode(path string, frames int) (*timecode.Timecode, error)
}

// FileReader reads timecode files from disk, decompressing xz transparently.
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

func (FileReader) ReadTimecode(path string, frames int) (*timecode.Timecode, error) {
	in, err := streamio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()
	return timecode.Decode(in, timecode.DecodeOptions{TotalFrames: frames})
}
