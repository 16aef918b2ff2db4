// Package processing implements the info, query and convert operations on
// timecode files.
package processing

import (
	"fmt"

	"github.com/five82/tcutil/internal/errors"
	"github.com/five82/tcutil/internal/logging"
	"github.com/five82/tcutil/internal/streamio"
	"github.com/five82/tcutil/internal/timecode"
)

// Load decodes the timecode file at path. "-" reads standard input and xz
// input is decompressed transparently.
func Load(path string, opts timecode.DecodeOptions, log *logging.Logger) (*timecode.Timecode, error) {
	in, err := streamio.Open(path)
	if err != nil {
		return nil, errors.NewIOError("opening input", err)
	}
	defer func() { _ = in.Close() }()

	tc, err := timecode.Decode(in, opts)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	log.WithFields(logging.Fields{
		"input":     path,
		"version":   tc.Version().String(),
		"frames":    tc.TotalFrames(),
		"intervals": len(tc.Intervals()),
	}).Debug("Decoded timecode")
	return tc, nil
}
