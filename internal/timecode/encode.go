package timecode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/five82/tcutil/internal/errors"
)

// ProgressStep is the number of frames between progress callbacks during v2 output.
const ProgressStep = 10000

// EncodeOptions controls Encode.
type EncodeOptions struct {
	// Rate overrides the default frame rate of the output. Zero selects the
	// Timecode's own default frame rate.
	Rate float64
	// Fix rebases the ranges running at the default interval onto Rate before
	// encoding. Requires Rate.
	Fix bool
	// Progress, when set, receives frames written and total frames during v2 output.
	Progress func(done, total int)
}

// Encode writes tc to w in the given format.
func Encode(tc *Timecode, w io.Writer, version Version, opts EncodeOptions) error {
	if !version.Valid() {
		return errors.NewArgumentError(fmt.Sprintf("cannot encode timecode version %s", version))
	}
	if opts.Rate != 0 {
		if err := validateRate(opts.Rate); err != nil {
			return err
		}
	}
	if opts.Fix {
		if opts.Rate == 0 {
			return errors.NewArgumentError("fix mode requires a target frame rate")
		}
		rebased, err := tc.Rebase(opts.Rate)
		if err != nil {
			return err
		}
		tc = rebased
	}

	bw := bufio.NewWriter(w)
	var err error
	switch version {
	case V1:
		interval := tc.effectiveDefaultInterval()
		if opts.Rate != 0 {
			interval = normalizeInterval(TicksPerSecond / opts.Rate)
		}
		if interval == 0 {
			return errors.NewArgumentError("cannot choose a default frame rate for an empty timecode, specify a target rate")
		}
		err = encodeV1(bw, tc.intervals, interval)
	case V2:
		err = encodeV2(bw, tc.intervals, opts.Progress)
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("writing timecode %s", version), err)
	}
	return nil
}
