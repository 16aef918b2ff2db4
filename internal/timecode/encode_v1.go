package timecode

import (
	"fmt"
	"io"
)

// encodeV1 writes the assume line for defaultInterval followed by every range
// whose duration differs from it. Omitted ranges are restored by gap filling on
// decode.
func encodeV1(w io.Writer, intervals []RangeInterval, defaultInterval float64) error {
	if _, err := fmt.Fprintln(w, "# timecode format v1"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Assume %.6f\n", TicksPerSecond/defaultInterval); err != nil {
		return err
	}
	for _, iv := range intervals {
		if iv.Interval == defaultInterval {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d,%d,%.6f\n", iv.StartFrame, iv.EndFrame, iv.FrameRate()); err != nil {
			return err
		}
	}
	return nil
}
