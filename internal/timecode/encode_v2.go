package timecode

import (
	"io"
	"strconv"
)

// encodeV2 expands every frame to one millisecond timestamp.
func encodeV2(w io.Writer, intervals []RangeInterval, progress func(done, total int)) error {
	if _, err := io.WriteString(w, "# timecode format v2\n"); err != nil {
		return err
	}

	total := 0
	if len(intervals) > 0 {
		total = intervals[len(intervals)-1].EndFrame + 1
	}

	var (
		buf     []byte
		elapsed float64
		frame   int
	)
	for _, iv := range intervals {
		for ; frame <= iv.EndFrame; frame++ {
			buf = strconv.AppendFloat(buf[:0], elapsed/TicksPerMillisecond, 'f', 6, 64)
			buf = append(buf, '\n')
			if _, err := w.Write(buf); err != nil {
				return err
			}
			elapsed += iv.Interval
			if progress != nil && (frame+1)%ProgressStep == 0 {
				progress(frame+1, total)
			}
		}
	}
	if progress != nil {
		progress(total, total)
	}
	return nil
}
