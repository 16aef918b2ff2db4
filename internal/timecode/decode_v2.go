package timecode

import (
	"fmt"
	"math"
	"strconv"

	"github.com/five82/tcutil/internal/errors"
)

// runTolerance is how far, in milliseconds, a frame delta may drift from the
// previous one and still extend the current run.
const runTolerance = 1e-3

// decodeV2 compresses per-frame timestamps into runs of near-constant delta.
func decodeV2(lr *lineReader) (*Timecode, error) {
	var (
		intervals  []RangeInterval
		lastTime   float64
		lastDiff   float64
		hasDiff    bool
		firstTime  float64
		firstFrame int
		frame      = -1
	)

	for {
		line, lineNo, ok := lr.next()
		if !ok {
			break
		}
		t, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, errors.NewLineFormatError(lineNo, line, "invalid timestamp")
		}
		if t < 0 {
			return nil, errors.NewLineFormatError(lineNo, line, "negative timestamp")
		}
		frame++

		if frame == 0 {
			lastTime = t
			continue
		}

		if t == lastTime {
			// A duplicated first timestamp is tolerated; any later one is not.
			if frame != 1 {
				return nil, errors.NewLineFormatError(lineNo, line,
					fmt.Sprintf("frame %d and %d are displayed at the same time", frame-1, frame))
			}
			continue
		}
		if t < lastTime {
			return nil, errors.NewLineFormatError(lineNo, line,
				fmt.Sprintf("timestamps go backwards at frame %d", frame))
		}

		diff := t - lastTime
		if !hasDiff || math.Abs(diff-lastDiff) < runTolerance {
			lastDiff, hasDiff = diff, true
			lastTime = t
			continue
		}

		intervals = append(intervals, RangeInterval{
			StartFrame: firstFrame,
			EndFrame:   frame - 2,
			Interval:   TicksPerMillisecond * (lastTime - firstTime) / float64(frame-1-firstFrame),
		})
		firstFrame = frame - 1
		firstTime = lastTime
		lastDiff = diff
		lastTime = t
	}
	if err := lr.err(); err != nil {
		return nil, err
	}

	switch frame {
	case -1:
		return newTimecode(V2, nil, 0), nil
	case 0:
		return nil, errors.NewFormatError("a single timestamp does not define a frame duration")
	}

	final := TicksPerMillisecond * (lastTime - firstTime) / float64(frame-firstFrame)
	if final <= 0 {
		return nil, errors.NewFormatError("all timestamps are identical")
	}
	intervals = append(intervals, RangeInterval{
		StartFrame: firstFrame,
		EndFrame:   frame,
		Interval:   final,
	})
	return newTimecode(V2, intervals, final), nil
}
