package timecode

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/five82/tcutil/internal/errors"
)

// maxFrame is the largest frame number an override may name.
const maxFrame = math.MaxInt32 - 1

var (
	assumePattern   = regexp.MustCompile(`(?i)^assume\s+(\d+(?:\.\d*)?)$`)
	overridePattern = regexp.MustCompile(`^(\d+)\s*,\s*(\d+)\s*,\s*(\d+(?:\.\d*)?)$`)
)

// override is an explicit frame range together with where it was read.
type override struct {
	RangeInterval
	line    int
	content string
}

func decodeV1(lr *lineReader, frames int) (*Timecode, error) {
	line, lineNo, ok := lr.next()
	if !ok {
		if err := lr.err(); err != nil {
			return nil, err
		}
		return nil, errors.NewFormatError("missing default rate: no \"assume\" line found")
	}
	m := assumePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.NewLineFormatError(lineNo, line, "missing default rate: expected \"assume <rate>\" before any frame range")
	}
	defaultRate, err := parseRate(m[1])
	if err != nil {
		return nil, errors.NewLineFormatError(lineNo, line, err.Error())
	}
	defaultInterval := TicksPerSecond / defaultRate

	var overrides []override
	for {
		line, lineNo, ok := lr.next()
		if !ok {
			break
		}
		o, err := parseOverride(line)
		if err != nil {
			return nil, errors.NewLineFormatError(lineNo, line, err.Error())
		}
		o.line, o.content = lineNo, line
		overrides = append(overrides, o)
	}
	if err := lr.err(); err != nil {
		return nil, err
	}

	intervals, err := mergeOverrides(overrides, defaultInterval)
	if err != nil {
		return nil, err
	}

	tc := newTimecode(V1, intervals, defaultInterval)
	return tc.WithTotalFrames(frames), nil
}

func parseOverride(line string) (override, error) {
	m := overridePattern.FindStringSubmatch(line)
	if m == nil {
		return override{}, fmt.Errorf("illegal line, expected \"<start>,<end>,<rate>\"")
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return override{}, fmt.Errorf("invalid start frame: %w", err)
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return override{}, fmt.Errorf("invalid end frame: %w", err)
	}
	if start > end {
		return override{}, fmt.Errorf("the start frame %d is greater than the end frame %d", start, end)
	}
	if end > maxFrame {
		return override{}, fmt.Errorf("end frame %d is out of range (max %d)", end, maxFrame)
	}
	rate, err := parseRate(m[3])
	if err != nil {
		return override{}, err
	}
	return override{RangeInterval: RangeInterval{StartFrame: start, EndFrame: end, Interval: TicksPerSecond / rate}}, nil
}

func parseRate(s string) (float64, error) {
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("frame rate must be positive, got %s", s)
	}
	return rate, nil
}

// mergeOverrides sorts explicit ranges and fills the gaps between them with the
// default interval. Overlapping ranges are rejected.
func mergeOverrides(overrides []override, defaultInterval float64) ([]RangeInterval, error) {
	sort.SliceStable(overrides, func(i, j int) bool {
		return overrides[i].StartFrame < overrides[j].StartFrame
	})

	intervals := make([]RangeInterval, 0, 2*len(overrides))
	lastStart, lastEnd := -1, -1
	for _, o := range overrides {
		if o.StartFrame <= lastEnd {
			return nil, errors.NewLineFormatError(o.line, o.content,
				fmt.Sprintf("frame range %d-%d and %d-%d overlapped", lastStart, lastEnd, o.StartFrame, o.EndFrame))
		}
		if o.StartFrame-lastEnd > 1 {
			intervals = append(intervals, RangeInterval{
				StartFrame: lastEnd + 1,
				EndFrame:   o.StartFrame - 1,
				Interval:   defaultInterval,
			})
		}
		intervals = append(intervals, o.RangeInterval)
		lastStart, lastEnd = o.StartFrame, o.EndFrame
	}
	return intervals, nil
}
