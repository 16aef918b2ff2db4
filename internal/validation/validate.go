package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/five82/tcutil/internal/timecode"
)

const (
	// durationTolerance is the maximum allowed difference in total length.
	durationTolerance = time.Millisecond
	// maxDriftMs is the maximum allowed per-frame timestamp drift in milliseconds.
	maxDriftMs = 1.0
)

// Options contains the expectations for a written file.
type Options struct {
	// ExpectedVersion is the format the file was written in.
	ExpectedVersion timecode.Version
	// Expected is the timeline that was encoded.
	Expected *timecode.Timecode
}

// ValidateOutput re-reads outputPath and compares it with the encoded timeline.
// It delegates to ValidateWithReader using the FileReader.
func ValidateOutput(outputPath string, opts Options) (*Result, error) {
	return ValidateWithReader(NewFileReader(), outputPath, opts)
}

// ValidateWithReader performs validation using a TimecodeReader interface.
func ValidateWithReader(reader TimecodeReader, outputPath string, opts Options) (*Result, error) {
	if opts.Expected == nil {
		return nil, fmt.Errorf("no expected timeline for %s", outputPath)
	}
	expected := opts.Expected

	actual, err := reader.ReadTimecode(outputPath, expected.TotalFrames())
	if err != nil {
		return nil, fmt.Errorf("failed to read written timecode: %w", err)
	}

	result := &Result{
		ActualVersion:    actual.Version().String(),
		ExpectedVersion:  opts.ExpectedVersion.String(),
		ActualFrames:     actual.TotalFrames(),
		ExpectedFrames:   expected.TotalFrames(),
		ActualDuration:   actual.TotalLength(),
		ExpectedDuration: expectedLength(expected, opts.ExpectedVersion),
	}
	result.IsFormatCorrect = actual.Version() == opts.ExpectedVersion
	result.IsFrameCountCorrect, result.FrameMessage = validateFrameCount(result.ActualFrames, result.ExpectedFrames)
	result.IsDurationCorrect, result.DurationMessage = validateDuration(result.ActualDuration, result.ExpectedDuration)

	if result.IsFrameCountCorrect {
		drift, frame := maxDrift(actual, expected, opts.ExpectedVersion != timecode.V2)
		result.MaxDriftMs = &drift
		result.DriftFrame = frame
		result.IsTimelinePreserved, result.TimelineMessage = validateDrift(drift, frame)
	} else {
		result.TimelineMessage = "Timeline comparison skipped"
	}

	return result, nil
}

// expectedLength is the total length a file of the given version can carry.
// A v2 file stores frame start times only, so its last frame lasts as long as
// the frame before it.
func expectedLength(tc *timecode.Timecode, version timecode.Version) time.Duration {
	n := tc.TotalFrames()
	if version != timecode.V2 || n < 2 {
		return tc.TotalLength()
	}
	last := tc.TimeAtFrame(n - 1)
	return last + last - tc.TimeAtFrame(n-2)
}

// validateFrameCount checks that the frame counts match.
func validateFrameCount(actual, expected int) (bool, string) {
	if actual == expected {
		return true, fmt.Sprintf("%d frames", actual)
	}
	return false, fmt.Sprintf("Frame count mismatch: got %d, expected %d", actual, expected)
}

// validateDuration checks that total length is within tolerance.
func validateDuration(actual, expected time.Duration) (bool, string) {
	diff := actual - expected
	if diff < 0 {
		diff = -diff
	}
	if diff <= durationTolerance {
		return true, fmt.Sprintf("Length matches (%.3fs)", actual.Seconds())
	}
	return false, fmt.Sprintf("Length mismatch: got %.3fs, expected %.3fs (diff: %.3fms)",
		actual.Seconds(), expected.Seconds(), float64(diff)/float64(time.Millisecond))
}

// validateDrift checks the largest timestamp difference.
func validateDrift(driftMs float64, frame int) (bool, string) {
	if driftMs <= maxDriftMs {
		return true, fmt.Sprintf("Timestamps preserved (max drift %.3fms)", driftMs)
	}
	return false, fmt.Sprintf("Timestamp drift too large: %.3fms at frame %d (max: %.1fms)", driftMs, frame, maxDriftMs)
}

// maxDrift compares the two timelines at every range boundary of either one.
// Within a range both timelines are linear, so the boundaries bound the drift.
// withEnd adds the end of the last frame.
func maxDrift(actual, expected *timecode.Timecode, withEnd bool) (float64, int) {
	frames := map[int]struct{}{}
	if withEnd {
		frames[actual.TotalFrames()] = struct{}{}
	}
	for _, tc := range []*timecode.Timecode{actual, expected} {
		for _, iv := range tc.Intervals() {
			frames[iv.StartFrame] = struct{}{}
			frames[iv.EndFrame] = struct{}{}
		}
	}

	var worst float64
	worstFrame := 0
	for frame := range frames {
		d := math.Abs(float64(actual.TimeAtFrame(frame)-expected.TimeAtFrame(frame))) / float64(time.Millisecond)
		if d > worst || (d == worst && frame < worstFrame) {
			worst, worstFrame = d, frame
		}
	}
	return worst, worstFrame
}
