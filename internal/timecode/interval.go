// Package timecode models frame-accurate timing for video streams and converts
// between the v1 (default rate plus overrides) and v2 (one timestamp per frame)
// timecode file formats.
//
// Durations are kept in ticks of 100 nanoseconds so that frame arithmetic stays
// in the same unit regardless of the text format the data came from.
package timecode

import "fmt"

const (
	// TicksPerSecond is the number of 100ns ticks in one second.
	TicksPerSecond = 1e7

	// TicksPerMillisecond is the number of 100ns ticks in one millisecond.
	TicksPerMillisecond = 1e4
)

// RangeInterval is a closed frame range in which every frame has the same duration.
type RangeInterval struct {
	StartFrame int
	EndFrame   int
	Interval   float64 // ticks per frame
}

// Frames returns the number of frames covered by the range.
func (r RangeInterval) Frames() int {
	return r.EndFrame - r.StartFrame + 1
}

// Duration returns the total duration of the range in ticks.
func (r RangeInterval) Duration() float64 {
	return r.Interval * float64(r.Frames())
}

// FrameRate returns the frame rate of the range in frames per second.
func (r RangeInterval) FrameRate() float64 {
	return TicksPerSecond / r.Interval
}

// Contains reports whether frame falls inside the range.
func (r RangeInterval) Contains(frame int) bool {
	return frame >= r.StartFrame && frame <= r.EndFrame
}

func (r RangeInterval) String() string {
	return fmt.Sprintf("%d-%d@%.6f", r.StartFrame, r.EndFrame, r.FrameRate())
}
