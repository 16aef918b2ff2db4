package processing

import (
	"time"

	"github.com/five82/tcutil/internal/reporter"
	"github.com/five82/tcutil/internal/timecode"
)

// FrameAt looks up the frame displayed at ts.
func FrameAt(inputPath string, tc *timecode.Timecode, ts time.Duration) reporter.QueryResult {
	frame := tc.FrameAtTime(ts)
	return reporter.QueryResult{
		InputFile: inputPath,
		Frame:     frame,
		Time:      tc.TimeAtFrame(frame),
		Clamped:   ts < 0 || ts >= tc.TotalLength(),
	}
}

// TimeAt looks up the presentation time of frame.
func TimeAt(inputPath string, tc *timecode.Timecode, frame int) reporter.QueryResult {
	return reporter.QueryResult{
		InputFile: inputPath,
		Frame:     frame,
		Time:      tc.TimeAtFrame(frame),
		Clamped:   frame < 0 || frame >= tc.TotalFrames(),
	}
}
