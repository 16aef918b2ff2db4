package processing

import (
	"encoding/hex"

	"github.com/five82/tcutil/internal/reporter"
	"github.com/five82/tcutil/internal/timecode"
	"github.com/zeebo/blake3"
)

// Fingerprint hashes the frame timeline of tc with BLAKE3. The v2 rendering is
// hashed, so a v1 file and its v2 conversion share a fingerprint as long as
// they describe the same frames.
func Fingerprint(tc *timecode.Timecode) (string, error) {
	h := blake3.New()
	if err := timecode.Encode(tc, h, timecode.V2, timecode.EncodeOptions{}); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Summarize builds the info summary for tc.
func Summarize(inputPath string, tc *timecode.Timecode) (reporter.InfoSummary, error) {
	fingerprint, err := Fingerprint(tc)
	if err != nil {
		return reporter.InfoSummary{}, err
	}

	intervals := tc.Intervals()
	rows := make([]reporter.IntervalRow, len(intervals))
	for i, iv := range intervals {
		rows[i] = reporter.IntervalRow{
			StartFrame: iv.StartFrame,
			StartTime:  tc.TimeAtFrame(iv.StartFrame),
			EndFrame:   iv.EndFrame,
			EndTime:    tc.TimeAtFrame(iv.EndFrame),
			FrameRate:  iv.FrameRate(),
		}
	}

	return reporter.InfoSummary{
		InputFile:        inputPath,
		Version:          tc.Version().String(),
		TotalFrames:      tc.TotalFrames(),
		TotalLength:      tc.TotalLength(),
		AverageFrameRate: tc.AverageFrameRate(),
		DefaultFrameRate: tc.DefaultFrameRate(),
		Fingerprint:      fingerprint,
		Intervals:        rows,
	}, nil
}
