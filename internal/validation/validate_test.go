package validation

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/tcutil/internal/timecode"
)

// mockReader implements TimecodeReader for testing.
type mockReader struct {
	tc     *timecode.Timecode
	err    error
	frames int
}

func (m *mockReader) ReadTimecode(path string, frames int) (*timecode.Timecode, error) {
	m.frames = frames
	return m.tc, m.err
}

func mustNew(t *testing.T, version timecode.Version, intervals ...timecode.RangeInterval) *timecode.Timecode {
	t.Helper()
	tc, err := timecode.New(version, intervals)
	if err != nil {
		t.Fatalf("timecode.New() error = %v", err)
	}
	return tc
}

func TestValidateWithReader_Match(t *testing.T) {
	expected := mustNew(t, timecode.V1,
		timecode.RangeInterval{StartFrame: 0, EndFrame: 2, Interval: 400000},
		timecode.RangeInterval{StartFrame: 3, EndFrame: 6, Interval: 200000},
	)
	written := mustNew(t, timecode.V2,
		timecode.RangeInterval{StartFrame: 0, EndFrame: 2, Interval: 400000},
		timecode.RangeInterval{StartFrame: 3, EndFrame: 6, Interval: 200000},
	)
	reader := &mockReader{tc: written}

	result, err := ValidateWithReader(reader, "/fake/out.txt", Options{ExpectedVersion: timecode.V2, Expected: expected})
	if err != nil {
		t.Fatalf("ValidateWithReader() error = %v", err)
	}

	if !result.IsValid() {
		t.Errorf("IsValid() = false, want true. Failures: %v", result.GetFailures())
	}
	if reader.frames != 7 {
		t.Errorf("reader got frames = %d, want 7", reader.frames)
	}
	if result.MaxDriftMs == nil || *result.MaxDriftMs != 0 {
		t.Errorf("MaxDriftMs = %v, want 0", result.MaxDriftMs)
	}
	if len(result.GetValidationSteps()) != 4 {
		t.Errorf("expected 4 validation steps, got %d", len(result.GetValidationSteps()))
	}
}

func TestValidateWithReader_Failures(t *testing.T) {
	expected := mustNew(t, timecode.V2,
		timecode.RangeInterval{StartFrame: 0, EndFrame: 9, Interval: 400000},
	)

	tests := []struct {
		name       string
		written    *timecode.Timecode
		version    timecode.Version
		wantFailed []string
	}{
		{
			name:       "wrong format",
			written:    mustNew(t, timecode.V1, timecode.RangeInterval{StartFrame: 0, EndFrame: 9, Interval: 400000}),
			version:    timecode.V2,
			wantFailed: []string{"Format"},
		},
		{
			name:       "missing frames",
			written:    mustNew(t, timecode.V2, timecode.RangeInterval{StartFrame: 0, EndFrame: 7, Interval: 500000}),
			version:    timecode.V2,
			wantFailed: []string{"Frame count", "Timeline"},
		},
		{
			name: "drifting timeline",
			written: mustNew(t, timecode.V2,
				timecode.RangeInterval{StartFrame: 0, EndFrame: 4, Interval: 200000},
				timecode.RangeInterval{StartFrame: 5, EndFrame: 9, Interval: 600000},
			),
			version:    timecode.V2,
			wantFailed: []string{"Timeline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithReader(&mockReader{tc: tt.written}, "/fake/out.txt", Options{ExpectedVersion: tt.version, Expected: expected})
			if err != nil {
				t.Fatalf("ValidateWithReader() error = %v", err)
			}
			if result.IsValid() {
				t.Fatal("IsValid() = true, want false")
			}

			var failed []string
			for _, step := range result.GetValidationSteps() {
				if !step.Passed {
					failed = append(failed, step.Name)
				}
			}
			if strings.Join(failed, ",") != strings.Join(tt.wantFailed, ",") {
				t.Errorf("failed steps = %v, want %v", failed, tt.wantFailed)
			}
		})
	}
}

func TestValidateWithReader_DriftLocation(t *testing.T) {
	expected := mustNew(t, timecode.V2, timecode.RangeInterval{StartFrame: 0, EndFrame: 9, Interval: 400000})
	written := mustNew(t, timecode.V2,
		timecode.RangeInterval{StartFrame: 0, EndFrame: 4, Interval: 200000},
		timecode.RangeInterval{StartFrame: 5, EndFrame: 9, Interval: 600000},
	)

	result, err := ValidateWithReader(&mockReader{tc: written}, "/fake/out.txt", Options{ExpectedVersion: timecode.V2, Expected: expected})
	if err != nil {
		t.Fatalf("ValidateWithReader() error = %v", err)
	}
	// Frame 5 starts at 100ms instead of 200ms; both end at 400ms.
	if result.MaxDriftMs == nil || *result.MaxDriftMs != 100 {
		t.Fatalf("MaxDriftMs = %v, want 100", result.MaxDriftMs)
	}
	if result.DriftFrame != 5 {
		t.Errorf("DriftFrame = %d, want 5", result.DriftFrame)
	}
	if !result.IsDurationCorrect {
		t.Errorf("IsDurationCorrect = false: %s", result.DurationMessage)
	}
}

func TestValidateWithReader_V2LastFrame(t *testing.T) {
	// The last frame runs at 50fps; v2 can only carry its start time.
	expected := mustNew(t, timecode.V1,
		timecode.RangeInterval{StartFrame: 0, EndFrame: 5, Interval: 400000},
		timecode.RangeInterval{StartFrame: 6, EndFrame: 6, Interval: 200000},
	)
	var buf bytes.Buffer
	if err := timecode.Encode(expected, &buf, timecode.V2, timecode.EncodeOptions{}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.v2.txt")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateOutput(path, Options{ExpectedVersion: timecode.V2, Expected: expected})
	if err != nil {
		t.Fatalf("ValidateOutput() error = %v", err)
	}
	if !result.IsValid() {
		t.Errorf("IsValid() = false. Failures: %v", result.GetFailures())
	}
	if result.ExpectedDuration != 280*time.Millisecond {
		t.Errorf("ExpectedDuration = %v, want 280ms", result.ExpectedDuration)
	}

	// The same timeline written as v1 keeps the last frame's rate.
	written := mustNew(t, timecode.V1, timecode.RangeInterval{StartFrame: 0, EndFrame: 6, Interval: 400000})
	result, err = ValidateWithReader(&mockReader{tc: written}, path, Options{ExpectedVersion: timecode.V1, Expected: expected})
	if err != nil {
		t.Fatalf("ValidateWithReader() error = %v", err)
	}
	if result.IsDurationCorrect || result.IsTimelinePreserved {
		t.Errorf("v1 output with a wrong last frame passed: %v", result.GetValidationSteps())
	}
}

func TestValidateWithReader_Errors(t *testing.T) {
	expected := mustNew(t, timecode.V2, timecode.RangeInterval{StartFrame: 0, EndFrame: 1, Interval: 400000})

	if _, err := ValidateWithReader(&mockReader{err: errors.New("gone")}, "/fake", Options{ExpectedVersion: timecode.V2, Expected: expected}); err == nil {
		t.Error("expected read error")
	}
	if _, err := ValidateWithReader(&mockReader{}, "/fake", Options{ExpectedVersion: timecode.V2}); err == nil {
		t.Error("expected error without an expected timeline")
	}
}

func TestValidateOutputReadsFile(t *testing.T) {
	expected := mustNew(t, timecode.V1,
		timecode.RangeInterval{StartFrame: 0, EndFrame: 2, Interval: 400000},
		timecode.RangeInterval{StartFrame: 3, EndFrame: 6, Interval: 200000},
	)
	for _, version := range []timecode.Version{timecode.V1, timecode.V2} {
		t.Run(version.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := timecode.Encode(expected, &buf, version, timecode.EncodeOptions{}); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			path := filepath.Join(t.TempDir(), "out.txt")
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				t.Fatal(err)
			}

			result, err := ValidateOutput(path, Options{ExpectedVersion: version, Expected: expected})
			if err != nil {
				t.Fatalf("ValidateOutput() error = %v", err)
			}
			if !result.IsValid() {
				t.Errorf("IsValid() = false. Failures: %v", result.GetFailures())
			}
		})
	}
}

func TestGetFailures(t *testing.T) {
	result := &Result{
		IsFormatCorrect:     true,
		IsFrameCountCorrect: false,
		FrameMessage:        "Frame count mismatch: got 1, expected 2",
		IsDurationCorrect:   true,
		IsTimelinePreserved: true,
	}
	failures := result.GetFailures()
	if len(failures) != 1 || failures[0] != "Frame count: Frame count mismatch: got 1, expected 2" {
		t.Errorf("GetFailures() = %v", failures)
	}
}
