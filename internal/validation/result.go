package validation

import (
	"fmt"
	"time"
)

// Result contains the overall validation result.
type Result struct {
	IsFormatCorrect     bool
	IsFrameCountCorrect bool
	IsDurationCorrect   bool
	IsTimelinePreserved bool

	// Details
	ActualVersion    string
	ExpectedVersion  string
	ActualFrames     int
	ExpectedFrames   int
	FrameMessage     string
	ActualDuration   time.Duration
	ExpectedDuration time.Duration
	DurationMessage  string
	MaxDriftMs       *float64
	DriftFrame       int
	TimelineMessage  string
}

// ValidationStep represents a single validation check.
type ValidationStep struct {
	Name    string
	Passed  bool
	Details string
}

// IsValid returns true if all validation checks passed.
func (r *Result) IsValid() bool {
	return r.IsFormatCorrect &&
		r.IsFrameCountCorrect &&
		r.IsDurationCorrect &&
		r.IsTimelinePreserved
}

// GetValidationSteps returns all validation steps with results.
func (r *Result) GetValidationSteps() []ValidationStep {
	return []ValidationStep{
		{
			Name:    "Format",
			Passed:  r.IsFormatCorrect,
			Details: formatVersionDetails(r.ActualVersion, r.ExpectedVersion, r.IsFormatCorrect),
		},
		{
			Name:    "Frame count",
			Passed:  r.IsFrameCountCorrect,
			Details: r.FrameMessage,
		},
		{
			Name:    "Total length",
			Passed:  r.IsDurationCorrect,
			Details: r.DurationMessage,
		},
		{
			Name:    "Timeline",
			Passed:  r.IsTimelinePreserved,
			Details: r.TimelineMessage,
		},
	}
}

// GetFailures returns descriptions of failed validation checks.
func (r *Result) GetFailures() []string {
	var failures []string
	for _, step := range r.GetValidationSteps() {
		if !step.Passed {
			failures = append(failures, step.Name+": "+step.Details)
		}
	}
	return failures
}

func formatVersionDetails(actual, expected string, passed bool) string {
	if passed {
		return "Timecode format " + actual
	}
	if actual != "" {
		return fmt.Sprintf("Expected %s, got %s", expected, actual)
	}
	return "Unknown format"
}
