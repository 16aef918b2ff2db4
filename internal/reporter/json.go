package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JSONReporter outputs NDJSON events. Every event carries the run id so that
// interleaved logs from concurrent invocations can be told apart.
type JSONReporter struct {
	writer             io.Writer
	runID              string
	mu                 sync.Mutex
	lastProgressBucket int
	lastProgressTime   time.Time
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return NewJSONReporterWithWriter(os.Stdout)
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		writer:             w,
		runID:              uuid.New().String(),
		lastProgressBucket: -1,
	}
}

// RunID returns the identifier attached to every event.
func (r *JSONReporter) RunID() string {
	return r.runID
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(event map[string]interface{}) {
	event["run_id"] = r.runID
	event["timestamp"] = r.timestamp()

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) Info(summary InfoSummary) {
	intervals := make([]map[string]interface{}, len(summary.Intervals))
	for i, row := range summary.Intervals {
		intervals[i] = map[string]interface{}{
			"start_frame":   row.StartFrame,
			"start_time_ms": millis(row.StartTime),
			"end_frame":     row.EndFrame,
			"end_time_ms":   millis(row.EndTime),
			"frame_rate":    row.FrameRate,
		}
	}

	r.write(map[string]interface{}{
		"type":               "info",
		"input_file":         summary.InputFile,
		"version":            summary.Version,
		"total_frames":       summary.TotalFrames,
		"total_length_ms":    millis(summary.TotalLength),
		"average_frame_rate": summary.AverageFrameRate,
		"default_frame_rate": summary.DefaultFrameRate,
		"fingerprint":        summary.Fingerprint,
		"intervals":          intervals,
	})
}

func (r *JSONReporter) ConversionStarted(summary ConversionSummary) {
	r.mu.Lock()
	r.lastProgressBucket = -1
	r.lastProgressTime = time.Time{}
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":         "conversion_started",
		"input_file":   summary.InputFile,
		"output_file":  summary.OutputFile,
		"from_version": summary.FromVersion,
		"to_version":   summary.ToVersion,
		"target_rate":  summary.TargetRate,
		"fix":          summary.Fix,
		"total_frames": summary.TotalFrames,
		"compressed":   summary.Compressed,
	})
}

func (r *JSONReporter) ConversionProgress(progress ProgressSnapshot) {
	const progressBucketSize = 10
	const minInterval = 5 * time.Second

	bucket := int(progress.Percent) / progressBucketSize
	now := time.Now()

	r.mu.Lock()
	intervalElapsed := r.lastProgressTime.IsZero() || now.Sub(r.lastProgressTime) >= minInterval
	shouldEmit := bucket > r.lastProgressBucket || intervalElapsed || progress.Percent >= 100

	if !shouldEmit {
		r.mu.Unlock()
		return
	}

	if bucket > r.lastProgressBucket {
		r.lastProgressBucket = bucket
	}
	r.lastProgressTime = now
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":          "conversion_progress",
		"current_frame": progress.CurrentFrame,
		"total_frames":  progress.TotalFrames,
		"percent":       progress.Percent,
	})
}

func (r *JSONReporter) ConversionComplete(outcome ConversionOutcome) {
	r.write(map[string]interface{}{
		"type":             "conversion_complete",
		"input_file":       outcome.InputFile,
		"output_file":      outcome.OutputFile,
		"version":          outcome.Version,
		"total_frames":     outcome.TotalFrames,
		"intervals":        outcome.Intervals,
		"bytes_written":    outcome.BytesWritten,
		"duration_seconds": outcome.Elapsed.Seconds(),
	})
}

func (r *JSONReporter) ValidationComplete(summary ValidationSummary) {
	steps := make([]map[string]interface{}, len(summary.Steps))
	for i, step := range summary.Steps {
		steps[i] = map[string]interface{}{
			"step":    step.Name,
			"passed":  step.Passed,
			"details": step.Details,
		}
	}

	r.write(map[string]interface{}{
		"type":              "validation_complete",
		"output_file":       summary.OutputFile,
		"validation_passed": summary.Passed,
		"validation_steps":  steps,
	})
}

func (r *JSONReporter) Query(result QueryResult) {
	r.write(map[string]interface{}{
		"type":       "query",
		"input_file": result.InputFile,
		"frame":      result.Frame,
		"time_ms":    millis(result.Time),
		"clamped":    result.Clamped,
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":    "warning",
		"message": message,
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"context":    err.Context,
		"suggestion": err.Suggestion,
	})
}

func (r *JSONReporter) OperationComplete(message string) {
	r.write(map[string]interface{}{
		"type":    "operation_complete",
		"message": message,
	})
}

func (r *JSONReporter) BatchStarted(info BatchStartInfo) {
	r.write(map[string]interface{}{
		"type":        "batch_started",
		"total_files": info.TotalFiles,
		"file_list":   info.FileList,
		"output_dir":  info.OutputDir,
	})
}

func (r *JSONReporter) FileProgress(context FileProgressContext) {
	r.write(map[string]interface{}{
		"type":         "file_progress",
		"current_file": context.CurrentFile,
		"total_files":  context.TotalFiles,
	})
}

func (r *JSONReporter) BatchComplete(summary BatchSummary) {
	results := make([]map[string]interface{}, len(summary.FileResults))
	for i, res := range summary.FileResults {
		results[i] = map[string]interface{}{
			"file":   res.Filename,
			"output": res.Output,
			"error":  res.Err,
		}
	}

	r.write(map[string]interface{}{
		"type":                   "batch_complete",
		"successful_count":       summary.SuccessfulCount,
		"total_files":            summary.TotalFiles,
		"total_bytes":            summary.TotalBytes,
		"total_duration_seconds": summary.TotalDuration.Seconds(),
		"file_results":           results,
	})
}

// Verbose messages are not emitted as events.
func (r *JSONReporter) Verbose(string) {}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
