package reporter

import (
	"github.com/five82/tcutil/internal/logging"
	"github.com/five82/tcutil/internal/util"
)

// LogReporter records reporter events in the run log.
type LogReporter struct {
	log *logging.Logger
}

// NewLogReporter creates a reporter writing to log. A nil log discards events.
func NewLogReporter(log *logging.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Info(summary InfoSummary) {
	r.log.WithFields(logging.Fields{
		"input":       summary.InputFile,
		"version":     summary.Version,
		"frames":      summary.TotalFrames,
		"intervals":   len(summary.Intervals),
		"fingerprint": summary.Fingerprint,
	}).Info("Timecode length %s, average %.6f fps, default %.6f fps",
		util.FormatTimestamp(summary.TotalLength), summary.AverageFrameRate, summary.DefaultFrameRate)
}

func (r *LogReporter) ConversionStarted(summary ConversionSummary) {
	r.log.Info("Converting %s (%s) to %s (%s)", summary.InputFile, summary.FromVersion, displayPath(summary.OutputFile), summary.ToVersion)
}

// ConversionProgress is not logged; ConversionComplete carries the totals.
func (r *LogReporter) ConversionProgress(ProgressSnapshot) {}

func (r *LogReporter) ConversionComplete(outcome ConversionOutcome) {
	r.log.Info("Converted %s: %d frames in %d interval(s), %s in %s",
		displayPath(outcome.OutputFile), outcome.TotalFrames, outcome.Intervals,
		util.FormatBytes(outcome.BytesWritten), util.FormatElapsed(outcome.Elapsed))
}

func (r *LogReporter) ValidationComplete(summary ValidationSummary) {
	for _, step := range summary.Steps {
		r.log.Debug("Verify %s: passed=%v (%s)", step.Name, step.Passed, step.Details)
	}
	if summary.Passed {
		r.log.Info("Verified %s", displayPath(summary.OutputFile))
		return
	}
	r.log.Warn("Verification of %s failed", displayPath(summary.OutputFile))
}

func (r *LogReporter) Query(result QueryResult) {
	r.log.Debug("Query on %s: frame %d at %s (clamped %v)",
		result.InputFile, result.Frame, util.FormatTimestamp(result.Time), result.Clamped)
}

func (r *LogReporter) Warning(message string) {
	r.log.Warn("%s", message)
}

func (r *LogReporter) Error(err ReporterError) {
	r.log.Error("%s: %s (%s)", err.Title, err.Message, err.Context)
}

func (r *LogReporter) OperationComplete(message string) {
	r.log.Info("%s", message)
}

func (r *LogReporter) BatchStarted(info BatchStartInfo) {
	r.log.Info("Batch of %d file(s)", info.TotalFiles)
}

func (r *LogReporter) FileProgress(context FileProgressContext) {
	r.log.Debug("File %d of %d", context.CurrentFile, context.TotalFiles)
}

func (r *LogReporter) BatchComplete(summary BatchSummary) {
	r.log.Info("Batch complete: %d of %d file(s) converted, %s written",
		summary.SuccessfulCount, summary.TotalFiles, util.FormatBytes(summary.TotalBytes))
}

func (r *LogReporter) Verbose(message string) {
	r.log.Debug("%s", message)
}
