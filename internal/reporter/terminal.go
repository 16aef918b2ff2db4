package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/five82/tcutil/internal/util"
	"github.com/schollz/progressbar/v3"
)

// tableWidth is the rendered width of the full interval table.
const tableWidth = 64

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	width    int
	verbose  bool
	progress *progressbar.ProgressBar
	cyan     *color.Color
	green    *color.Color
	yellow   *color.Color
	red      *color.Color
	faint    *color.Color
	bold     *color.Color
}

// NewTerminalReporter creates a terminal reporter writing to stdout and stderr.
func NewTerminalReporter(verbose bool) *TerminalReporter {
	return NewTerminalReporterWithWriters(os.Stdout, os.Stderr, verbose)
}

// NewTerminalReporterWithWriters creates a terminal reporter with custom writers.
// Progress bars and errors go to errOut.
func NewTerminalReporterWithWriters(out, errOut io.Writer, verbose bool) *TerminalReporter {
	width := util.DefaultTerminalWidth
	if f, ok := out.(*os.File); ok {
		width = util.TerminalWidth(f)
	}
	return &TerminalReporter{
		out:     out,
		errOut:  errOut,
		width:   width,
		verbose: verbose,
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		faint:   color.New(color.Faint),
		bold:    color.New(color.Bold),
	}
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}

func (r *TerminalReporter) section(title string) {
	_, _ = fmt.Fprintln(r.out)
	_, _ = r.cyan.Fprintln(r.out, title)
}

// printLabel prints a bold label with fixed width padding followed by a value.
// Width is applied to the plain text before styling to ensure proper alignment.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) Info(summary InfoSummary) {
	r.section("TIMECODE")
	const w = 19
	r.printLabel(w, "File:", summary.InputFile)
	r.printLabel(w, "Format:", summary.Version)
	r.printLabel(w, "Total length:", util.FormatTimestamp(summary.TotalLength))
	r.printLabel(w, "Total frames:", fmt.Sprint(summary.TotalFrames))
	r.printLabel(w, "Average frame rate:", fmt.Sprintf("%.3f", summary.AverageFrameRate))
	r.printLabel(w, "Default frame rate:", fmt.Sprintf("%.3f", summary.DefaultFrameRate))
	if summary.Fingerprint != "" {
		r.printLabel(w, "Fingerprint:", r.faint.Sprint(summary.Fingerprint))
	}

	r.section("INTERVALS")
	if len(summary.Intervals) == 0 {
		_, _ = fmt.Fprintf(r.out, "  %s\n", r.faint.Sprint("no frames"))
		return
	}
	if r.width < tableWidth {
		r.printCompactIntervals(summary.Intervals)
		return
	}
	r.printIntervalTable(summary.Intervals)
}

func (r *TerminalReporter) printIntervalTable(rows []IntervalRow) {
	rule := "  +" + strings.Repeat("-", 23) + "+" + strings.Repeat("-", 23) + "+" + strings.Repeat("-", 12) + "+"
	_, _ = fmt.Fprintln(r.out, rule)
	_, _ = fmt.Fprintf(r.out, "  | %s | %s | %s |\n",
		r.bold.Sprintf("%21s", "Start Frame / Time"),
		r.bold.Sprintf("%21s", "End Frame / Time"),
		r.bold.Sprintf("%10s", "Frame Rate"))
	_, _ = fmt.Fprintln(r.out, rule)
	for _, row := range rows {
		_, _ = fmt.Fprintf(r.out, "  | %6d / %-12s | %6d / %-12s | %10.6f |\n",
			row.StartFrame, util.FormatTimestamp(row.StartTime),
			row.EndFrame, util.FormatTimestamp(row.EndTime),
			row.FrameRate)
	}
	_, _ = fmt.Fprintln(r.out, rule)
}

func (r *TerminalReporter) printCompactIntervals(rows []IntervalRow) {
	for _, row := range rows {
		_, _ = fmt.Fprintf(r.out, "  %d-%d %s %.6f\n",
			row.StartFrame, row.EndFrame,
			r.faint.Sprintf("(%s)", util.FormatTimestamp(row.StartTime)),
			row.FrameRate)
	}
}

func (r *TerminalReporter) ConversionStarted(summary ConversionSummary) {
	r.finishProgress()

	r.section("CONVERT")
	const w = 8
	r.printLabel(w, "Input:", fmt.Sprintf("%s (%s)", summary.InputFile, summary.FromVersion))
	r.printLabel(w, "Output:", fmt.Sprintf("%s (%s)", displayPath(summary.OutputFile), summary.ToVersion))
	if summary.TargetRate > 0 {
		mode := "default rate"
		if summary.Fix {
			mode = "fix"
		}
		r.printLabel(w, "Rate:", fmt.Sprintf("%.6f (%s)", summary.TargetRate, mode))
	}
	if summary.TotalFrames > 0 {
		r.printLabel(w, "Frames:", fmt.Sprint(summary.TotalFrames))
	}
	if summary.Compressed {
		r.printLabel(w, "Packing:", "xz")
	}

	if summary.ToVersion != "v2" || summary.TotalFrames == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = progressbar.NewOptions(
		summary.TotalFrames,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(max(10, min(40, r.width-40))),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(r.errOut),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Writing [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) ConversionProgress(progress ProgressSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}
	_ = r.progress.Set(min(progress.CurrentFrame, progress.TotalFrames))
}

func (r *TerminalReporter) ConversionComplete(outcome ConversionOutcome) {
	r.finishProgress()

	r.section("RESULTS")
	const w = 8
	r.printLabel(w, "Output:", r.bold.Sprint(displayPath(outcome.OutputFile)))
	r.printLabel(w, "Format:", outcome.Version)
	r.printLabel(w, "Frames:", fmt.Sprintf("%d in %d interval(s)", outcome.TotalFrames, outcome.Intervals))
	r.printLabel(w, "Size:", util.FormatBytes(outcome.BytesWritten))
	r.printLabel(w, "Time:", util.FormatElapsed(outcome.Elapsed))
}

func (r *TerminalReporter) ValidationComplete(summary ValidationSummary) {
	r.finishProgress()

	r.section("VERIFY")
	if summary.Passed {
		_, _ = fmt.Fprintf(r.out, "  %s\n", color.New(color.FgGreen, color.Bold).Sprint("All checks passed"))
	} else {
		_, _ = fmt.Fprintf(r.out, "  %s\n", r.red.Sprint("Verification failed"))
	}

	maxLen := 0
	for _, step := range summary.Steps {
		maxLen = max(maxLen, len(step.Name))
	}
	for _, step := range summary.Steps {
		status := r.green.Sprint("✓")
		if !step.Passed {
			status = r.red.Sprint("✗")
		}
		_, _ = fmt.Fprintf(r.out, "  - %-*s: %s (%s)\n", maxLen, step.Name, status, step.Details)
	}
}

func (r *TerminalReporter) Query(result QueryResult) {
	note := ""
	if result.Clamped {
		note = " " + r.yellow.Sprint("(clamped)")
	}
	_, _ = fmt.Fprintf(r.out, "%s %d %s %s%s\n",
		r.bold.Sprint("frame"), result.Frame,
		r.bold.Sprint("time"), util.FormatTimestamp(result.Time), note)
}

func (r *TerminalReporter) Warning(message string) {
	_, _ = fmt.Fprintln(r.errOut)
	_, _ = r.yellow.Fprintf(r.errOut, "WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishProgress()

	_, _ = fmt.Fprintln(r.errOut)
	_, _ = r.red.Fprintf(r.errOut, "ERROR %s\n", err.Title)
	_, _ = fmt.Fprintf(r.errOut, "  %s\n", err.Message)
	if err.Context != "" {
		_, _ = fmt.Fprintf(r.errOut, "  Context: %s\n", err.Context)
	}
	if err.Suggestion != "" {
		_, _ = fmt.Fprintf(r.errOut, "  Suggestion: %s\n", err.Suggestion)
	}
}

func (r *TerminalReporter) OperationComplete(message string) {
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintf(r.out, "%s %s\n", color.New(color.FgGreen, color.Bold).Sprint("✓"), r.bold.Sprint(message))
}

func (r *TerminalReporter) BatchStarted(info BatchStartInfo) {
	r.section("BATCH")
	target := info.OutputDir
	if target == "" {
		target = "next to inputs"
	}
	_, _ = fmt.Fprintf(r.out, "  Converting %d files -> %s\n", info.TotalFiles, r.bold.Sprint(target))
	for i, name := range info.FileList {
		_, _ = fmt.Fprintf(r.out, "  %d. %s\n", i+1, name)
	}
}

func (r *TerminalReporter) FileProgress(context FileProgressContext) {
	_, _ = fmt.Fprintf(r.out, "\nFile %s of %d\n",
		r.bold.Sprint(context.CurrentFile),
		context.TotalFiles)
}

func (r *TerminalReporter) BatchComplete(summary BatchSummary) {
	r.section("BATCH SUMMARY")
	_, _ = fmt.Fprintf(r.out, "  %s\n", r.bold.Sprintf("%d of %d succeeded", summary.SuccessfulCount, summary.TotalFiles))
	_, _ = fmt.Fprintf(r.out, "  Written: %s\n", util.FormatBytes(summary.TotalBytes))
	_, _ = fmt.Fprintf(r.out, "  Time: %s\n", util.FormatElapsed(summary.TotalDuration))

	for _, result := range summary.FileResults {
		if result.Err != "" {
			_, _ = fmt.Fprintf(r.out, "  %s %s: %s\n", r.red.Sprint("✗"), result.Filename, result.Err)
			continue
		}
		_, _ = fmt.Fprintf(r.out, "  %s %s -> %s\n", r.green.Sprint("✓"), result.Filename, result.Output)
	}
}

func (r *TerminalReporter) Verbose(message string) {
	if !r.verbose {
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "%s\n", r.faint.Sprint(message))
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "<stdout>"
	}
	return path
}
