// Package reporter provides progress reporting interfaces and implementations.
package reporter

import "time"

// IntervalRow is one line of the interval table.
type IntervalRow struct {
	StartFrame int
	StartTime  time.Duration
	EndFrame   int
	EndTime    time.Duration
	FrameRate  float64
}

// InfoSummary describes a decoded timecode file.
type InfoSummary struct {
	InputFile        string
	Version          string
	TotalFrames      int
	TotalLength      time.Duration
	AverageFrameRate float64
	DefaultFrameRate float64
	Fingerprint      string
	Intervals        []IntervalRow
}

// ConversionSummary describes a conversion before it starts.
type ConversionSummary struct {
	InputFile   string
	OutputFile  string
	FromVersion string
	ToVersion   string
	TargetRate  float64 // 0 when the source default rate is kept
	Fix         bool
	TotalFrames int
	Compressed  bool
}

// ProgressSnapshot contains conversion progress information.
type ProgressSnapshot struct {
	CurrentFrame int
	TotalFrames  int
	Percent      float32
}

// ConversionOutcome contains final conversion results.
type ConversionOutcome struct {
	InputFile    string
	OutputFile   string
	Version      string
	TotalFrames  int
	Intervals    int
	BytesWritten uint64
	Elapsed      time.Duration
}

// ValidationSummary contains the checks run on a written file.
type ValidationSummary struct {
	OutputFile string
	Passed     bool
	Steps      []ValidationStep
}

// ValidationStep represents a single validation check.
type ValidationStep struct {
	Name    string
	Passed  bool
	Details string
}

// QueryResult answers a frame or time lookup.
type QueryResult struct {
	InputFile string
	Frame     int
	Time      time.Duration
	// Clamped is set when the query fell outside the timecode and was clamped.
	Clamped bool
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}

// BatchStartInfo contains batch start metadata.
type BatchStartInfo struct {
	TotalFiles int
	FileList   []string
	OutputDir  string
}

// FileProgressContext contains current file index within a batch.
type FileProgressContext struct {
	CurrentFile int
	TotalFiles  int
}

// BatchSummary contains batch completion information.
type BatchSummary struct {
	SuccessfulCount int
	TotalFiles      int
	TotalBytes      uint64
	TotalDuration   time.Duration
	FileResults     []FileResult
}

// FileResult contains per-file conversion result.
type FileResult struct {
	Filename string
	Output   string
	Err      string // empty on success
}
