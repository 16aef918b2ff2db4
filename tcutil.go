// Package tcutil reads, inspects and converts Matroska-style timecode files.
//
// Two formats are supported: v1, a default frame rate plus per-range
// overrides, and v2, one presentation timestamp per frame. Both decode to the
// same interval model, so any file can be converted to the other format,
// queried for frame or time positions, or rebased onto a new frame rate.
//
// Basic usage:
//
//	conv, err := tcutil.New(
//	    tcutil.WithTargetRate(24000.0/1001),
//	    tcutil.WithFix(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, "movie.txt", "", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Wrote %s (%d frames)\n", result.OutputFile, result.TotalFrames)
package tcutil

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/tcutil/internal/config"
	"github.com/five82/tcutil/internal/discovery"
	"github.com/five82/tcutil/internal/processing"
	"github.com/five82/tcutil/internal/reporter"
	"github.com/five82/tcutil/internal/timecode"
	"github.com/five82/tcutil/internal/util"
)

// Re-exported types.
type (
	Version  = timecode.Version
	Reporter = reporter.Reporter
	Summary  = reporter.InfoSummary
	Query    = reporter.QueryResult
)

const (
	VersionAuto = timecode.VersionAuto
	V1          = timecode.V1
	V2          = timecode.V2
)

// ParseVersion converts "v1", "v2", "1" or "2" to a Version. The empty string
// selects VersionAuto.
func ParseVersion(s string) (Version, error) {
	return timecode.ParseVersion(s)
}

// Converter is the main entry point for timecode processing.
type Converter struct {
	config *config.Config
}

// Result contains the result of a single conversion.
type Result struct {
	InputFile    string
	OutputFile   string
	Version      Version
	TotalFrames  int
	BytesWritten uint64
	Duration     time.Duration
	Verified     bool
}

// BatchResult contains the result of a batch conversion.
type BatchResult struct {
	Results         []Result
	SuccessfulCount int
	TotalFiles      int
}

// Option configures the converter.
type Option func(*config.Config)

// New creates a new Converter with the given options.
func New(opts ...Option) (*Converter, error) {
	cfg := config.NewConfig("", "")
	cfg.NoLog = true

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{config: cfg}, nil
}

// WithOutputVersion forces the output format. By default a conversion writes
// the format the input is not in.
func WithOutputVersion(v Version) Option {
	return func(c *config.Config) {
		c.OutputVersion = ""
		if v != VersionAuto {
			c.OutputVersion = v.String()
		}
	}
}

// WithTargetRate sets the default frame rate of the output.
func WithTargetRate(fps float64) Option {
	return func(c *config.Config) {
		c.TargetRate = fps
	}
}

// WithFix moves frames running at the source default rate onto the target
// rate. Requires WithTargetRate.
func WithFix() Option {
	return func(c *config.Config) {
		c.Fix = true
	}
}

// WithTotalFrames pads v1 input with default-rate frames up to n frames.
func WithTotalFrames(n int) Option {
	return func(c *config.Config) {
		c.TotalFrames = n
	}
}

// WithOverwrite allows existing output files to be replaced.
func WithOverwrite() Option {
	return func(c *config.Config) {
		c.Overwrite = true
	}
}

// WithCompression writes xz-compressed output.
func WithCompression() Option {
	return func(c *config.Config) {
		c.Compress = true
	}
}

// WithVerify re-reads every written file and compares it with the source
// timeline. A mismatch fails the conversion.
func WithVerify() Option {
	return func(c *config.Config) {
		c.Verify = true
	}
}

// Info decodes input and summarizes it.
func (c *Converter) Info(input string) (*Summary, error) {
	tc, err := processing.Load(input, c.decodeOptions(), nil)
	if err != nil {
		return nil, err
	}
	summary, err := processing.Summarize(input, tc)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// FrameAt returns the frame of input displayed at ts.
func (c *Converter) FrameAt(input string, ts time.Duration) (*Query, error) {
	tc, err := processing.Load(input, c.decodeOptions(), nil)
	if err != nil {
		return nil, err
	}
	q := processing.FrameAt(input, tc, ts)
	return &q, nil
}

// TimeAt returns the presentation time of frame in input.
func (c *Converter) TimeAt(input string, frame int) (*Query, error) {
	tc, err := processing.Load(input, c.decodeOptions(), nil)
	if err != nil {
		return nil, err
	}
	q := processing.TimeAt(input, tc, frame)
	return &q, nil
}

// Convert converts a single file. An empty output writes next to the input
// with ".v1" or ".v2" inserted before the extension; "-" writes to standard
// output; an existing directory or a path ending in a separator receives the
// default file name.
func (c *Converter) Convert(ctx context.Context, input, output string, rep Reporter) (*Result, error) {
	target, err := util.ResolveOutputArg(input, output)
	if err != nil {
		return nil, fmt.Errorf("invalid output %q: %w", output, err)
	}

	r, err := processing.ConvertFile(ctx, c.config, input, target, rep, nil)
	if err != nil {
		return nil, err
	}
	res := toResult(r)
	return &res, nil
}

// ConvertBatch converts every input into outputDir. An empty outputDir writes
// each file next to its input. Failed files are reported and skipped.
func (c *Converter) ConvertBatch(ctx context.Context, inputs []string, outputDir string, rep Reporter) (*BatchResult, error) {
	results, err := processing.ProcessFiles(ctx, c.config, inputs, util.OutputPathInfo{OutputDir: outputDir}, rep, nil)

	batch := &BatchResult{TotalFiles: len(inputs)}
	for _, r := range results {
		batch.Results = append(batch.Results, toResult(r))
		batch.SuccessfulCount++
	}
	return batch, err
}

// FindTimecodes finds timecode files in a directory.
func FindTimecodes(dir string) ([]string, error) {
	result, err := discovery.FindTimecodeFiles(dir, nil)
	if err != nil {
		return nil, err
	}
	return result.Paths(), nil
}

func (c *Converter) decodeOptions() timecode.DecodeOptions {
	return timecode.DecodeOptions{TotalFrames: c.config.TotalFrames}
}

func toResult(r processing.ConvertResult) Result {
	return Result{
		InputFile:    r.InputPath,
		OutputFile:   r.OutputPath,
		Version:      r.Version,
		TotalFrames:  r.TotalFrames,
		BytesWritten: r.BytesWritten,
		Duration:     r.Duration,
		Verified:     r.Verified,
	}
}
