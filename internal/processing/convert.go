package processing

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/five82/tcutil/internal/config"
	"github.com/five82/tcutil/internal/errors"
	"github.com/five82/tcutil/internal/logging"
	"github.com/five82/tcutil/internal/reporter"
	"github.com/five82/tcutil/internal/streamio"
	"github.com/five82/tcutil/internal/timecode"
	"github.com/five82/tcutil/internal/util"
	"github.com/five82/tcutil/internal/validation"
)

// ConvertResult contains the result of a single file conversion.
type ConvertResult struct {
	InputPath    string
	Filename     string
	OutputPath   string
	Version      timecode.Version
	TotalFrames  int
	Intervals    int
	BytesWritten uint64
	Duration     time.Duration
	Verified     bool
}

// ConvertFile decodes inputPath and writes it in the configured output version.
// Without an explicit version the output is the other format. The output file
// must not exist unless cfg.Overwrite is set; a failed conversion leaves no
// partial file behind.
func ConvertFile(
	ctx context.Context,
	cfg *config.Config,
	inputPath string,
	target util.OutputPathInfo,
	rep reporter.Reporter,
	log *logging.Logger,
) (ConvertResult, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	start := time.Now()

	tc, err := Load(inputPath, timecode.DecodeOptions{TotalFrames: cfg.TotalFrames}, log)
	if err != nil {
		return ConvertResult{}, err
	}

	to := cfg.Version()
	if to == timecode.VersionAuto {
		to = tc.Version().Invert()
	}

	outputPath := resolveOutput(cfg, inputPath, target, to)
	if err := checkDistinct(inputPath, outputPath); err != nil {
		return ConvertResult{}, err
	}

	if tc.Version() == timecode.V1 && to == timecode.V2 && cfg.TotalFrames == 0 {
		rep.Warning(fmt.Sprintf("%s has no frame count; frames after the last override will not be written", util.GetFilename(inputPath)))
	}

	rep.ConversionStarted(reporter.ConversionSummary{
		InputFile:   inputPath,
		OutputFile:  outputPath,
		FromVersion: tc.Version().String(),
		ToVersion:   to.String(),
		TargetRate:  cfg.TargetRate,
		Fix:         cfg.Fix,
		TotalFrames: tc.TotalFrames(),
		Compressed:  cfg.Compress,
	})

	out, err := streamio.Create(outputPath, streamio.OutputOptions{
		Overwrite: cfg.Overwrite,
		Compress:  cfg.Compress,
	})
	if err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return ConvertResult{}, errors.NewIOError(fmt.Sprintf("output file already exists: %s", outputPath), fs.ErrExist)
		}
		return ConvertResult{}, errors.NewIOError("creating output", err)
	}

	log.WithFields(logging.Fields{
		"input":  inputPath,
		"output": outputPath,
		"to":     to.String(),
		"rate":   cfg.TargetRate,
		"fix":    cfg.Fix,
	}).Info("Converting timecode")

	err = timecode.Encode(tc, &ctxWriter{ctx: ctx, w: out}, to, timecode.EncodeOptions{
		Rate: cfg.TargetRate,
		Fix:  cfg.Fix,
		Progress: func(done, total int) {
			rep.ConversionProgress(reporter.ProgressSnapshot{
				CurrentFrame: done,
				TotalFrames:  total,
				Percent:      float32(done) * 100 / float32(max(total, 1)),
			})
		},
	})
	if err == nil {
		if cerr := out.Close(); cerr != nil {
			err = errors.NewIOError("closing output", cerr)
		}
	}
	if err != nil {
		_ = out.Abort()
		if ctx.Err() != nil {
			return ConvertResult{}, errors.NewCancelledError()
		}
		return ConvertResult{}, err
	}

	result := ConvertResult{
		InputPath:    inputPath,
		Filename:     util.GetFilename(inputPath),
		OutputPath:   outputPath,
		Version:      to,
		TotalFrames:  tc.TotalFrames(),
		Intervals:    len(tc.Intervals()),
		BytesWritten: uint64(out.BytesWritten()),
		Duration:     time.Since(start),
	}

	rep.ConversionComplete(reporter.ConversionOutcome{
		InputFile:    inputPath,
		OutputFile:   outputPath,
		Version:      to.String(),
		TotalFrames:  result.TotalFrames,
		Intervals:    result.Intervals,
		BytesWritten: result.BytesWritten,
		Elapsed:      result.Duration,
	})
	log.Info("Wrote %s (%s)", outputPath, util.FormatBytes(result.BytesWritten))

	if cfg.Verify && outputPath != streamio.Stdio {
		if err := verifyOutput(cfg, tc, outputPath, to, rep, log); err != nil {
			return result, err
		}
		result.Verified = true
	}

	return result, nil
}

// verifyOutput re-reads outputPath and checks it against the timeline that
// was encoded.
func verifyOutput(
	cfg *config.Config,
	tc *timecode.Timecode,
	outputPath string,
	to timecode.Version,
	rep reporter.Reporter,
	log *logging.Logger,
) error {
	expected := tc
	if cfg.Fix {
		rebased, err := tc.Rebase(cfg.TargetRate)
		if err != nil {
			return err
		}
		expected = rebased
	}

	res, err := validation.ValidateOutput(outputPath, validation.Options{
		ExpectedVersion: to,
		Expected:        expected,
	})
	if err != nil {
		return errors.NewOperationFailedError(fmt.Sprintf("verifying %s", outputPath), err)
	}

	steps := res.GetValidationSteps()
	repSteps := make([]reporter.ValidationStep, len(steps))
	for i, s := range steps {
		repSteps[i] = reporter.ValidationStep{Name: s.Name, Passed: s.Passed, Details: s.Details}
	}
	rep.ValidationComplete(reporter.ValidationSummary{
		OutputFile: outputPath,
		Passed:     res.IsValid(),
		Steps:      repSteps,
	})

	if !res.IsValid() {
		failures := res.GetFailures()
		log.Warn("Verification of %s failed: %v", outputPath, failures)
		return errors.NewOperationFailedError(fmt.Sprintf("verification of %s failed: %s", outputPath, failures[0]), nil)
	}
	return nil
}

// resolveOutput picks the output path for a conversion. Standard input
// converts to standard output unless a file was named.
func resolveOutput(cfg *config.Config, inputPath string, target util.OutputPathInfo, to timecode.Version) string {
	switch {
	case target.Stdout:
		return streamio.Stdio
	case target.Filename != "":
		return filepath.Join(target.OutputDir, target.Filename)
	}

	dir := target.OutputDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	if inputPath == streamio.Stdio {
		if dir == "" {
			return streamio.Stdio
		}
		return filepath.Join(dir, "stdin."+to.String()+".txt")
	}
	return util.ResolveOutputPath(inputPath, dir, to.String(), cfg.Compress)
}

func checkDistinct(inputPath, outputPath string) error {
	if inputPath == streamio.Stdio || outputPath == streamio.Stdio {
		return nil
	}
	in, err1 := filepath.Abs(inputPath)
	out, err2 := filepath.Abs(outputPath)
	if err1 == nil && err2 == nil && in == out {
		return errors.NewPathError(fmt.Sprintf("output would overwrite input: %s", inputPath))
	}
	return nil
}

// ctxWriter stops a conversion once ctx is done.
type ctxWriter struct {
	ctx context.Context
	w   io.Writer
}

func (cw *ctxWriter) Write(p []byte) (int, error) {
	if err := cw.ctx.Err(); err != nil {
		return 0, err
	}
	return cw.w.Write(p)
}
