package processing

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/five82/tcutil/internal/config"
	"github.com/five82/tcutil/internal/errors"
	"github.com/five82/tcutil/internal/logging"
	"github.com/five82/tcutil/internal/reporter"
	"github.com/five82/tcutil/internal/util"
)

// ProcessFiles converts a list of timecode files. A failed file is reported and
// the batch moves on; an error is returned only when nothing was converted or
// the batch was cancelled. A single file's error is returned as is.
func ProcessFiles(
	ctx context.Context,
	cfg *config.Config,
	filesToProcess []string,
	target util.OutputPathInfo,
	rep reporter.Reporter,
	log *logging.Logger,
) ([]ConvertResult, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	var results []ConvertResult
	var fileResults []reporter.FileResult
	var lastErr error

	if len(filesToProcess) > 1 {
		var fileNames []string
		for _, f := range filesToProcess {
			fileNames = append(fileNames, util.GetFilename(f))
		}
		outputDir := target.OutputDir
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}
		rep.BatchStarted(reporter.BatchStartInfo{
			TotalFiles: len(filesToProcess),
			FileList:   fileNames,
			OutputDir:  outputDir,
		})
	}

	for fileIdx, inputPath := range filesToProcess {
		if ctx.Err() != nil {
			rep.Warning(fmt.Sprintf("Conversion cancelled: %v", ctx.Err()))
			return results, errors.NewCancelledError()
		}

		if len(filesToProcess) > 1 {
			rep.FileProgress(reporter.FileProgressContext{
				CurrentFile: fileIdx + 1,
				TotalFiles:  len(filesToProcess),
			})
		}

		// A filename only makes sense for a single input.
		fileTarget := target
		if len(filesToProcess) > 1 {
			fileTarget.Filename = ""
		}

		inputFilename := util.GetFilename(inputPath)
		result, err := ConvertFile(ctx, cfg, inputPath, fileTarget, rep, log.WithField("file", inputFilename))
		if err != nil {
			if errors.IsCancelled(err) {
				rep.Warning("Conversion cancelled")
				return results, err
			}
			lastErr = err
			log.Error("Converting %s failed: %v", inputPath, err)
			rep.Error(describeError(inputPath, err))
			fileResults = append(fileResults, reporter.FileResult{Filename: inputFilename, Err: err.Error()})
			continue
		}

		results = append(results, result)
		fileResults = append(fileResults, reporter.FileResult{Filename: inputFilename, Output: result.OutputPath})
	}

	switch len(results) {
	case 0:
		rep.Warning("No files were successfully converted")
	case 1:
		if len(filesToProcess) == 1 {
			rep.OperationComplete(fmt.Sprintf("Successfully converted %s", results[0].Filename))
			break
		}
		fallthrough
	default:
		var totalDuration time.Duration
		var totalBytes uint64
		for _, r := range results {
			totalDuration += r.Duration
			totalBytes += r.BytesWritten
		}
		rep.BatchComplete(reporter.BatchSummary{
			SuccessfulCount: len(results),
			TotalFiles:      len(filesToProcess),
			TotalBytes:      totalBytes,
			TotalDuration:   totalDuration,
			FileResults:     fileResults,
		})
	}

	if len(results) == 0 && lastErr != nil {
		if len(filesToProcess) == 1 {
			return nil, lastErr
		}
		return nil, errors.NewOperationFailedError("no files were converted", lastErr)
	}
	return results, nil
}

// describeError turns a conversion failure into a report with a suggestion.
func describeError(inputPath string, err error) reporter.ReporterError {
	re := reporter.ReporterError{
		Title:   "Conversion Error",
		Message: err.Error(),
		Context: fmt.Sprintf("File: %s", inputPath),
	}
	switch {
	case errors.IsFormat(err):
		re.Title = "Format Error"
		re.Suggestion = "Check that the file is a v1 or v2 timecode file with a valid header"
		if line := errors.LineOf(err); line > 0 {
			re.Context = fmt.Sprintf("File: %s, line %d", inputPath, line)
		}
	case errors.IsArgument(err):
		re.Title = "Argument Error"
		re.Suggestion = "Check --to, --rate and --fix"
	case errors.IsKind(err, errors.KindPath):
		re.Title = "Output Error"
		re.Suggestion = "Choose another output path"
	case stderrors.Is(err, fs.ErrExist):
		re.Title = "Output Error"
		re.Suggestion = "Choose another output path or pass --force"
	case errors.IsKind(err, errors.KindOperationFailed):
		re.Title = "Verification Error"
		re.Suggestion = "Inspect the written file; rerun without --verify to keep it regardless"
	case errors.IsIO(err):
		re.Title = "I/O Error"
		re.Suggestion = "Check that the input is readable and the output location is writable"
	}
	return re
}
