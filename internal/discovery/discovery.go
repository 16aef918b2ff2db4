// Package discovery provides timecode file discovery for batch processing.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/five82/tcutil/internal/errors"
	"github.com/five82/tcutil/internal/streamio"
	"github.com/five82/tcutil/internal/timecode"
	"github.com/five82/tcutil/internal/util"
)

// DiscoveryLogger defines the interface for discovery logging.
type DiscoveryLogger interface {
	Info(format string, args ...any)
	Debug(format string, args ...any)
}

// File is a discovered timecode file.
type File struct {
	Path    string
	Version timecode.Version
}

// DiscoveryResult contains the results of file discovery with metadata.
type DiscoveryResult struct {
	Files        []File
	SkippedCount int
}

// Paths returns the discovered file paths in order.
func (r *DiscoveryResult) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}

// derivedName matches files written by convert, e.g. "movie.v2.txt".
var derivedName = regexp.MustCompile(`(?i)\.v[12](\.[^.]+)?(\.xz)?$`)

// FindTimecodeFiles finds timecode files in the given directory. A file is
// accepted when its extension is a timecode extension and its first line is a
// v1 or v2 header. Files produced by a previous conversion are skipped.
// Returns files sorted alphabetically by filename.
func FindTimecodeFiles(inputDir string, logger DiscoveryLogger) (*DiscoveryResult, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, errors.NewPathError(fmt.Sprintf("directory does not exist: %s", inputDir))
	}
	if !info.IsDir() {
		return nil, errors.NewPathError(fmt.Sprintf("%s is not a directory", inputDir))
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("cannot read directory %s", inputDir), err)
	}

	result := &DiscoveryResult{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		// Skip hidden files
		if strings.HasPrefix(name, ".") {
			continue
		}

		fullPath := filepath.Join(inputDir, name)
		if !util.IsTimecodeCandidate(fullPath) || derivedName.MatchString(name) {
			result.SkippedCount++
			continue
		}

		version, err := sniffVersion(fullPath)
		if err != nil {
			if logger != nil {
				logger.Debug("Skipping %s: %v", name, err)
			}
			result.SkippedCount++
			continue
		}
		result.Files = append(result.Files, File{Path: fullPath, Version: version})
	}

	if len(result.Files) == 0 {
		return nil, errors.NewNoFilesFoundError(inputDir)
	}

	// Sort alphabetically
	sort.Slice(result.Files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(result.Files[i].Path)) < strings.ToLower(filepath.Base(result.Files[j].Path))
	})

	if logger != nil {
		logDiscoveredFiles(result, logger)
	}

	return result, nil
}

func sniffVersion(path string) (timecode.Version, error) {
	in, err := streamio.Open(path)
	if err != nil {
		return timecode.VersionAuto, err
	}
	defer func() { _ = in.Close() }()
	return timecode.DetectVersion(in)
}

// logDiscoveredFiles logs the first 5 discovered files plus a count.
func logDiscoveredFiles(result *DiscoveryResult, logger DiscoveryLogger) {
	logger.Info("Found %d timecode file(s), skipped %d", len(result.Files), result.SkippedCount)

	maxToLog := min(5, len(result.Files))
	for i := 0; i < maxToLog; i++ {
		logger.Debug("  %s (%s)", filepath.Base(result.Files[i].Path), result.Files[i].Version)
	}

	if len(result.Files) > 5 {
		logger.Debug("  ... and %d more", len(result.Files)-5)
	}
}
