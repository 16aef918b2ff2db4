package util

import (
	"os"
	"path/filepath"
	"strings"
)

// CompressedExtension marks an xz-compressed timecode file.
const CompressedExtension = ".xz"

// TimecodeExtensions lists the extensions considered when scanning a directory.
// Files are still confirmed by their header before being processed.
var TimecodeExtensions = map[string]bool{
	".txt": true,
	".tc":  true,
	".tmc": true,
}

// IsTimecodeCandidate reports whether path is a regular file whose extension,
// ignoring a trailing .xz, is a timecode extension.
func IsTimecodeCandidate(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, CompressedExtension)
	return TimecodeExtensions[filepath.Ext(name)]
}

// IsCompressed reports whether path names an xz-compressed file.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExtension)
}

// GetFilename returns the filename from a path.
func GetFilename(path string) string {
	return filepath.Base(path)
}

// GetFileStem returns the filename without extension.
func GetFileStem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

// EnsureDirectory creates a directory if it doesn't exist.
func EnsureDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// VersionedName inserts tag before the extension of the input file name, so
// "movie.txt" becomes "movie.v2.txt". A trailing .xz on the input is dropped
// and re-added when compress is set.
func VersionedName(inputPath, tag string, compress bool) string {
	base := filepath.Base(inputPath)
	if IsCompressed(base) {
		base = base[:len(base)-len(CompressedExtension)]
	}
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + "." + tag + ext
	if compress {
		name += CompressedExtension
	}
	return name
}

// ResolveOutputPath determines the output path for a converted file. Without
// an output directory the file is placed next to its input.
func ResolveOutputPath(inputPath, outputDir, tag string, compress bool) string {
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outputDir, VersionedName(inputPath, tag, compress))
}

// OutputPathInfo contains resolved output path information.
type OutputPathInfo struct {
	// OutputDir is the directory where output files should be written.
	OutputDir string
	// Filename is set when the output argument names a file rather than a directory.
	Filename string
	// Stdout is set when the output argument is "-".
	Stdout bool
}

// ResolveOutputArg resolves the output argument into a directory and optional filename.
// "-" selects standard output. For a single input file the argument is a
// filename unless it names an existing directory or ends in a separator. For
// directory input it is always a directory. An input of "-" is standard input.
func ResolveOutputArg(inputPath, outputArg string) (OutputPathInfo, error) {
	inputIsDir := false
	if inputPath != "-" {
		inputInfo, err := os.Stat(inputPath)
		if err != nil {
			return OutputPathInfo{}, err
		}
		inputIsDir = inputInfo.IsDir()
	}

	if outputArg == "-" {
		if inputIsDir {
			return OutputPathInfo{}, os.ErrInvalid
		}
		return OutputPathInfo{Stdout: true}, nil
	}

	if outputArg == "" {
		return OutputPathInfo{}, nil
	}

	if inputIsDir || DirectoryExists(outputArg) || strings.HasSuffix(outputArg, string(filepath.Separator)) {
		return OutputPathInfo{OutputDir: filepath.Clean(outputArg)}, nil
	}

	parentDir := filepath.Dir(outputArg)
	return OutputPathInfo{
		OutputDir: parentDir,
		Filename:  filepath.Base(outputArg),
	}, nil
}
