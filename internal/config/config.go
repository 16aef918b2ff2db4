// Package config provides configuration types and defaults for tcutil.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/five82/tcutil/internal/timecode"
)

// Default constants
const (
	// DefaultLogLevel is the level used when neither --verbose nor a config file sets one.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the run log formatter.
	DefaultLogFormat = "text"

	// DefaultLogMaxSizeMB is the size at which the run log is rotated.
	DefaultLogMaxSizeMB = 10

	// DefaultLogMaxBackups is the number of rotated run logs kept.
	DefaultLogMaxBackups = 5

	// DefaultLogMaxAgeDays is how long rotated run logs are kept.
	DefaultLogMaxAgeDays = 30
)

// Config holds all configuration for timecode processing.
type Config struct {
	// Input/output paths
	OutputDir string `mapstructure:"output_dir"`
	LogDir    string `mapstructure:"log_dir"`

	// Logging
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"` // text or json
	LogMaxSizeMB  int    `mapstructure:"log_max_size"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age"`
	Verbose       bool   `mapstructure:"verbose"`
	NoLog         bool   `mapstructure:"no_log"`

	// Conversion options
	OutputVersion string  `mapstructure:"output_version"` // empty picks the inverse of the input
	TargetRate    float64 `mapstructure:"target_rate"`    // 0 keeps the source default rate
	TotalFrames   int     `mapstructure:"total_frames"`   // pads v1 input, 0 disables
	Fix           bool    `mapstructure:"fix"`
	Overwrite     bool    `mapstructure:"overwrite"`
	Compress      bool    `mapstructure:"compress"` // xz-compress written files
	Verify        bool    `mapstructure:"verify"`   // re-read written files and compare timelines

	// Reporting
	JSON bool `mapstructure:"json"`
}

// NewConfig creates a new Config with default values.
func NewConfig(outputDir, logDir string) *Config {
	return &Config{
		OutputDir:     outputDir,
		LogDir:        logDir,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		LogMaxSizeMB:  DefaultLogMaxSizeMB,
		LogMaxBackups: DefaultLogMaxBackups,
		LogMaxAgeDays: DefaultLogMaxAgeDays,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := timecode.ParseVersion(c.OutputVersion); err != nil {
		return fmt.Errorf("%w: %q, valid options: v1, v2", ErrInvalidVersion, c.OutputVersion)
	}

	if c.TargetRate < 0 || math.IsNaN(c.TargetRate) || math.IsInf(c.TargetRate, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, c.TargetRate)
	}

	if c.Fix && c.TargetRate == 0 {
		return ErrFixWithoutRate
	}

	if c.TotalFrames < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalFrames, c.TotalFrames)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q, valid options: text, json", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

// Version returns the requested output version, or VersionAuto when the output
// should be the inverse of the input.
func (c *Config) Version() timecode.Version {
	v, _ := timecode.ParseVersion(c.OutputVersion)
	return v
}

// EffectiveLogLevel returns "debug" when verbose output was requested.
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}
