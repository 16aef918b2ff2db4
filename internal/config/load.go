package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TCUTIL_TARGET_RATE.
const EnvPrefix = "TCUTIL"

// Load builds a Config from defaults, an optional YAML file and TCUTIL_*
// environment variables, in increasing order of precedence. An empty path skips
// the file.
func Load(path, outputDir, logDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, NewConfig(outputDir, logDir))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so that environment overrides are seen by
// Unmarshal even when no config file mentions them.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("log_dir", d.LogDir)

	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_max_size", d.LogMaxSizeMB)
	v.SetDefault("log_max_backups", d.LogMaxBackups)
	v.SetDefault("log_max_age", d.LogMaxAgeDays)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("no_log", d.NoLog)

	v.SetDefault("output_version", d.OutputVersion)
	v.SetDefault("target_rate", d.TargetRate)
	v.SetDefault("total_frames", d.TotalFrames)
	v.SetDefault("fix", d.Fix)
	v.SetDefault("overwrite", d.Overwrite)
	v.SetDefault("compress", d.Compress)
	v.SetDefault("verify", d.Verify)

	v.SetDefault("json", d.JSON)
}
