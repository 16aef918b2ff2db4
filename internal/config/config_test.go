package config

import (
	"errors"
	"math"
	"testing"

	"github.com/five82/tcutil/internal/timecode"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/output", "/log")

	if cfg.OutputDir != "/output" {
		t.Errorf("expected OutputDir=/output, got %s", cfg.OutputDir)
	}
	if cfg.LogDir != "/log" {
		t.Errorf("expected LogDir=/log, got %s", cfg.LogDir)
	}

	// Check defaults
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel=%s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("expected LogFormat=%s, got %s", DefaultLogFormat, cfg.LogFormat)
	}
	if cfg.Version() != timecode.VersionAuto {
		t.Errorf("expected auto output version, got %s", cfg.Version())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name         string
		modify       func(*Config)
		wantErr      bool
		wantSentinel error
	}{
		{
			name:    "default config is valid",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "v1 output is valid",
			modify:  func(c *Config) { c.OutputVersion = "v1" },
			wantErr: false,
		},
		{
			name:         "v3 output is invalid",
			modify:       func(c *Config) { c.OutputVersion = "v3" },
			wantErr:      true,
			wantSentinel: ErrInvalidVersion,
		},
		{
			name:         "negative rate is invalid",
			modify:       func(c *Config) { c.TargetRate = -24 },
			wantErr:      true,
			wantSentinel: ErrInvalidRate,
		},
		{
			name:         "infinite rate is invalid",
			modify:       func(c *Config) { c.TargetRate = math.Inf(1) },
			wantErr:      true,
			wantSentinel: ErrInvalidRate,
		},
		{
			name:         "fix without rate is invalid",
			modify:       func(c *Config) { c.Fix = true },
			wantErr:      true,
			wantSentinel: ErrFixWithoutRate,
		},
		{
			name: "fix with rate is valid",
			modify: func(c *Config) {
				c.Fix = true
				c.TargetRate = 24000.0 / 1001
			},
			wantErr: false,
		},
		{
			name:         "negative total frames is invalid",
			modify:       func(c *Config) { c.TotalFrames = -1 },
			wantErr:      true,
			wantSentinel: ErrInvalidTotalFrames,
		},
		{
			name:         "unknown log level is invalid",
			modify:       func(c *Config) { c.LogLevel = "chatty" },
			wantErr:      true,
			wantSentinel: ErrInvalidLogLevel,
		},
		{
			name:         "unknown log format is invalid",
			modify:       func(c *Config) { c.LogFormat = "xml" },
			wantErr:      true,
			wantSentinel: ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig("/output", "/log")
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.wantSentinel != nil && !errors.Is(err, tt.wantSentinel) {
					t.Errorf("expected error wrapping %v, got %v", tt.wantSentinel, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEffectiveLogLevel(t *testing.T) {
	cfg := NewConfig("", "")
	if got := cfg.EffectiveLogLevel(); got != "info" {
		t.Errorf("EffectiveLogLevel() = %s, want info", got)
	}
	cfg.Verbose = true
	if got := cfg.EffectiveLogLevel(); got != "debug" {
		t.Errorf("EffectiveLogLevel() = %s, want debug", got)
	}
}
