package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/tcutil/internal/timecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tcutil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "/out", "/logs")
	require.NoError(t, err)

	assert.Equal(t, NewConfig("/out", "/logs"), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
output_version: v1
target_rate: 23.976
total_frames: 1200
fix: true
log_format: json
log_max_size: 50
`)

	cfg, err := Load(path, "", "/logs")
	require.NoError(t, err)

	assert.Equal(t, timecode.V1, cfg.Version())
	assert.InDelta(t, 23.976, cfg.TargetRate, 1e-9)
	assert.Equal(t, 1200, cfg.TotalFrames)
	assert.True(t, cfg.Fix)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 50, cfg.LogMaxSizeMB)
	assert.Equal(t, "/logs", cfg.LogDir)
	assert.Equal(t, DefaultLogMaxBackups, cfg.LogMaxBackups)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output_version: v1\ntotal_frames: 10\n")
	t.Setenv("TCUTIL_OUTPUT_VERSION", "v2")
	t.Setenv("TCUTIL_COMPRESS", "true")

	cfg, err := Load(path, "", "")
	require.NoError(t, err)

	assert.Equal(t, timecode.V2, cfg.Version())
	assert.True(t, cfg.Compress)
	assert.Equal(t, 10, cfg.TotalFrames)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "fix: true\n")
		_, err := Load(path, "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFixWithoutRate)
	})
}
