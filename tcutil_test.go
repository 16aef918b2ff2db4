package tcutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/tcutil/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"defaults", nil, nil},
		{"rate and fix", []Option{WithTargetRate(24000.0 / 1001), WithFix()}, nil},
		{"explicit version", []Option{WithOutputVersion(V1)}, nil},
		{"fix without rate", []Option{WithFix()}, config.ErrFixWithoutRate},
		{"negative rate", []Option{WithTargetRate(-1)}, config.ErrInvalidRate},
		{"negative frames", []Option{WithTotalFrames(-5)}, config.ErrInvalidTotalFrames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConverterQueries(t *testing.T) {
	input := writeFile(t, t.TempDir(), "movie.txt", "# timecode format v1\nAssume 25\n0,1,50\n")
	conv, err := New(WithTotalFrames(4))
	require.NoError(t, err)

	summary, err := conv.Info(input)
	require.NoError(t, err)
	assert.Equal(t, "v1", summary.Version)
	assert.Equal(t, 4, summary.TotalFrames)
	assert.Equal(t, 120*time.Millisecond, summary.TotalLength)
	assert.Len(t, summary.Intervals, 2)

	q, err := conv.FrameAt(input, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Frame)

	q, err = conv.TimeAt(input, 3)
	require.NoError(t, err)
	assert.Equal(t, 80*time.Millisecond, q.Time)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "movie.txt", "# timecode format v1\nAssume 25\n0,1,50\n")
	conv, err := New(WithTotalFrames(4))
	require.NoError(t, err)

	result, err := conv.Convert(context.Background(), input, "", nil)
	require.NoError(t, err)
	assert.Equal(t, input, result.InputFile)
	assert.Equal(t, filepath.Join(dir, "movie.v2.txt"), result.OutputFile)
	assert.Equal(t, V2, result.Version)
	assert.Equal(t, 4, result.TotalFrames)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "# timecode format v2\n0.000000\n20.000000\n40.000000\n80.000000\n", string(data))

	_, err = conv.Convert(context.Background(), input, "", nil)
	assert.Error(t, err, "existing output must not be replaced")

	overwrite, err := New(WithTotalFrames(4), WithOverwrite(), WithOutputVersion(V1))
	require.NoError(t, err)
	result, err = overwrite.Convert(context.Background(), input, filepath.Join(dir, "copy.txt"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "copy.txt"), result.OutputFile)
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "# timecode format v2\n0\n40\n80\n")
	writeFile(t, dir, "b.tc", "# timestamp format v2\n0\n20\n40\n")
	writeFile(t, dir, "readme.md", "not a timecode")

	inputs, err := FindTimecodes(dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.tc")}, inputs)

	conv, err := New(WithCompression())
	require.NoError(t, err)
	out := filepath.Join(dir, "out")
	batch, err := conv.ConvertBatch(context.Background(), inputs, out, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, batch.SuccessfulCount)
	assert.Equal(t, 2, batch.TotalFiles)
	assert.FileExists(t, filepath.Join(out, "a.v1.txt.xz"))
	assert.FileExists(t, filepath.Join(out, "b.v1.tc.xz"))
}
