package timecode

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/five82/tcutil/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		version Version
		want    Version
	}{
		{"v1 header", "# timecode format v1\nAssume 25\n", VersionAuto, V1},
		{"v2 header", "# timecode format v2\n0\n40\n", VersionAuto, V2},
		{"timestamp spelling", "# timestamp format v2\n0\n40\n", VersionAuto, V2},
		{"trailing header text", "# timecode format v2 (mkvmerge)\n0\n40\n", VersionAuto, V2},
		{"leading blank lines", "\n\n  \n# timecode format v1\nAssume 25\n", VersionAuto, V1},
		{"byte order mark", "\ufeff# timecode format v2\n0\n40\n", VersionAuto, V2},
		{"crlf line endings", "# timecode format v1\r\nAssume 25\r\n0,4,50\r\n", VersionAuto, V1},
		{"forced v1 without header", "Assume 25\n0,4,50\n", V1, V1},
		{"forced v2 without header", "0\n40\n80\n", V2, V2},
		{"forced v1 with leading comment", "# exported\nAssume 25\n", V1, V1},
		{"forced version matching header", "# timecode format v2\n0\n40\n", V2, V2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := decodeString(t, tt.input, DecodeOptions{Version: tt.version})
			assert.Equal(t, tt.want, tc.Version())
			assert.NotZero(t, tc.TotalFrames())
		})
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		version  Version
		wantLine int
		contains string
	}{
		{"empty input", "", VersionAuto, 0, "empty input"},
		{"blank input", "\n \n", VersionAuto, 0, "empty input"},
		{"missing header", "Assume 25\n", VersionAuto, 1, "illegal file header"},
		{"unknown version", "# timecode format v3\n0\n", VersionAuto, 1, "illegal file header"},
		{"v1 header forced v2", "# timecode format v1\nAssume 25\n", V2, 1, "header declares v1 but v2 was requested"},
		{"v2 header forced v1", "\n# timecode format v2\n0\n", V1, 2, "header declares v2 but v1 was requested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := Decode(strings.NewReader(tt.input), DecodeOptions{Version: tt.version})
			require.Error(t, err)
			assert.Nil(t, tc)
			assert.True(t, errors.IsFormat(err))
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, tt.wantLine, errors.LineOf(err))
		})
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	_, err := Decode(strings.NewReader("# timecode format v2\n0\n40\n"), DecodeOptions{Version: Version(7)})
	require.Error(t, err)
	assert.True(t, errors.IsArgument(err))
}

func TestDecodeReadErrors(t *testing.T) {
	errBoom := stderrors.New("boom")

	t.Run("while reading header", func(t *testing.T) {
		_, err := Decode(iotest.ErrReader(errBoom), DecodeOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsIO(err))
		assert.ErrorIs(t, err, errBoom)
	})

	for _, body := range []string{"# timecode format v1\nAssume 25\n", "# timecode format v2\n0\n40\n"} {
		t.Run("while reading body "+strings.Fields(body)[3], func(t *testing.T) {
			r := io.MultiReader(strings.NewReader(body), iotest.ErrReader(errBoom))
			_, err := Decode(r, DecodeOptions{})
			require.Error(t, err)
			assert.True(t, errors.IsIO(err))
			assert.ErrorIs(t, err, errBoom)
		})
	}
}

func TestDetectVersion(t *testing.T) {
	v, err := DetectVersion(strings.NewReader("# timestamp format v2\n0\n"))
	require.NoError(t, err)
	assert.Equal(t, V2, v)

	v, err = DetectVersion(strings.NewReader("# timecode format v1\nthis body is never read"))
	require.NoError(t, err)
	assert.Equal(t, V1, v)

	_, err = DetectVersion(strings.NewReader("frame,pts\n"))
	assert.True(t, errors.IsFormat(err))
}
