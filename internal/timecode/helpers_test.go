package timecode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// approxIntervals compares tick durations with a relative tolerance.
var approxIntervals = cmpopts.EquateApprox(1e-9, 0)

func decodeString(t *testing.T, input string, opts DecodeOptions) *Timecode {
	t.Helper()
	tc, err := Decode(strings.NewReader(input), opts)
	require.NoError(t, err)
	require.NotNil(t, tc)
	requireContiguous(t, tc)
	return tc
}

func requireIntervals(t *testing.T, want []RangeInterval, tc *Timecode) {
	t.Helper()
	if diff := cmp.Diff(want, tc.Intervals(), approxIntervals); diff != "" {
		t.Fatalf("intervals mismatch (-want +got):\n%s", diff)
	}
}

// requireContiguous checks that the ranges are sorted, non-overlapping and cover
// [0, TotalFrames()-1] without gaps.
func requireContiguous(t *testing.T, tc *Timecode) {
	t.Helper()
	next := 0
	for i, iv := range tc.Intervals() {
		require.Equalf(t, next, iv.StartFrame, "interval %d does not start where the previous ended", i)
		require.LessOrEqualf(t, iv.StartFrame, iv.EndFrame, "interval %d is inverted", i)
		require.Greaterf(t, iv.Interval, 0.0, "interval %d has non-positive duration", i)
		next = iv.EndFrame + 1
	}
	require.Equal(t, next, tc.TotalFrames())
}

func ticksPerFrame(rate float64) float64 {
	return TicksPerSecond / rate
}
