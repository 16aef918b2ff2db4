package timecode

import (
	"fmt"
	"math"
	"time"

	"github.com/five82/tcutil/internal/errors"
)

// nanosPerTick converts ticks to time.Duration units.
const nanosPerTick = 100

// Timecode is the canonical interval representation of a timecode file.
//
// Intervals are sorted, contiguous and cover [0, TotalFrames()-1]. A Timecode is
// not modified after construction; WithTotalFrames and Rebase return new values.
type Timecode struct {
	version         Version
	intervals       []RangeInterval
	defaultInterval float64 // 0 when unset
}

// New builds a Timecode from caller-supplied intervals. The intervals are copied and
// normalized; they must start at frame 0 and be contiguous. The default interval is
// left unset, so the default frame rate is the most frequent interval duration.
func New(version Version, intervals []RangeInterval) (*Timecode, error) {
	if !version.Valid() {
		return nil, errors.NewArgumentError(fmt.Sprintf("unsupported timecode version %s", version))
	}

	next := 0
	for i, iv := range intervals {
		if !(iv.Interval > 0) || math.IsInf(iv.Interval, 0) {
			return nil, errors.NewArgumentError(fmt.Sprintf("interval %d has non-positive duration %v", i, iv.Interval))
		}
		if iv.StartFrame > iv.EndFrame {
			return nil, errors.NewArgumentError(fmt.Sprintf("interval %d starts at %d after its end %d", i, iv.StartFrame, iv.EndFrame))
		}
		if iv.StartFrame != next {
			return nil, errors.NewArgumentError(fmt.Sprintf("interval %d starts at frame %d, expected %d", i, iv.StartFrame, next))
		}
		next = iv.EndFrame + 1
	}

	return newTimecode(version, append([]RangeInterval(nil), intervals...), 0), nil
}

// newTimecode takes ownership of intervals and normalizes them in place.
func newTimecode(version Version, intervals []RangeInterval, defaultInterval float64) *Timecode {
	for i := range intervals {
		intervals[i].Interval = normalizeInterval(intervals[i].Interval)
	}
	return &Timecode{
		version:         version,
		intervals:       intervals,
		defaultInterval: normalizeInterval(defaultInterval),
	}
}

func (tc *Timecode) clone() *Timecode {
	return &Timecode{
		version:         tc.version,
		intervals:       append([]RangeInterval(nil), tc.intervals...),
		defaultInterval: tc.defaultInterval,
	}
}

// Version returns the format the Timecode was decoded from.
func (tc *Timecode) Version() Version {
	return tc.version
}

// Intervals returns a copy of the interval sequence.
func (tc *Timecode) Intervals() []RangeInterval {
	return append([]RangeInterval(nil), tc.intervals...)
}

// DefaultInterval returns the assumed per-frame duration in ticks, if one was set
// by decoding.
func (tc *Timecode) DefaultInterval() (float64, bool) {
	return tc.defaultInterval, tc.defaultInterval > 0
}

// TotalFrames returns the number of frames covered by the Timecode.
func (tc *Timecode) TotalFrames() int {
	if len(tc.intervals) == 0 {
		return 0
	}
	return tc.intervals[len(tc.intervals)-1].EndFrame + 1
}

// TotalTicks returns the summed duration of all frames in ticks.
func (tc *Timecode) TotalTicks() float64 {
	var total float64
	for _, iv := range tc.intervals {
		total += iv.Duration()
	}
	return total
}

// TotalLength returns the summed duration of all frames.
func (tc *Timecode) TotalLength() time.Duration {
	return ticksToDuration(tc.TotalTicks())
}

// AverageFrameRate returns total frames divided by total length in seconds.
func (tc *Timecode) AverageFrameRate() float64 {
	ticks := tc.TotalTicks()
	if ticks == 0 {
		return 0
	}
	return TicksPerSecond * float64(tc.TotalFrames()) / ticks
}

// DefaultFrameRate returns the assumed frame rate if one was decoded, otherwise
// the rate of the most frequent interval duration. Returns 0 for an empty Timecode
// without a default.
func (tc *Timecode) DefaultFrameRate() float64 {
	interval := tc.effectiveDefaultInterval()
	if interval == 0 {
		return 0
	}
	return TicksPerSecond / interval
}

func (tc *Timecode) effectiveDefaultInterval() float64 {
	if tc.defaultInterval > 0 {
		return tc.defaultInterval
	}
	return modeInterval(tc.intervals)
}

// modeInterval returns the interval value shared by the most ranges. Ties go to
// the value encountered first.
func modeInterval(intervals []RangeInterval) float64 {
	counts := make(map[float64]int, len(intervals))
	var order []float64
	for _, iv := range intervals {
		if counts[iv.Interval] == 0 {
			order = append(order, iv.Interval)
		}
		counts[iv.Interval]++
	}

	var mode float64
	best := 0
	for _, v := range order {
		if counts[v] > best {
			mode, best = v, counts[v]
		}
	}
	return mode
}

// IntervalAt returns the range containing frame.
func (tc *Timecode) IntervalAt(frame int) (RangeInterval, bool) {
	for _, iv := range tc.intervals {
		if iv.Contains(frame) {
			return iv, true
		}
	}
	return RangeInterval{}, false
}

// TimeAtFrame returns the presentation time of frame. Frames past the end map to
// the total length and negative frames map to zero.
func (tc *Timecode) TimeAtFrame(frame int) time.Duration {
	return ticksToDuration(tc.ticksAtFrame(frame))
}

func (tc *Timecode) ticksAtFrame(frame int) float64 {
	if frame <= 0 {
		return 0
	}
	var elapsed float64
	for _, iv := range tc.intervals {
		elapsed += iv.Duration()
		if iv.EndFrame < frame {
			continue
		}
		return elapsed - iv.Interval*float64(iv.EndFrame-frame+1)
	}
	return elapsed
}

// FrameAtTime returns the frame displayed at ts. Times past the end map to the
// last frame index; an empty Timecode always returns 0.
func (tc *Timecode) FrameAtTime(ts time.Duration) int {
	if len(tc.intervals) == 0 || ts <= 0 {
		return 0
	}
	last := tc.intervals[len(tc.intervals)-1].EndFrame
	tick := float64(ts) / nanosPerTick

	var elapsed float64
	for _, iv := range tc.intervals {
		elapsed += iv.Duration()
		if elapsed < tick {
			continue
		}
		delta := int(math.Round((elapsed - tick) / iv.Interval))
		return min(iv.EndFrame-delta+1, last)
	}
	return last
}

// WithTotalFrames returns a Timecode padded to frames total frames using the
// default interval. Only v1 sources can be extended; for v2 sources, or when
// frames does not exceed the current total, the receiver is returned unchanged.
func (tc *Timecode) WithTotalFrames(frames int) *Timecode {
	total := tc.TotalFrames()
	if tc.version != V1 || frames <= total || tc.defaultInterval <= 0 {
		return tc
	}
	out := tc.clone()
	out.intervals = append(out.intervals, RangeInterval{
		StartFrame: total,
		EndFrame:   frames - 1,
		Interval:   tc.defaultInterval,
	})
	return out
}

// Rebase returns a Timecode in which every range running at the default interval
// runs at rate instead. Range boundaries and explicit rates are kept.
func (tc *Timecode) Rebase(rate float64) (*Timecode, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	target := normalizeInterval(TicksPerSecond / rate)
	source := tc.effectiveDefaultInterval()

	out := tc.clone()
	for i := range out.intervals {
		if out.intervals[i].Interval == source {
			out.intervals[i].Interval = target
		}
	}
	out.defaultInterval = target
	return out, nil
}

func validateRate(rate float64) error {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return errors.NewArgumentError(fmt.Sprintf("frame rate must be a positive number, got %v", rate))
	}
	return nil
}

func ticksToDuration(ticks float64) time.Duration {
	return time.Duration(math.Round(ticks)) * nanosPerTick
}
