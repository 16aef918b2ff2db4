// Package util provides utility functions for formatting and common operations.
package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	KiB = 1024
	MiB = KiB * 1024
	GiB = MiB * 1024
)

// FormatBytes formats bytes with appropriate binary units (B, KiB, MiB, GiB).
func FormatBytes(bytes uint64) string {
	bf := float64(bytes)
	switch {
	case bf >= GiB:
		return fmt.Sprintf("%.2f GiB", bf/GiB)
	case bf >= MiB:
		return fmt.Sprintf("%.2f MiB", bf/MiB)
	case bf >= KiB:
		return fmt.Sprintf("%.2f KiB", bf/KiB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTimestamp formats d as HH:MM:SS.fff. Hours are not wrapped at 24.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		return "-" + FormatTimestamp(-d)
	}
	ms := d.Round(time.Millisecond).Milliseconds()
	hours := ms / 3_600_000
	minutes := (ms % 3_600_000) / 60_000
	secs := (ms % 60_000) / 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, ms%1000)
}

// FormatElapsed formats d as HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	secs := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// ParseTimestamp parses a presentation time. Accepted forms are HH:MM:SS(.fff),
// MM:SS(.fff), plain seconds, and Go durations such as "1m30s" or "1500ms".
func ParseTimestamp(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) > 3 {
			return 0, false
		}
		var seconds float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil || v < 0 {
				return 0, false
			}
			// Only the last field may be fractional.
			if i < len(parts)-1 && v != math.Trunc(v) {
				return 0, false
			}
			seconds = seconds*60 + v
		}
		return secondsToDuration(seconds), true
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return secondsToDuration(v), true
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// ParseFrameRate parses a frame rate written as a decimal ("23.976") or a ratio
// ("24000/1001"). The result must be positive and finite.
func ParseFrameRate(s string) (float64, error) {
	s = strings.TrimSpace(s)

	var rate float64
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate numerator %q", num)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("invalid frame rate denominator %q", den)
		}
		rate = n / d
	} else {
		r, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q", s)
		}
		rate = r
	}

	if !(rate > 0) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("frame rate must be positive, got %q", s)
	}
	return rate, nil
}
