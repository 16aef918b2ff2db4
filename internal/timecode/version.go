package timecode

import (
	"fmt"
	"strings"

	"github.com/five82/tcutil/internal/errors"
)

// Version identifies a timecode file format.
type Version int

const (
	// VersionAuto detects the format from the file header.
	VersionAuto Version = iota
	// V1 is the default-rate plus frame-range override format.
	V1
	// V2 is the one-timestamp-per-frame format.
	V2
)

// String returns the lowercase tag used in file headers and extensions.
func (v Version) String() string {
	switch v {
	case VersionAuto:
		return "auto"
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return fmt.Sprintf("v?(%d)", int(v))
	}
}

// Valid reports whether v names a concrete format.
func (v Version) Valid() bool {
	return v == V1 || v == V2
}

// Invert returns the other concrete format. Auto and unknown values map to V2.
func (v Version) Invert() Version {
	if v == V2 {
		return V1
	}
	return V2
}

// ParseVersion parses "v1", "v2", "1", "2" or "auto" (case-insensitive).
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1", "1":
		return V1, nil
	case "v2", "2":
		return V2, nil
	case "", "auto":
		return VersionAuto, nil
	default:
		return VersionAuto, errors.NewArgumentError(fmt.Sprintf("unknown timecode version %q, valid options: v1, v2", s))
	}
}
