// Package config provides configuration types and defaults for tcutil.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidVersion indicates an unknown output version.
	ErrInvalidVersion = errors.New("invalid timecode version")

	// ErrInvalidRate indicates a negative or non-finite target frame rate.
	ErrInvalidRate = errors.New("target frame rate out of range")

	// ErrFixWithoutRate indicates fix mode was requested without a target rate.
	ErrFixWithoutRate = errors.New("fix mode requires a target frame rate")

	// ErrInvalidTotalFrames indicates a negative frame count.
	ErrInvalidTotalFrames = errors.New("total frames out of range")

	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat indicates an unknown log formatter.
	ErrInvalidLogFormat = errors.New("invalid log format")
)
