// Package errors provides structured error types for tcutil operations.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindFormat represents malformed timecode input.
	KindFormat ErrorKind = iota
	// KindIO represents stream read/write errors.
	KindIO
	// KindArgument represents invalid caller-supplied parameters.
	KindArgument
	// KindPath represents path-related errors.
	KindPath
	// KindConfig represents configuration validation errors.
	KindConfig
	// KindNoFilesFound represents no timecode files found.
	KindNoFilesFound
	// KindOperationFailed represents general operation failures.
	KindOperationFailed
	// KindCancelled represents user-cancelled operations.
	KindCancelled
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "Format error"
	case KindIO:
		return "I/O error"
	case KindArgument:
		return "Argument error"
	case KindPath:
		return "Path error"
	case KindConfig:
		return "Configuration error"
	case KindNoFilesFound:
		return "No files found"
	case KindOperationFailed:
		return "Operation failed"
	case KindCancelled:
		return "Operation cancelled"
	default:
		return "Unknown error"
	}
}

// FormatDetail locates a format error inside the input.
type FormatDetail struct {
	Line    int // 1-based; 0 when the error is not tied to a line
	Content string
	Reason  string
}

func (d *FormatDetail) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d %q: %s", d.Line, d.Content, d.Reason)
	}
	return d.Reason
}

// CoreError is the main error type for tcutil operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewFormatError creates a format error that is not tied to a specific line.
func NewFormatError(message string) *CoreError {
	return &CoreError{Kind: KindFormat, Message: message}
}

// NewLineFormatError creates a format error naming the offending input line.
func NewLineFormatError(line int, content, reason string) *CoreError {
	detail := &FormatDetail{Line: line, Content: content, Reason: reason}
	return &CoreError{Kind: KindFormat, Message: "malformed timecode", Underlying: detail}
}

// NewIOError creates a new I/O error.
func NewIOError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindIO, Message: message, Underlying: underlying}
}

// NewArgumentError creates a new invalid-argument error.
func NewArgumentError(message string) *CoreError {
	return &CoreError{Kind: KindArgument, Message: message}
}

// NewPathError creates a new path-related error.
func NewPathError(message string) *CoreError {
	return &CoreError{Kind: KindPath, Message: message}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindConfig, Message: message, Underlying: underlying}
}

// NewNoFilesFoundError creates an error for when no timecode files are found.
func NewNoFilesFoundError(dir string) *CoreError {
	return &CoreError{Kind: KindNoFilesFound, Message: fmt.Sprintf("no timecode files found in %s", dir)}
}

// NewOperationFailedError creates a new general operation failure error.
func NewOperationFailedError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindOperationFailed, Message: message, Underlying: underlying}
}

// NewCancelledError creates an error for user-cancelled operations.
func NewCancelledError() *CoreError {
	return &CoreError{Kind: KindCancelled, Message: "operation was cancelled by the user"}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsFormat checks if the error is a format error.
func IsFormat(err error) bool {
	return IsKind(err, KindFormat)
}

// IsIO checks if the error is an I/O error.
func IsIO(err error) bool {
	return IsKind(err, KindIO)
}

// IsArgument checks if the error is an argument error.
func IsArgument(err error) bool {
	return IsKind(err, KindArgument)
}

// IsCancelled checks if the error is a cancellation error.
func IsCancelled(err error) bool {
	return IsKind(err, KindCancelled)
}

// IsNoFilesFound checks if the error is a no-files-found error.
func IsNoFilesFound(err error) bool {
	return IsKind(err, KindNoFilesFound)
}

// LineOf returns the input line a format error points at, or 0.
func LineOf(err error) int {
	var detail *FormatDetail
	if errors.As(err, &detail) {
		return detail.Line
	}
	return 0
}
