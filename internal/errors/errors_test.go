package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindFormat, "Format error"},
		{KindIO, "I/O error"},
		{KindArgument, "Argument error"},
		{KindPath, "Path error"},
		{KindConfig, "Configuration error"},
		{KindNoFilesFound, "No files found"},
		{KindOperationFailed, "Operation failed"},
		{KindCancelled, "Operation cancelled"},
		{ErrorKind(99), "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrorKind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCoreErrorError(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &CoreError{
		Kind:       KindIO,
		Message:    "test message",
		Underlying: underlying,
	}

	got := err.Error()
	expected := "I/O error: test message: underlying error"
	if got != expected {
		t.Errorf("CoreError.Error() = %v, want %v", got, expected)
	}

	err2 := &CoreError{
		Kind:    KindArgument,
		Message: "unknown version",
	}

	got2 := err2.Error()
	expected2 := "Argument error: unknown version"
	if got2 != expected2 {
		t.Errorf("CoreError.Error() = %v, want %v", got2, expected2)
	}
}

func TestCoreErrorUnwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &CoreError{
		Kind:       KindIO,
		Message:    "test",
		Underlying: underlying,
	}

	if err.Unwrap() != underlying {
		t.Error("Unwrap() should return underlying error")
	}
}

func TestCoreErrorIs(t *testing.T) {
	err1 := &CoreError{Kind: KindFormat, Message: "test1"}
	err2 := &CoreError{Kind: KindFormat, Message: "test2"}
	err3 := &CoreError{Kind: KindIO, Message: "test3"}

	if !err1.Is(err2) {
		t.Error("Same kind errors should match")
	}

	if err1.Is(err3) {
		t.Error("Different kind errors should not match")
	}

	wrapped := fmt.Errorf("decoding: %w", err1)
	if !errors.Is(wrapped, &CoreError{Kind: KindFormat}) {
		t.Error("errors.Is should see through wrapping")
	}
}

func TestLineFormatError(t *testing.T) {
	err := NewLineFormatError(3, "5,1,24", "start frame 5 is greater than end frame 1")

	want := `Format error: malformed timecode: line 3 "5,1,24": start frame 5 is greater than end frame 1`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if got := LineOf(fmt.Errorf("wrap: %w", err)); got != 3 {
		t.Errorf("LineOf() = %d, want 3", got)
	}

	if got := LineOf(NewFormatError("missing default rate")); got != 0 {
		t.Errorf("LineOf() = %d, want 0 for errors without a line", got)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *CoreError
		kind ErrorKind
	}{
		{"NewFormatError", NewFormatError("bad header"), KindFormat},
		{"NewIOError", NewIOError("disk full", errors.New("no space")), KindIO},
		{"NewArgumentError", NewArgumentError("bad version"), KindArgument},
		{"NewPathError", NewPathError("invalid path"), KindPath},
		{"NewConfigError", NewConfigError("invalid rate", nil), KindConfig},
		{"NewNoFilesFoundError", NewNoFilesFoundError("/test/dir"), KindNoFilesFound},
		{"NewOperationFailedError", NewOperationFailedError("convert", nil), KindOperationFailed},
		{"NewCancelledError", NewCancelledError(), KindCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Expected %v, got %v", tt.kind, tt.err.Kind)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := NewFormatError("test")

	if !IsKind(err, KindFormat) || !IsFormat(err) {
		t.Error("IsKind should return true for matching kind")
	}

	if IsKind(err, KindIO) || IsIO(err) || IsArgument(err) {
		t.Error("IsKind should return false for non-matching kind")
	}

	if IsKind(errors.New("plain error"), KindFormat) {
		t.Error("IsKind should return false for non-CoreError")
	}
}

func TestIsCancelled(t *testing.T) {
	if !IsCancelled(NewCancelledError()) {
		t.Error("IsCancelled should return true for cancelled error")
	}

	if IsCancelled(NewConfigError("test", nil)) {
		t.Error("IsCancelled should return false for non-cancelled error")
	}
}

func TestIsNoFilesFound(t *testing.T) {
	if !IsNoFilesFound(NewNoFilesFoundError("/test")) {
		t.Error("IsNoFilesFound should return true for no-files-found error")
	}

	if IsNoFilesFound(NewConfigError("test", nil)) {
		t.Error("IsNoFilesFound should return false for other errors")
	}
}
