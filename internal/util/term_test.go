package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTerminalWidthFallback(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	t.Setenv("COLUMNS", "132")
	if got := TerminalWidth(f); got != 132 {
		t.Errorf("TerminalWidth() = %d, want 132 from COLUMNS", got)
	}

	t.Setenv("COLUMNS", "")
	if got := TerminalWidth(f); got != DefaultTerminalWidth {
		t.Errorf("TerminalWidth() = %d, want %d", got, DefaultTerminalWidth)
	}

	if got := TerminalWidth(nil); got != DefaultTerminalWidth {
		t.Errorf("TerminalWidth(nil) = %d, want %d", got, DefaultTerminalWidth)
	}
}
