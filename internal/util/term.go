package util

import (
	"os"
	"strconv"
)

// DefaultTerminalWidth is used when the width cannot be queried.
const DefaultTerminalWidth = 80

// TerminalWidth returns the column count of the terminal attached to f, or the
// COLUMNS environment variable, or DefaultTerminalWidth.
func TerminalWidth(f *os.File) int {
	if w := queryWidth(f); w > 0 {
		return w
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultTerminalWidth
}
