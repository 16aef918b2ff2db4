package logging

import (
	"os"
	"sync"
)

// Global logger instance.
var (
	globalMu     sync.RWMutex
	globalLogger *Logger
	globalOnce   sync.Once
)

// Global returns the global logger instance. Until SetGlobal is called it
// writes warnings and errors to stderr.
func Global() *Logger {
	globalOnce.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if globalLogger == nil {
			globalLogger, _ = New(os.Stderr, "warn", "text")
		}
	})
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetGlobal sets the global logger instance. A nil logger silences the
// package-level functions.
func SetGlobal(logger *Logger) {
	globalOnce.Do(func() {})
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

// Package-level convenience functions that delegate to the global logger.

// Debug logs a debug message to the global logger.
func Debug(format string, args ...any) {
	Global().Debug(format, args...)
}

// Info logs an informational message to the global logger.
func Info(format string, args ...any) {
	Global().Info(format, args...)
}

// Warn logs a warning message to the global logger.
func Warn(format string, args ...any) {
	Global().Warn(format, args...)
}

// Error logs an error message to the global logger.
func Error(format string, args ...any) {
	Global().Error(format, args...)
}
