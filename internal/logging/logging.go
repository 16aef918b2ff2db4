// Package logging provides the run log for the tcutil CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

// Options controls Setup.
type Options struct {
	Dir        string
	Level      string // logrus level name
	Format     string // text or json
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Disabled   bool
}

// Logger writes leveled, structured entries to a rotated run log file.
// A nil *Logger is valid and discards everything.
type Logger struct {
	entry    *logrus.Entry
	sink     io.WriteCloser
	filePath string
}

// Fields is a type alias for logrus.Fields for convenience.
type Fields = logrus.Fields

// Setup creates a logger that writes to a timestamped log file in opts.Dir.
// Returns nil if logging is disabled.
func Setup(opts Options) (*Logger, error) {
	if opts.Disabled {
		return nil, nil
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", opts.Dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filePath := filepath.Join(opts.Dir, fmt.Sprintf("tcutil_run_%s.log", timestamp))

	sink := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    opts.MaxSizeMB, // megabytes
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays, // days
		Compress:   true,
	}

	l := newLogger(sink, level, opts.Format)
	l.filePath = filePath

	l.Info("tcutil starting")
	if level >= logrus.DebugLevel {
		l.Info("Debug level logging enabled")
	}
	l.Info("Log file: %s", filePath)

	return l, nil
}

// New creates a logger writing to w. It is used for stderr output and tests.
func New(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return newLogger(nopCloser{w}, lvl, format), nil
}

func newLogger(sink io.WriteCloser, level logrus.Level, format string) *Logger {
	base := logrus.New()
	base.SetLevel(level)
	base.SetOutput(sink)

	if format == "json" {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			DisableColors:   true,
		})
	}

	return &Logger{entry: logrus.NewEntry(base), sink: sink}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.sink == nil {
		return nil
	}
	return l.sink.Close()
}

// FilePath returns the path to the log file.
func (l *Logger) FilePath() string {
	if l == nil {
		return ""
	}
	return l.filePath
}

// WithField returns a logger that adds key to every entry.
func (l *Logger) WithField(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{entry: l.entry.WithField(key, value), sink: l.sink, filePath: l.filePath}
}

// WithFields returns a logger that adds fields to every entry.
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{entry: l.entry.WithFields(fields), sink: l.sink, filePath: l.filePath}
}

// Info logs an info-level message.
func (l *Logger) Info(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry.Infof(format, args...)
}

// Debug logs a debug-level message (only if verbose mode is enabled).
func (l *Logger) Debug(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry.Debugf(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry.Warnf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry.Errorf(format, args...)
}

// Writer returns an io.Writer that writes to the log file.
func (l *Logger) Writer() io.Writer {
	if l == nil || l.sink == nil {
		return io.Discard
	}
	return l.sink
}
