package reporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/five82/tcutil/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "info", "text")
	require.NoError(t, err)
	rep := NewLogReporter(log)

	rep.Info(InfoSummary{InputFile: "a.txt", Version: "v2", TotalFrames: 7, TotalLength: 200 * time.Millisecond, Fingerprint: "abc"})
	rep.ConversionStarted(ConversionSummary{InputFile: "a.txt", OutputFile: "-", FromVersion: "v2", ToVersion: "v1"})
	rep.ConversionProgress(ProgressSnapshot{CurrentFrame: 1, TotalFrames: 2})
	rep.Warning("careful")
	rep.Error(ReporterError{Title: "Format Error", Message: "bad line", Context: "File: a.txt"})
	rep.FileProgress(FileProgressContext{CurrentFile: 1, TotalFiles: 2})

	out := buf.String()
	assert.Contains(t, out, "00:00:00.200")
	assert.Contains(t, out, "fingerprint=abc")
	assert.Contains(t, out, "to <stdout> (v1)")
	assert.Contains(t, out, "level=warning msg=careful")
	assert.Contains(t, out, "Format Error: bad line (File: a.txt)")
	assert.NotContains(t, out, "File 1 of 2", "debug entries are filtered at info level")
}

func TestLogReporterNilLogger(t *testing.T) {
	rep := NewLogReporter(nil)
	assert.NotPanics(t, func() {
		rep.Info(InfoSummary{})
		rep.BatchComplete(BatchSummary{})
		rep.Verbose("quiet")
	})
}
