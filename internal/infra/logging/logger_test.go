package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel}, // default
		{"", zapcore.InfoLevel},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_StderrWarnOnly(t *testing.T) {
	var stderr bytes.Buffer
	logger, err := New(Options{Stderr: &stderr, Level: "debug"})
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	logger.Debug(0, "store", "debug message")
	logger.Info(1, "task", "info message")
	logger.Warn(0, "store", "warn message")

	out := stderr.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Equal(t, "WARN store warn message\n", out)
}

func TestLogger_StderrRespectsHigherLevel(t *testing.T) {
	var stderr bytes.Buffer
	logger, err := New(Options{Stderr: &stderr, Level: "error"})
	require.NoError(t, err)

	logger.Warn(0, "store", "warn message")
	logger.Error(2, "task", "error message")

	out := stderr.String()
	assert.NotContains(t, out, "warn message")
	assert.Contains(t, out, "ERROR task error message")
	assert.Contains(t, out, `"task": 2`)
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "task-cli.log")
	var stderr bytes.Buffer
	logger, err := New(Options{Stderr: &stderr, Level: "info", File: path})
	require.NoError(t, err)

	logger.Debug(1, "task", "filtered")
	logger.Info(1, "task", "task added")
	logger.Warn(0, "store", "recovered")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "task", entry["category"])
	assert.Equal(t, "task added", entry["msg"])
	assert.EqualValues(t, 1, entry["task"])
	assert.Contains(t, entry, "timestamp")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "WARN store recovered\n", stderr.String())
}

func TestLogger_FileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task-cli.log")

	for i := 0; i < 2; i++ {
		logger, err := New(Options{Stderr: &bytes.Buffer{}, Level: "info", File: path})
		require.NoError(t, err)
		logger.Info(0, "task", "run")
		require.NoError(t, logger.Close())
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), `"msg":"run"`))
}

func TestLogger_FileOpenError(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be opened as the log file.
	_, err := New(Options{Level: "info", File: dir})
	assert.Error(t, err)
}
