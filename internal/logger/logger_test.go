package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"":       zapcore.InfoLevel,
		"chatty": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closeLog := New("warn", "", &buf)

	log.Info("hidden")
	log.Warn("face conflict")
	require.NoError(t, closeLog())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN face conflict")
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skinmesh.log")
	log, closeLog := New("debug", path, nil)

	log.Debug("region fill fell back")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "DEBUG"))
	assert.Contains(t, string(data), "region fill fell back")
}

func TestNew_NoOutputIsNop(t *testing.T) {
	log, closeLog := New("info", "", nil)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
	assert.NoError(t, closeLog())
}

func TestNew_CloseReleasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skinmesh.log")
	log, closeLog := New("info", path, nil)

	log.Info("mesh ready")
	require.NoError(t, closeLog())
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mesh ready")

	// the file can be removed once closed
	require.NoError(t, os.Remove(path))
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("x.log")
	assert.Equal(t, "x.log", cfg.Path)
	assert.Equal(t, 50, cfg.MaxSizeMB)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.True(t, cfg.Compress)
}
