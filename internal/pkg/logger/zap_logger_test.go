package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger_FileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "planner.log")

	zl, err := NewZapLogger(ZapConfig{
		Service:  "planner-test",
		Level:    "debug",
		FilePath: path,
		MaxSize:  1,
	})
	require.NoError(t, err)

	zl.Info("hello", String("k", "v"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"service":"planner-test"`)
	assert.Equal(t, path, zl.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"})
	require.NoError(t, err)

	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
	assert.NoError(t, zl.Rotate())
}

func TestGlobalLogger_DefaultsToNop(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	require.NotNil(t, l)

	// must not panic
	Info("no output")
	Warn("no output", Int("n", 1))
}
