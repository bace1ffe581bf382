package logger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		l, err := New(Config{})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("debug json", func(t *testing.T) {
		l, err := New(Config{Level: "debug", Encoding: "json"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(Config{Level: "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestInitAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slugger.log")
	require.NoError(t, Init(Config{Level: "error", Encoding: "json", OutputPaths: []string{path}}))

	l := Get()
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.NoError(t, Sync())
}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), CommandKey, "top")
	ctx = context.WithValue(ctx, DatasetKey, "Batting.csv")

	assert.NotPanics(t, func() {
		WithContext(ctx).Debug("context logger", zap.Int("k", 3))
	})
}
