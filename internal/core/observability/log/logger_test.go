package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}

	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New(Config{Level: "debug", Encoding: "json"})
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, logger.GetLevel())

	logger.SetLevel(LevelError)
	assert.Equal(t, LevelError, logger.GetLevel())

	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestLogger_Fields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewWithCore(core, LevelDebug)

	logger.With(String("world", "w1")).Info("body added",
		Int("bodies", 3),
		Float64("dt", 0.016),
		Bool("dynamic", true),
		Duration("elapsed", time.Second),
		Uint64("tick", 42),
		Error(errors.New("boom")),
		Any("extra", []int{1}),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "body added", entries[0].Message)
	assert.Equal(t, "w1", fields["world"])
	assert.Equal(t, int64(3), fields["bodies"])
	assert.Equal(t, 0.016, fields["dt"])
	assert.Equal(t, true, fields["dynamic"])
	assert.Equal(t, time.Second, fields["elapsed"])
	assert.Equal(t, uint64(42), fields["tick"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewWithCore(core, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Named("physics").Error("shown")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "physics", logs.All()[1].LoggerName)

	logger.SetLevel(LevelDebug)
	logger.Debug("now shown")
	assert.Equal(t, 3, logs.Len())
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Info("discarded", String("k", "v"))
	assert.NotNil(t, logger.With(Int("n", 1)))
}
