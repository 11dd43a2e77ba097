package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/spantree/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithSink(zapcore.AddSync(&buf), true, "debug")
	require.NoError(t, err)

	log.Debug("excluding edge", zap.Int("u", 1), zap.Int("v", 2))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "excluding edge", entry["msg"])
	assert.Equal(t, "spantree", entry["logger"])
	assert.EqualValues(t, 2, entry["v"])
}

func TestNewWithSink_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithSink(zapcore.AddSync(&buf), false, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("matrix is not symmetric")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "matrix is not symmetric")
}

func TestNew_DefaultAndBadLevel(t *testing.T) {
	log, err := logger.New(false, "")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = logger.New(true, "loud")
	assert.Error(t, err)
}
