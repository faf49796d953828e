package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.ErrorContains(t, err, `invalid log level "chatty"`)
}

func TestNew(t *testing.T) {
	lggr, err := New("warn")
	require.NoError(t, err)
	assert.False(t, lggr.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, lggr.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud")
	assert.Error(t, err)
}

func TestTestObserved(t *testing.T) {
	lggr, logs := TestObserved(t, zapcore.WarnLevel)
	lggr.Info("ignored")
	lggr.Warn("kept")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}
