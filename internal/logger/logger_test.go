package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"development", "production", "PROD", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With("request_id", "abc")

	l.Info("household evaluated", "members", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "household evaluated", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.EqualValues(t, 3, fields["members"])
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Debug("debug")
		l.Warn("warn", "k", "v")
		l.Error("error")
		l.Sync()
	})
}
