package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsole_RoutesToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Log("mounted", 3)
	Warn("slow render")
	Error("renderer is nil")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "mounted 3", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "renderer is nil", entries[2].Message)
}

func TestConsole_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.NotPanics(t, func() {
		Log("nothing to see")
		Error("still nothing")
	})
	assert.NotNil(t, Logger())
}
