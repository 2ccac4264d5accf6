package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEngineEventsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	ctx := context.Background()
	eng := New()

	rt := eng.NewRuntime(ctx)
	require.NoError(t, rt.Close(ctx))
	require.NoError(t, eng.Close(ctx))

	require.Equal(t, 1, logs.FilterMessage("runtime created").Len())
	require.Equal(t, 1, logs.FilterMessage("compilation cache closed").Len())
}

func TestLoggerDefaultsToNop(t *testing.T) {
	require.NotNil(t, Logger())
	// Nop logger must swallow writes without side effects.
	Logger().Debug("discarded")
}
