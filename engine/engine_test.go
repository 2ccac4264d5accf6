package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-core/wasm"
)

func memoryModule(t *testing.T) []byte {
	t.Helper()
	m := &wasm.Module{
		Memories: []wasm.Limits{{Min: 1}},
		Exports:  []wasm.Export{{Name: "memory", Kind: wasm.KindMemory, Index: 0}},
	}
	return m.Encode()
}

func TestNewRuntimeCompiles(t *testing.T) {
	ctx := context.Background()
	eng := New()
	defer eng.Close(ctx)

	rt := eng.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, memoryModule(t))
	require.NoError(t, err)
	require.NotNil(t, compiled)
}

func TestRuntimesAreIndependent(t *testing.T) {
	ctx := context.Background()
	eng := New()
	defer eng.Close(ctx)

	r1 := eng.NewRuntime(ctx)
	r2 := eng.NewRuntime(ctx)
	defer r2.Close(ctx)

	// Same host module name in both runtimes must not collide.
	_, err := r1.NewHostModuleBuilder("env").Instantiate(ctx)
	require.NoError(t, err)
	_, err = r2.NewHostModuleBuilder("env").Instantiate(ctx)
	require.NoError(t, err)

	// Closing one runtime leaves the other usable.
	require.NoError(t, r1.Close(ctx))
	_, err = r2.CompileModule(ctx, memoryModule(t))
	require.NoError(t, err)
}

func TestMemoryLimitEnforced(t *testing.T) {
	ctx := context.Background()
	eng := NewWithConfig(&Config{MemoryLimitPages: 2})
	defer eng.Close(ctx)

	rt := eng.NewRuntime(ctx)
	defer rt.Close(ctx)

	over := &wasm.Module{Memories: []wasm.Limits{{Min: 4}}}
	_, err := rt.CompileModule(ctx, over.Encode())
	require.Error(t, err)
}
