package memory_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-core/memory"
)

func TestScopeReleasesAllOnReturn(t *testing.T) {
	ctx := context.Background()
	mod, alloc := loadAllocModule(t)
	bridge := mod.Memory()

	const n = 5
	err := bridge.WithScope(ctx, func(s *memory.Scope) error {
		for i := 0; i < n; i++ {
			if _, err := s.Allocate(ctx, uint32(8*(i+1))); err != nil {
				return err
			}
		}
		require.Equal(t, n, s.Count())
		require.Zero(t, alloc.freedCount(), "nothing freed before scope exit")
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, n, alloc.freedCount())
}

func TestScopeReleasesOnError(t *testing.T) {
	ctx := context.Background()
	mod, alloc := loadAllocModule(t)
	bridge := mod.Memory()

	sentinel := stderrors.New("callback failed")
	err := bridge.WithScope(ctx, func(s *memory.Scope) error {
		if _, err := s.Allocate(ctx, 16); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, alloc.freedCount())
}

func TestScopeReleasesOnPanic(t *testing.T) {
	ctx := context.Background()
	mod, alloc := loadAllocModule(t)
	bridge := mod.Memory()

	require.PanicsWithValue(t, "guest blew up", func() {
		_ = bridge.WithScope(ctx, func(s *memory.Scope) error {
			if _, err := s.Allocate(ctx, 16); err != nil {
				return err
			}
			if _, err := s.Allocate(ctx, 32); err != nil {
				return err
			}
			panic("guest blew up")
		})
	})
	require.Equal(t, 2, alloc.freedCount(), "panic must not skip release")
}

func TestScopeAllocateAndCopy(t *testing.T) {
	ctx := context.Background()
	mod, alloc := loadAllocModule(t)
	bridge := mod.Memory()

	payload := []byte("scoped payload")
	var ptr uint32
	err := bridge.WithScope(ctx, func(s *memory.Scope) error {
		var err error
		ptr, err = s.AllocateAndCopy(ctx, payload)
		if err != nil {
			return err
		}
		got, err := s.Bridge().Read(ptr, uint32(len(payload)))
		if err != nil {
			return err
		}
		require.Equal(t, payload, got)
		return nil
	})
	require.NoError(t, err)

	alloc.mu.Lock()
	size, freed := alloc.freed[ptr]
	alloc.mu.Unlock()
	require.True(t, freed)
	require.Equal(t, uint32(len(payload)), size)
}

func TestScopeFreesMatchingLengths(t *testing.T) {
	ctx := context.Background()
	mod, alloc := loadAllocModule(t)
	bridge := mod.Memory()

	sizes := []uint32{8, 64, 256}
	ptrs := make([]uint32, len(sizes))
	err := bridge.WithScope(ctx, func(s *memory.Scope) error {
		for i, size := range sizes {
			ptr, err := s.Allocate(ctx, size)
			if err != nil {
				return err
			}
			ptrs[i] = ptr
		}
		return nil
	})
	require.NoError(t, err)

	alloc.mu.Lock()
	defer alloc.mu.Unlock()
	for i, ptr := range ptrs {
		require.Equal(t, sizes[i], alloc.freed[ptr], "free length must match allocation length")
	}
}
