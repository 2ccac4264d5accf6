package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-core/errors"
)

type allocation struct {
	ptr  uint32
	size uint32
}

// Scope records every allocation handed out during one callback so all of
// them can be released exactly once at scope exit. One scope serves exactly
// one callback invocation; it must not be retained after the callback
// returns.
type Scope struct {
	bridge   *Bridge
	allocs   []allocation
	released bool
}

var scopePool = sync.Pool{
	New: func() any {
		return &Scope{allocs: make([]allocation, 0, 8)}
	},
}

const maxPooledAllocs = 128

func newScope(b *Bridge) *Scope {
	s := scopePool.Get().(*Scope)
	s.bridge = b
	s.released = false
	return s
}

// Allocate allocates size bytes through the bridge and records the pair for
// release at scope exit.
func (s *Scope) Allocate(ctx context.Context, size uint32) (uint32, error) {
	if s.released {
		return 0, errors.InvalidInput(errors.PhaseMemory, "allocation scope used after release")
	}
	ptr, err := s.bridge.Allocate(ctx, size)
	if err != nil {
		return 0, err
	}
	s.allocs = append(s.allocs, allocation{ptr: ptr, size: size})
	return ptr, nil
}

// AllocateAndCopy allocates len(data) bytes, writes data there, and records
// the allocation for release at scope exit.
func (s *Scope) AllocateAndCopy(ctx context.Context, data []byte) (uint32, error) {
	ptr, err := s.Allocate(ctx, uint32(len(data)))
	if err != nil {
		return 0, err
	}
	if err := s.bridge.Write(ptr, data); err != nil {
		return 0, err
	}
	return ptr, nil
}

// Count returns the number of live allocations recorded so far.
func (s *Scope) Count() int {
	return len(s.allocs)
}

// Bridge returns the underlying bridge for reads and scalar access.
func (s *Scope) Bridge() *Bridge {
	return s.bridge
}

// release frees every recorded allocation exactly once and returns the scope
// to the pool. Free failures are logged, not propagated: the caller's own
// error or panic takes precedence.
func (s *Scope) release(ctx context.Context) {
	if s.released {
		return
	}
	s.released = true
	for _, a := range s.allocs {
		if err := s.bridge.Deallocate(ctx, a.ptr, a.size); err != nil {
			Logger().Warn("scope release",
				zap.Uint32("ptr", a.ptr),
				zap.Uint32("size", a.size),
				zap.Error(err))
		}
	}
	s.allocs = s.allocs[:0]
	s.bridge = nil
	if cap(s.allocs) > maxPooledAllocs {
		return
	}
	scopePool.Put(s)
}
