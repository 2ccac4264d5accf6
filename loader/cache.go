package loader

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wippyai/wasm-core/errors"
)

// Factory lazily produces the source for one module. It is invoked at most
// once per load attempt, on first demand.
type Factory func() Source

// Cached wraps a loader and a source factory into a memoized single-module
// loader. The first Get triggers exactly one underlying load; every call
// arriving before that load settles shares its result. A successful load is
// cached for the lifetime of the Cached; a failed one is not, so the next Get
// retries from scratch.
type Cached struct {
	ld      *Loader
	factory Factory

	group  singleflight.Group
	mu     sync.RWMutex
	loaded *Loaded
}

// NewCached creates a memoized loader around factory.
func NewCached(ld *Loader, factory Factory) *Cached {
	return &Cached{ld: ld, factory: factory}
}

// Get returns the cached module, loading it on first use. Concurrent callers
// share one in-flight load.
func (c *Cached) Get(ctx context.Context) (*Loaded, error) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded != nil {
		return loaded, nil
	}

	// One factory closure describes exactly one module, so the flight key
	// is constant rather than argument-derived.
	v, err, _ := c.group.Do("load", func() (any, error) {
		c.mu.RLock()
		cached := c.loaded
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		loaded, err := c.ld.Load(ctx, c.factory())
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.loaded = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Loaded), nil
}

// Current returns the loaded module without triggering a load. It fails with
// a not-initialized error if no load has succeeded yet.
func (c *Cached) Current() (*Loaded, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.loaded == nil {
		return nil, errors.NotInitialized(errors.PhaseLoad, "module cache")
	}
	return c.loaded, nil
}

// Close releases the cached module, if any, and resets the cache so a later
// Get loads afresh.
func (c *Cached) Close(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.loaded
	c.loaded = nil
	c.mu.Unlock()
	if loaded == nil {
		return nil
	}
	return loaded.Close(ctx)
}
