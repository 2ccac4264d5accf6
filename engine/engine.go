package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
)

// Engine owns the pieces of wazero that are safe and cheap to share across
// module loads: the compilation cache and the base runtime configuration.
// Runtimes themselves are created per load so each loaded module gets its own
// host-module namespace and can be closed independently.
type Engine struct {
	cache wazero.CompilationCache
	cfg   wazero.RuntimeConfig
}

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	// 256 = 16MB, 1024 = 64MB, 4096 = 256MB
	MemoryLimitPages uint32
}

// New creates an engine with default configuration.
func New() *Engine {
	return NewWithConfig(nil)
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(cfg *Config) *Engine {
	cache := wazero.NewCompilationCache()
	runtimeCfg := wazero.NewRuntimeConfig().WithCompilationCache(cache)

	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	return &Engine{cache: cache, cfg: runtimeCfg}
}

// NewRuntime creates a fresh runtime sharing the engine's compilation cache.
// The caller owns the runtime and must close it when the module it hosts is
// no longer needed.
func (e *Engine) NewRuntime(ctx context.Context) wazero.Runtime {
	Logger().Debug("runtime created")
	return wazero.NewRuntimeWithConfig(ctx, e.cfg)
}

// Close releases the shared compilation cache. Runtimes created by NewRuntime
// must be closed separately by their owners.
func (e *Engine) Close(ctx context.Context) error {
	Logger().Debug("compilation cache closed")
	return e.cache.Close(ctx)
}
