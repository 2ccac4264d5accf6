package loader

import (
	"context"
	"os"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-core/engine"
	"github.com/wippyai/wasm-core/env"
	"github.com/wippyai/wasm-core/errors"
	"github.com/wippyai/wasm-core/memory"
)

// Loader resolves module sources to instantiated modules. One Loader serves
// any number of Load calls; each call gets its own runtime from the shared
// engine.
type Loader struct {
	eng   *engine.Engine
	caps  env.Capabilities
	fetch FetchFunc
	log   *zap.Logger
}

// Option customizes a Loader.
type Option func(*Loader)

// WithCapabilities substitutes the host capability descriptor, normally
// obtained from env.Detect.
func WithCapabilities(caps env.Capabilities) Option {
	return func(l *Loader) {
		l.caps = caps
	}
}

// WithDefaultFetch sets the fetch function used for URL sources that carry
// none of their own.
func WithDefaultFetch(fetch FetchFunc) Option {
	return func(l *Loader) {
		l.fetch = fetch
	}
}

// WithLogger sets the loader's logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// New creates a Loader on top of eng.
func New(eng *engine.Engine, opts ...Option) *Loader {
	l := &Loader{
		eng:  eng,
		caps: env.Detect(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fetch == nil {
		l.fetch = NewHTTPFetcher(nil).Fetch
	}
	return l
}

// Loaded is an instantiated module together with its runtime and memory
// bridge. The holder owns it and must Close it when done; closing releases
// the module's runtime and with it all guest memory.
type Loaded struct {
	runtime wazero.Runtime
	module  api.Module
	bridge  *memory.Bridge
}

// Module returns the instantiated module.
func (l *Loaded) Module() api.Module {
	return l.module
}

// Memory returns the bridge over the module's exported linear memory.
func (l *Loaded) Memory() *memory.Bridge {
	return l.bridge
}

// Function returns the exported function with the given name, or nil.
func (l *Loaded) Function(name string) api.Function {
	return l.module.ExportedFunction(name)
}

// Close releases the module and its runtime.
func (l *Loaded) Close(ctx context.Context) error {
	return l.runtime.Close(ctx)
}

// Load resolves src to raw bytes, instantiates the module with the merged
// import object, and verifies it exports a linear memory. Every underlying
// failure (I/O, fetch, compile, instantiate) is wrapped into a load failure
// carrying the original cause.
func (l *Loader) Load(ctx context.Context, src Source) (*Loaded, error) {
	start := time.Now()
	loaded, err := l.load(ctx, src)
	observeLoad(src.Kind, time.Since(start), err)
	if err != nil {
		l.log.Warn("module load failed",
			zap.String("kind", src.Kind.String()),
			zap.Error(err))
		return nil, err
	}
	l.log.Debug("module loaded",
		zap.String("kind", src.Kind.String()),
		zap.Uint32("memory_bytes", loaded.bridge.Size()),
		zap.Duration("elapsed", time.Since(start)))
	return loaded, nil
}

func (l *Loader) load(ctx context.Context, src Source) (*Loaded, error) {
	data, err := l.resolve(ctx, src)
	if err != nil {
		return nil, err
	}

	rt := l.eng.NewRuntime(ctx)

	imports := DefaultImports().Merge(src.Imports)
	for ns, funcs := range imports {
		builder := rt.NewHostModuleBuilder(ns)
		for name, fn := range funcs {
			builder.NewFunctionBuilder().
				WithGoModuleFunction(fn.Fn, fn.Params, fn.Results).
				Export(name)
		}
		if _, err := builder.Instantiate(ctx); err != nil {
			_ = rt.Close(ctx)
			return nil, errors.Load("instantiate host imports", err)
		}
	}

	compiled, err := rt.CompileModule(ctx, data)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load("compile module", err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load("instantiate module", err)
	}

	// Every downstream consumer assumes a usable linear memory. The wrapping
	// keeps this on the load-failure branch while the cause still carries the
	// missing-export kind.
	if mod.Memory() == nil {
		_ = rt.Close(ctx)
		return nil, errors.Load("module does not export a linear memory",
			errors.MissingExport(errors.PhaseLoad, memory.ExportMemory))
	}

	bridge, err := memory.NewBridge(mod)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, err
	}

	return &Loaded{runtime: rt, module: mod, bridge: bridge}, nil
}

// resolve turns the source union into raw module bytes without touching the
// engine. Fast-fail paths do zero I/O.
func (l *Loader) resolve(ctx context.Context, src Source) ([]byte, error) {
	switch src.Kind {
	case SourceBytes:
		return src.Bytes, nil

	case SourcePath:
		if !l.caps.Filesystem {
			return nil, errors.MissingCapability("filesystem")
		}
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, errors.Load("read module file", err)
		}
		return data, nil

	case SourceURL:
		if !l.caps.Network {
			return nil, errors.MissingCapability("network")
		}
		fetch := src.Fetch
		if fetch == nil {
			fetch = l.fetch
		}
		data, err := fetch(ctx, src.URL)
		if err != nil {
			return nil, errors.Load("fetch module", err)
		}
		return data, nil

	default:
		return nil, errors.InvalidInput(errors.PhaseLoad, "no module source provided")
	}
}
