// Package wasmcore provides the foundation for hosting compiled WebAssembly
// modules in Go: binary-format encoding and decoding, module loading from
// bytes, files or URLs, and a typed bridge into guest linear memory.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	wasmcore/            Root package with the core Memory interfaces
//	├── wasm/            LEB128 codec, binary builder, header/section parser
//	├── env/             Memoized host capability detection
//	├── engine/          Low-level wazero runtime construction and caching
//	├── loader/          Module sources, import merging, load pipeline, caching
//	├── memory/          Linear-memory bridge and scoped guest allocation
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Load a module from disk and exchange bytes with it:
//
//	eng := engine.New()
//	defer eng.Close(ctx)
//
//	ld := loader.New(eng)
//	mod, err := ld.Load(ctx, loader.FromPath("guest.wasm"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mod.Close(ctx)
//
//	err = mod.Memory().WithScope(ctx, func(s *memory.Scope) error {
//	    ptr, err := s.AllocateAndCopy(ctx, []byte("input"))
//	    if err != nil {
//	        return err
//	    }
//	    _, err = mod.Function("process").Call(ctx, uint64(ptr), 5)
//	    return err
//	})
//
// # Memory Model
//
// Guest linear memory can only grow, never shrink, and nothing on the host
// side garbage-collects guest allocations: every allocate must be paired with
// exactly one deallocate of the same length. memory.Scope is the sanctioned
// way to keep that pairing — it records every allocation handed out during one
// callback and releases all of them when the callback returns or panics.
//
// # Thread Safety
//
// Engine and Loader are safe for concurrent use. A loaded module instance is
// NOT thread-safe; use one instance per logical consumer or synchronize
// externally.
package wasmcore
