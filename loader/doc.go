// Package loader resolves module sources to instantiated modules.
//
// A Source names exactly one of: an in-memory binary, a local file path, or
// an HTTP URL. Load resolves the source to bytes, merges caller imports over
// the default import object, instantiates the module in a runtime of its own,
// and verifies it exports a linear memory:
//
//	ld := loader.New(eng)
//	mod, err := ld.Load(ctx, loader.FromPath("plugin.wasm"))
//	if err != nil { ... }
//	defer mod.Close(ctx)
//
// The default import object supplies a trap handler under env._panic; the
// guest calls it with a (pointer, length) pair and the handler surfaces both
// values in the resulting host error. Callers override or extend imports per
// namespace and name, so replacing one function keeps its siblings:
//
//	src := loader.FromBytes(bin, loader.WithImports(loader.ImportObject{
//	    "env": {"_panic": myHandler},
//	}))
//
// Loads requested on hosts lacking the needed capability (a file path with no
// filesystem, a URL with no network) fail before any I/O is attempted.
//
// Cached wraps a Loader and a Source factory into a single-module memoized
// loader: concurrent first calls share one in-flight load, a success is
// cached permanently, and a failure leaves the cache empty so the next call
// retries.
package loader
