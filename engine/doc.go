// Package engine wraps wazero runtime creation for the module loader.
//
// One Engine is shared per process (or per test); it owns the wazero
// compilation cache so repeated loads of the same binary skip recompilation.
// Each load gets its own wazero.Runtime via NewRuntime, which keeps host
// module registrations from colliding between loads and lets every loaded
// module be closed on its own schedule.
//
//	eng := engine.NewWithConfig(&engine.Config{MemoryLimitPages: 1024})
//	defer eng.Close(ctx)
//
//	rt := eng.NewRuntime(ctx)
//	defer rt.Close(ctx)
//	compiled, err := rt.CompileModule(ctx, wasmBytes)
package engine
