// Package wasm provides WebAssembly binary format encoding and inspection.
//
// This package implements the structural primitives of the WebAssembly binary
// format: LEB128 integer codecs, a module builder that synthesizes complete
// binaries from a declarative description, and a lightweight section walker
// for diagnostics and test fixtures.
//
// # LEB128 Encoding
//
// Encoders emit the canonical minimal-length sequence; decoders are strict,
// rejecting values outside the 32-bit range with ErrOverflow and truncated
// sequences with ErrUnterminated:
//
//	wasm.EncodeU32(300)            // [0xac, 0x02]
//	wasm.EncodeS32(-1)             // [0x7f]
//	v, n, err := wasm.DecodeU32(data, pos)
//
// # Building Modules
//
// Populate a Module and encode it; empty fields produce no section:
//
//	m := &wasm.Module{
//	    Types:    []wasm.FuncType{{Results: []wasm.ValType{wasm.ValI32}}},
//	    Funcs:    []uint32{0},
//	    Memories: []wasm.Limits{{Min: 1}},
//	    Exports: []wasm.Export{
//	        {Name: "memory", Kind: wasm.KindMemory, Index: 0},
//	        {Name: "run", Kind: wasm.KindFunc, Index: 0},
//	    },
//	    Code: []wasm.FuncBody{{Expr: wasm.Body(wasm.I32Const(42))}},
//	}
//	bin := m.Encode()
//
// # Inspecting Binaries
//
// Validate the preamble and enumerate sections without decoding their
// contents:
//
//	if !wasm.IsValidHeader(data) { ... }
//	sections, err := wasm.ParseSections(data)
//
// Declared section sizes are trusted at face value; ParseSections is a
// diagnostic tool, not a verifying decoder.
package wasm
