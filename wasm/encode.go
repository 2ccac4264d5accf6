package wasm

import (
	"github.com/wippyai/wasm-core/wasm/internal/binary"
)

// Encode encodes the module to WebAssembly binary format
func (m *Module) Encode() []byte {
	w := binary.NewWriter()

	// Magic number and version
	w.WriteU32LE(Magic)
	w.WriteU32LE(Version)

	// Type section
	if len(m.Types) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Types)))
		for _, ft := range m.Types {
			sec.Byte(FuncTypeTag)
			writeValTypes(sec, ft.Params)
			writeValTypes(sec, ft.Results)
		}
		writeSection(w, SectionType, sec.Bytes())
	}

	// Import section
	if len(m.Imports) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Imports)))
		for _, imp := range m.Imports {
			sec.WriteName(imp.Module)
			sec.WriteName(imp.Name)
			sec.Byte(imp.Kind)
			switch imp.Kind {
			case KindFunc:
				sec.WriteU32(imp.TypeIdx)
			case KindMemory:
				if imp.Memory != nil {
					writeLimits(sec, *imp.Memory)
				}
			}
		}
		writeSection(w, SectionImport, sec.Bytes())
	}

	// Function section
	if len(m.Funcs) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Funcs)))
		for _, typeIdx := range m.Funcs {
			sec.WriteU32(typeIdx)
		}
		writeSection(w, SectionFunction, sec.Bytes())
	}

	// Memory section
	if len(m.Memories) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Memories)))
		for _, mem := range m.Memories {
			writeLimits(sec, mem)
		}
		writeSection(w, SectionMemory, sec.Bytes())
	}

	// Export section
	if len(m.Exports) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Exports)))
		for _, exp := range m.Exports {
			sec.WriteName(exp.Name)
			sec.Byte(exp.Kind)
			sec.WriteU32(exp.Index)
		}
		writeSection(w, SectionExport, sec.Bytes())
	}

	// Code section
	if len(m.Code) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Code)))
		for _, body := range m.Code {
			fb := binary.NewWriter()
			fb.WriteU32(uint32(len(body.Locals)))
			for _, l := range body.Locals {
				fb.WriteU32(l.Count)
				fb.Byte(byte(l.Type))
			}
			fb.WriteBytes(body.Expr)
			sec.WriteU32(uint32(fb.Len()))
			sec.WriteBytes(fb.Bytes())
		}
		writeSection(w, SectionCode, sec.Bytes())
	}

	// Data section
	if len(m.Data) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Data)))
		for _, seg := range m.Data {
			sec.WriteU32(0) // active, memory 0
			sec.Byte(OpI32Const)
			sec.WriteS32(int32(seg.Offset))
			sec.Byte(OpEnd)
			sec.WriteU32(uint32(len(seg.Init)))
			sec.WriteBytes(seg.Init)
		}
		writeSection(w, SectionData, sec.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *binary.Writer, id byte, content []byte) {
	w.Byte(id)
	w.WriteU32(uint32(len(content)))
	w.WriteBytes(content)
}

func writeValTypes(w *binary.Writer, types []ValType) {
	w.WriteU32(uint32(len(types)))
	for _, t := range types {
		w.Byte(byte(t))
	}
}

func writeLimits(w *binary.Writer, l Limits) {
	if l.HasMax {
		w.Byte(0x01)
		w.WriteU32(l.Min)
		w.WriteU32(l.Max)
	} else {
		w.Byte(0x00)
		w.WriteU32(l.Min)
	}
}

// Instruction builders for synthesized function bodies. Each returns the
// encoded opcode plus immediates; compose with Body.

// I32Const pushes an i32 constant.
func I32Const(v int32) []byte {
	return AppendS32([]byte{OpI32Const}, v)
}

// Call calls the function at idx in the combined import+function index space.
func Call(idx uint32) []byte {
	return AppendU32([]byte{OpCall}, idx)
}

// LocalGet pushes local idx onto the stack.
func LocalGet(idx uint32) []byte {
	return AppendU32([]byte{OpLocalGet}, idx)
}

// LocalSet pops the stack into local idx.
func LocalSet(idx uint32) []byte {
	return AppendU32([]byte{OpLocalSet}, idx)
}

// I32Add adds the top two i32 values.
func I32Add() []byte {
	return []byte{OpI32Add}
}

// I32Load loads an i32 from the address on the stack plus offset.
func I32Load(offset uint32) []byte {
	out := AppendU32([]byte{OpI32Load}, 2) // alignment hint: 4 bytes
	return AppendU32(out, offset)
}

// I32Store stores an i32 at the address on the stack plus offset.
func I32Store(offset uint32) []byte {
	out := AppendU32([]byte{OpI32Store}, 2)
	return AppendU32(out, offset)
}

// MemorySize pushes the current memory size in pages.
func MemorySize() []byte {
	return []byte{OpMemorySize, 0x00}
}

// MemoryGrow grows memory by the page count on the stack, pushing the old
// size or -1.
func MemoryGrow() []byte {
	return []byte{OpMemoryGrow, 0x00}
}

// Body concatenates instructions and terminates the expression with OpEnd.
func Body(instrs ...[]byte) []byte {
	var out []byte
	for _, ins := range instrs {
		out = append(out, ins...)
	}
	return append(out, OpEnd)
}
