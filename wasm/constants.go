package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

// HeaderSize is the length of the 8-byte module preamble (magic + version).
const HeaderSize = 8

// PageSize is the WebAssembly linear memory page size in bytes.
const PageSize = 65536

// Section IDs define the binary identifiers for each module section.
// Sections must appear in increasing order by ID (except custom sections).
const (
	SectionCustom   byte = 0  // Custom section (can appear anywhere)
	SectionType     byte = 1  // Type section (function signatures)
	SectionImport   byte = 2  // Import section
	SectionFunction byte = 3  // Function section (type indices)
	SectionTable    byte = 4  // Table section
	SectionMemory   byte = 5  // Memory section
	SectionGlobal   byte = 6  // Global section
	SectionExport   byte = 7  // Export section
	SectionStart    byte = 8  // Start section
	SectionElement  byte = 9  // Element section
	SectionCode     byte = 10 // Code section (function bodies)
	SectionData     byte = 11 // Data section
)

// sectionNames maps section IDs to their spec names for diagnostics.
var sectionNames = [...]string{
	"custom", "type", "import", "function", "table", "memory",
	"global", "export", "start", "element", "code", "data",
}

// SectionName returns the human-readable name for a section ID, or "unknown"
// for IDs outside the core set.
func SectionName(id byte) string {
	if int(id) < len(sectionNames) {
		return sectionNames[id]
	}
	return "unknown"
}

// Import/Export descriptor kinds identify the type of imported or exported item.
const (
	KindFunc   byte = 0 // Function import/export
	KindTable  byte = 1 // Table import/export
	KindMemory byte = 2 // Memory import/export
	KindGlobal byte = 3 // Global import/export
)

// ValType is a WebAssembly value type encoding.
type ValType byte

// Value type encodings as defined in the WebAssembly binary format.
const (
	ValI32 ValType = 0x7F // 32-bit integer
	ValI64 ValType = 0x7E // 64-bit integer
	ValF32 ValType = 0x7D // 32-bit float
	ValF64 ValType = 0x7C // 64-bit float
)

// FuncTypeTag introduces a function type in the type section.
const FuncTypeTag byte = 0x60

// Opcodes used by the instruction builder.
const (
	OpEnd        byte = 0x0B // end of expression
	OpCall       byte = 0x10 // call function by index
	OpDrop       byte = 0x1A // discard top of stack
	OpLocalGet   byte = 0x20 // push local onto stack
	OpLocalSet   byte = 0x21 // pop into local
	OpI32Load    byte = 0x28 // load i32 from memory
	OpI32Store   byte = 0x36 // store i32 to memory
	OpMemorySize byte = 0x3F // current memory size in pages
	OpMemoryGrow byte = 0x40 // grow memory by n pages
	OpI32Const   byte = 0x41 // push i32 constant
	OpI32Add     byte = 0x6A // i32 addition
	OpI32Sub     byte = 0x6B // i32 subtraction
)
