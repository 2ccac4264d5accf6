package wasm

import "github.com/wippyai/wasm-core/wasm/internal/binary"

// LEB128 encoding/decoding for the WebAssembly binary format. Encoders always
// emit the canonical minimal-length form; decoders reject sequences that would
// exceed 32 bits or run off the end of the buffer.

// ErrOverflow is returned when a LEB128 value exceeds the 32-bit range.
var ErrOverflow = binary.ErrOverflow

// ErrUnterminated is returned when a LEB128 sequence ends with its
// continuation bit still set.
var ErrUnterminated = binary.ErrUnterminated

// EncodeU32 returns the unsigned LEB128 encoding of v.
func EncodeU32(v uint32) []byte {
	return binary.AppendU32(nil, v)
}

// AppendU32 appends the unsigned LEB128 encoding of v to dst.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.AppendU32(dst, v)
}

// EncodeS32 returns the signed LEB128 encoding of v.
func EncodeS32(v int32) []byte {
	return binary.AppendS32(nil, v)
}

// AppendS32 appends the signed LEB128 encoding of v to dst.
func AppendS32(dst []byte, v int32) []byte {
	return binary.AppendS32(dst, v)
}

// DecodeU32 decodes an unsigned LEB128 value from data starting at pos.
// It returns the decoded value and the number of bytes consumed.
func DecodeU32(data []byte, pos int) (uint32, int, error) {
	return binary.DecodeU32(data, pos)
}

// DecodeS32 decodes a signed LEB128 value from data starting at pos.
// It returns the decoded value and the number of bytes consumed.
func DecodeS32(data []byte, pos int) (int32, int, error) {
	return binary.DecodeS32(data, pos)
}
