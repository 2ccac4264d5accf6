package binary

import "errors"

// Codec errors. Both are pure data-format failures raised synchronously to the
// immediate caller; they are never retried.
var (
	// ErrOverflow is returned when a LEB128 sequence implies a value outside
	// the 32-bit range.
	ErrOverflow = errors.New("leb128: overflow")

	// ErrUnterminated is returned when the buffer ends before a byte with a
	// clear continuation bit.
	ErrUnterminated = errors.New("leb128: unterminated sequence")
)

// maxGroups is the longest valid encoding of a 32-bit value: 5 groups of 7 bits.
const maxGroups = 5

// AppendU32 appends the canonical (minimal-length) ULEB128 encoding of v.
func AppendU32(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// AppendS32 appends the canonical SLEB128 encoding of v.
func AppendS32(dst []byte, v int32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

// DecodeU32 decodes a ULEB128 value from data starting at pos.
// It returns the value and the number of bytes consumed.
func DecodeU32(data []byte, pos int) (uint32, int, error) {
	var result uint32
	var shift uint
	for i := 0; i < maxGroups; i++ {
		if pos+i >= len(data) {
			return 0, 0, ErrUnterminated
		}
		b := data[pos+i]
		if i == maxGroups-1 {
			if b&0x80 != 0 {
				return 0, 0, ErrOverflow
			}
			// Bits above position 3 of the final group exceed 32 bits.
			if b&0x70 != 0 {
				return 0, 0, ErrOverflow
			}
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrOverflow
}

// DecodeS32 decodes an SLEB128 value from data starting at pos.
// It returns the value and the number of bytes consumed.
func DecodeS32(data []byte, pos int) (int32, int, error) {
	var result int32
	var shift uint
	for i := 0; i < maxGroups; i++ {
		if pos+i >= len(data) {
			return 0, 0, ErrUnterminated
		}
		b := data[pos+i]
		if i == maxGroups-1 {
			if b&0x80 != 0 {
				return 0, 0, ErrOverflow
			}
			// Bits 3-6 of the final group must sign-extend bit 31.
			if high := b & 0x78; high != 0 && high != 0x78 {
				return 0, 0, ErrOverflow
			}
		}
		result |= int32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 32 && b&0x40 != 0 {
				result |= ^int32(0) << shift
			}
			return result, i + 1, nil
		}
	}
	return 0, 0, ErrOverflow
}
