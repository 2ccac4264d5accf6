package wasm

import (
	"errors"

	"github.com/wippyai/wasm-core/wasm/internal/binary"
)

// Header validation errors.
var (
	ErrInvalidMagic   = errors.New("wasm: invalid magic number")
	ErrInvalidVersion = errors.New("wasm: unsupported binary version")
)

// IsValidHeader reports whether data starts with a valid WebAssembly module
// preamble: the magic constant followed by version 1.
func IsValidHeader(data []byte) bool {
	return ValidateHeader(data) == nil
}

// ValidateHeader checks the 8-byte module preamble and reports which part of
// it is wrong. A buffer shorter than the preamble fails the magic check.
func ValidateHeader(data []byte) error {
	r := binary.NewReader(data)
	magic, err := r.ReadU32LE()
	if err != nil || magic != Magic {
		return ErrInvalidMagic
	}
	version, err := r.ReadU32LE()
	if err != nil || version != Version {
		return ErrInvalidVersion
	}
	return nil
}

// ParseSections enumerates the sections of a module binary in order of
// appearance. Declared sizes are trusted: a section whose size field runs past
// the end of the buffer terminates the walk with the sections seen so far
// rather than an error. This is a diagnostic tool, not a verifying decoder.
func ParseSections(data []byte) ([]SectionInfo, error) {
	if err := ValidateHeader(data); err != nil {
		return nil, err
	}

	r := binary.NewReader(data)
	_ = r.Skip(HeaderSize)

	var sections []SectionInfo
	for r.Remaining() > 0 {
		id, err := r.Byte()
		if err != nil {
			return sections, err
		}
		size, err := r.ReadU32()
		if err != nil {
			return sections, err
		}
		sections = append(sections, SectionInfo{
			ID:     id,
			Name:   SectionName(id),
			Offset: r.Pos(),
			Size:   size,
		})
		if err := r.Skip(int(size)); err != nil {
			// Lying size field; report the section and stop.
			return sections, nil
		}
	}
	return sections, nil
}

// FindSection returns the first section with the given ID, or false if the
// module has none. Custom sections may repeat; this returns only the first.
func FindSection(data []byte, id byte) (SectionInfo, bool, error) {
	sections, err := ParseSections(data)
	if err != nil {
		return SectionInfo{}, false, err
	}
	for _, s := range sections {
		if s.ID == id {
			return s, true, nil
		}
	}
	return SectionInfo{}, false, nil
}
