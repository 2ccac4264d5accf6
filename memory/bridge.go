package memory

import (
	"context"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	wasmcore "github.com/wippyai/wasm-core"
	"github.com/wippyai/wasm-core/errors"
)

// Well-known export names of the guest ABI.
const (
	ExportMemory     = "memory"
	ExportAllocate   = "allocate"
	ExportDeallocate = "free"
)

// Bridge provides typed access to a module's linear memory and to its
// optional exported allocator. All scalar accessors use the little-endian
// byte order mandated by the guest ABI.
//
// A Bridge is valid as long as the module it wraps is alive. It performs no
// balance checking: every Allocate must be paired with exactly one Deallocate
// of the same length, or guest memory leaks. Use WithScope to make that
// pairing automatic.
type Bridge struct {
	mem   api.Memory
	alloc api.Function
	free  api.Function
}

var _ wasmcore.Memory = (*Bridge)(nil)
var _ wasmcore.MemorySizer = (*Bridge)(nil)

// NewBridge wraps mod's exported linear memory. The allocator exports are
// looked up here but only required when an allocation method is called.
func NewBridge(mod api.Module) (*Bridge, error) {
	mem := mod.Memory()
	if mem == nil {
		return nil, errors.MissingExport(errors.PhaseMemory, ExportMemory)
	}
	return &Bridge{
		mem:   mem,
		alloc: mod.ExportedFunction(ExportAllocate),
		free:  mod.ExportedFunction(ExportDeallocate),
	}, nil
}

// Size returns the current size of linear memory in bytes.
func (b *Bridge) Size() uint32 {
	return b.mem.Size()
}

// Read copies length bytes at offset into a freshly owned buffer. It never
// returns a view into guest memory: growth can remap the backing store and
// invalidate outstanding views.
func (b *Bridge) Read(offset uint32, length uint32) ([]byte, error) {
	view, ok := b.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds("read", offset, length)
	}
	out := make([]byte, length)
	copy(out, view)
	return out, nil
}

// CopyOut reads length bytes at ptr into a freshly owned buffer. Alias for
// Read under the name the allocate/copy call sites use.
func (b *Bridge) CopyOut(ptr uint32, length uint32) ([]byte, error) {
	return b.Read(ptr, length)
}

// Write copies data into linear memory at offset.
func (b *Bridge) Write(offset uint32, data []byte) error {
	if !b.mem.Write(offset, data) {
		return errors.OutOfBounds("write", offset, uint32(len(data)))
	}
	return nil
}

func (b *Bridge) ReadU8(offset uint32) (uint8, error) {
	v, ok := b.mem.ReadByte(offset)
	if !ok {
		return 0, errors.OutOfBounds("read_u8", offset, 1)
	}
	return v, nil
}

func (b *Bridge) ReadU16(offset uint32) (uint16, error) {
	v, ok := b.mem.ReadUint16Le(offset)
	if !ok {
		return 0, errors.OutOfBounds("read_u16", offset, 2)
	}
	return v, nil
}

func (b *Bridge) ReadU32(offset uint32) (uint32, error) {
	v, ok := b.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds("read_u32", offset, 4)
	}
	return v, nil
}

func (b *Bridge) ReadU64(offset uint32) (uint64, error) {
	v, ok := b.mem.ReadUint64Le(offset)
	if !ok {
		return 0, errors.OutOfBounds("read_u64", offset, 8)
	}
	return v, nil
}

func (b *Bridge) WriteU8(offset uint32, value uint8) error {
	if !b.mem.WriteByte(offset, value) {
		return errors.OutOfBounds("write_u8", offset, 1)
	}
	return nil
}

func (b *Bridge) WriteU16(offset uint32, value uint16) error {
	if !b.mem.WriteUint16Le(offset, value) {
		return errors.OutOfBounds("write_u16", offset, 2)
	}
	return nil
}

func (b *Bridge) WriteU32(offset uint32, value uint32) error {
	if !b.mem.WriteUint32Le(offset, value) {
		return errors.OutOfBounds("write_u32", offset, 4)
	}
	return nil
}

func (b *Bridge) WriteU64(offset uint32, value uint64) error {
	if !b.mem.WriteUint64Le(offset, value) {
		return errors.OutOfBounds("write_u64", offset, 8)
	}
	return nil
}

// Allocate asks the guest's exported allocator for size bytes and returns the
// guest pointer.
func (b *Bridge) Allocate(ctx context.Context, size uint32) (uint32, error) {
	if b.alloc == nil {
		return 0, errors.MissingExport(errors.PhaseMemory, ExportAllocate)
	}
	results, err := b.alloc.Call(ctx, uint64(size))
	if err != nil {
		return 0, errors.AllocationFailed(size, err)
	}
	ptr := uint32(results[0])
	if ptr == 0 {
		return 0, errors.AllocationFailed(size, nil)
	}
	return ptr, nil
}

// Deallocate returns size bytes at ptr to the guest allocator.
func (b *Bridge) Deallocate(ctx context.Context, ptr, size uint32) error {
	if b.free == nil {
		return errors.MissingExport(errors.PhaseMemory, ExportDeallocate)
	}
	if _, err := b.free.Call(ctx, uint64(ptr), uint64(size)); err != nil {
		return errors.New(errors.PhaseMemory, errors.KindMemory).
			Detail("free %d bytes at %d", size, ptr).
			Cause(err).
			Build()
	}
	return nil
}

// AllocateAndCopy allocates len(data) bytes in the guest and writes data
// there. On write failure the allocation is returned before the error
// propagates.
func (b *Bridge) AllocateAndCopy(ctx context.Context, data []byte) (uint32, error) {
	size := uint32(len(data))
	ptr, err := b.Allocate(ctx, size)
	if err != nil {
		return 0, err
	}
	if err := b.Write(ptr, data); err != nil {
		if freeErr := b.Deallocate(ctx, ptr, size); freeErr != nil {
			Logger().Warn("free after failed write", zap.Uint32("ptr", ptr), zap.Error(freeErr))
		}
		return 0, err
	}
	return ptr, nil
}

// WithScope runs fn with a fresh allocation scope. Every allocation made
// through the scope is released when fn returns, whether it returns normally,
// returns an error, or panics.
func (b *Bridge) WithScope(ctx context.Context, fn func(*Scope) error) error {
	s := newScope(b)
	defer s.release(ctx)
	return fn(s)
}
