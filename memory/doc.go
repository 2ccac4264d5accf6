// Package memory bridges host code and a guest module's linear memory.
//
// Bridge wraps a loaded module's exported memory with bounds-checked reads
// and writes, little-endian scalar accessors, and allocate/deallocate calls
// routed through the guest's optional "allocate"/"free" exports. Guest memory
// is not garbage collected from the host side: every allocation must be
// released with the same length, which is why most callers should allocate
// through WithScope:
//
//	err := bridge.WithScope(ctx, func(s *memory.Scope) error {
//	    ptr, err := s.AllocateAndCopy(ctx, payload)
//	    if err != nil {
//	        return err
//	    }
//	    _, err = run.Call(ctx, uint64(ptr), uint64(len(payload)))
//	    return err
//	})
//
// The scope releases every allocation it handed out when the callback exits,
// on normal return, error return, and panic alike.
//
// Reads copy: a []byte returned by Bridge.Read never aliases guest memory,
// because memory growth can remap the backing store at any call into the
// guest.
package memory
