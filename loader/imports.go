package loader

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-core/errors"
)

// DefaultNamespace is the import namespace the defaults live under.
const DefaultNamespace = "env"

// TrapImportName is the well-known name of the guest trap import.
const TrapImportName = "_panic"

// HostFunc describes one host function made available to the guest.
type HostFunc struct {
	Params  []api.ValueType
	Results []api.ValueType
	Fn      api.GoModuleFunc
}

// ImportObject maps namespace -> function name -> host function.
type ImportObject map[string]map[string]HostFunc

// Merge overlays overrides onto o, merging per function name within each
// namespace: overriding one import keeps its siblings. Neither input is
// modified.
func (o ImportObject) Merge(overrides ImportObject) ImportObject {
	out := make(ImportObject, len(o)+len(overrides))
	for ns, funcs := range o {
		merged := make(map[string]HostFunc, len(funcs))
		for name, fn := range funcs {
			merged[name] = fn
		}
		out[ns] = merged
	}
	for ns, funcs := range overrides {
		merged, ok := out[ns]
		if !ok {
			merged = make(map[string]HostFunc, len(funcs))
			out[ns] = merged
		}
		for name, fn := range funcs {
			merged[name] = fn
		}
	}
	return out
}

// DefaultImports returns the import object supplied to every load: the trap
// import under env._panic. The default handler raises a host error embedding
// the raw (pointer, length) pair the guest passed, since the guest cannot
// produce readable text itself. Callers that want the UTF-8 message decoded
// from guest memory override the import via WithImports.
func DefaultImports() ImportObject {
	return ImportObject{
		DefaultNamespace: {
			TrapImportName: {
				Params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI32},
				Fn: api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
					ptr := uint32(stack[0])
					length := uint32(stack[1])
					panic(errors.Trap(ptr, length))
				}),
			},
		},
	}
}
