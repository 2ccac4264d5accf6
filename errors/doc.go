// Package errors provides structured error types for the wasm-core library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries a detail message, an optional field path,
// the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindLoadFailed).
//		Detail("fetch %s", url).
//		Cause(httpErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotInitialized(errors.PhaseLoad, "loader")
//	err := errors.MissingExport(errors.PhaseMemory, "allocate")
//
// All errors implement the standard error interface; errors.Is matches on
// (Phase, Kind) so callers branch on category, never on message text.
package errors
