// Package errors provides standardized error handling for ringbuffer packages and tools.
//
// # Overview
//
// Errors fall into three classes: Transient (the condition may clear, e.g. a full ring
// that a consumer is draining), Invalid (bad input or configuration, do not retry) and
// Fatal (unrecoverable, stop processing).
//
// The ring itself never returns errors from Push/Pop; it reports full and empty through
// booleans. The error forms exist for callers that prefer error returns (ring.TryPush,
// ring.TryPop), for construction failures, and for the command-line tools.
//
// # Quick Start
//
//	r, err := ring.New[int](1)
//	if errors.IsInvalid(err) {
//	    // capacity below 2 is rejected
//	}
//
//	if err := r.TryPush(v); stderrors.Is(err, errors.ErrBufferFull) {
//	    // drop, retry later, or block externally
//	}
//
// # Error Wrapping Pattern
//
// All wrapping follows the format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions attach a classification:
//
//	errors.WrapTransient(err, "Ring", "TryPush", "push")
//	errors.WrapInvalid(err, "Ring", "New", "validate capacity")
//	errors.WrapFatal(err, "Server", "Start", "listen")
//
// Wrapped errors keep working with errors.Is and errors.As from the standard library;
// this package re-exports neither, so import the standard package under another name
// (the module uses stderrors) when both are needed.
package errors
