package service

import "errors"

// Sentinel errors for the service layer. Callers match with errors.Is;
// the HTTP layer maps them onto status codes.
var (
	// ErrInvalidArgument indicates malformed or empty input. Not retryable.
	ErrInvalidArgument = errors.New("genedex: invalid argument")

	// ErrNotFound indicates an absent gene, species, or chromosome. An
	// expected state, not a fault.
	ErrNotFound = errors.New("genedex: not found")

	// ErrStoreUnavailable indicates a transient store fault. Retryable.
	ErrStoreUnavailable = errors.New("genedex: store unavailable")

	// ErrPartialAggregation indicates a non-primary source failed during
	// detail aggregation. The affected section is omitted and the rest of
	// the record is returned; this error is logged, never returned.
	ErrPartialAggregation = errors.New("genedex: partial aggregation")

	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("genedex: client is closed")
)
