package genedex

import (
	"errors"

	"github.com/genomelab/genedex/application/service"
)

// ErrNoDatabase is returned by New when no database option was given.
var ErrNoDatabase = errors.New("genedex: no database configured (use WithSQLite or WithPostgres)")

// Service sentinels re-exported so callers can match with errors.Is
// without importing the service package.
var (
	ErrInvalidArgument    = service.ErrInvalidArgument
	ErrNotFound           = service.ErrNotFound
	ErrStoreUnavailable   = service.ErrStoreUnavailable
	ErrPartialAggregation = service.ErrPartialAggregation
	ErrClientClosed       = service.ErrClientClosed
)
