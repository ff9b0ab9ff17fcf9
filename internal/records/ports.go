// Package records defines the inbound boundary: anything that can produce
// the normalized record collection the aggregation engine consumes.
package records

import (
	"context"

	"extras/internal/core"
)

// Source supplies the full, already-normalized record collection. A fetch
// is atomic: callers never observe a partially loaded dataset. Errors are
// for the caller to absorb; the engine itself only ever sees records.
type Source interface {
	Records(ctx context.Context) ([]core.Record, error)
}
