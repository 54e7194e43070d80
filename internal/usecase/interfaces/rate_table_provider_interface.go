package interfaces

import (
	"context"
	"instaquote/internal/domain/pricing"
)

// IRateTableProvider abstracts the external content store that owns the quote
// settings (categories, multipliers, conversion rates, VAT, floor).
//
// The table is consumed read-only and re-fetched per request; implementations
// decide how hard to try before falling back to the built-in defaults.
type IRateTableProvider interface {
	RateTable(ctx context.Context) (pricing.RateTable, error)
}
