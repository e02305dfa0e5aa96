package catalog

import "context"

// SkuCounterRepository defines persistence operations for SKU counters.
//
// Find initializes a zero-valued counter row on first access so that a
// later increment and a concurrent read agree on the starting point.
// Increment must be atomic at the store level: N concurrent increments on
// the same counter advance it by exactly N.
type SkuCounterRepository interface {
	Find(ctx context.Context, tenantID, category string) (*SkuCounter, error)
	Increment(ctx context.Context, tenantID, category string) error
}
