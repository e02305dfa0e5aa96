package catalog

import "github.com/storefront/backend/internal/domain/shared"

// SkuCounter tracks the number of SKUs issued for one (tenant, category)
// pair. The counter only moves forward; gaps are acceptable when a
// provisioning attempt fails after a peek.
type SkuCounter struct {
	TenantID string
	Category string
	Count    int64
}

// NextValue returns the value the next issued SKU would carry
func (c *SkuCounter) NextValue() int64 {
	return c.Count + 1
}

// ErrInvalidCategory is returned when a counter is addressed with a blank
// category key.
var ErrInvalidCategory = shared.NewDomainError("INVALID_INPUT", "Category must not be blank")
