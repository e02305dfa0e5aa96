package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// DefaultStockCount is the initial quantity applied when a draft does not
// carry an explicit stock count.
const DefaultStockCount = 1

// ProductDraft is the tenant-supplied description of a product to be
// provisioned on the commerce platform. Price arrives already in minor
// currency units; cost is a major-unit decimal string (e.g. "12.50").
type ProductDraft struct {
	Name        string
	Price       int64
	Cost        decimal.Decimal
	SKU         string
	Category    string
	Subcategory string
	StockCount  int64
}

// NewProductDraft builds a draft from raw request values. The cost string is
// parsed as a decimal amount; an empty cost is treated as zero. A
// non-positive stock count falls back to DefaultStockCount.
func NewProductDraft(name string, price int64, cost, sku, category, subcategory string, stockCount int64) (*ProductDraft, error) {
	d := &ProductDraft{
		Name:        strings.TrimSpace(name),
		Price:       price,
		SKU:         strings.TrimSpace(sku),
		Category:    strings.TrimSpace(category),
		Subcategory: strings.TrimSpace(subcategory),
		StockCount:  stockCount,
	}

	if cost != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(cost))
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Cost must be a decimal number")
		}
		if parsed.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Cost cannot be negative")
		}
		d.Cost = parsed
	}

	if d.StockCount <= 0 {
		d.StockCount = DefaultStockCount
	}

	return d, d.Validate()
}

// Validate checks the draft invariants
func (d *ProductDraft) Validate() error {
	if d.Name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if d.Price < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}
	if d.Category == "" {
		return shared.NewDomainError("INVALID_INPUT", "Category is required")
	}
	if d.Subcategory == "" {
		return shared.NewDomainError("INVALID_INPUT", "Subcategory is required")
	}
	return nil
}

// CategoryName returns the platform category label, subcategory first.
// The match against existing platform categories is exact and
// case-sensitive on this value.
func (d *ProductDraft) CategoryName() string {
	return d.Subcategory + " " + d.Category
}

// CostMinorUnits converts the cost to minor currency units (cents),
// truncating any sub-cent remainder.
func (d *ProductDraft) CostMinorUnits() int64 {
	return d.Cost.Mul(decimal.NewFromInt(100)).IntPart()
}
