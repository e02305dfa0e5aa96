package models

import (
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
)

// SkuCounterModel maps SKU counters to the sku_counters table. The
// composite primary key (tenant_id, category) backs the upsert-based
// atomic increment.
type SkuCounterModel struct {
	TenantID  string `gorm:"primaryKey;size:128;column:tenant_id"`
	Category  string `gorm:"primaryKey;size:128"`
	Count     int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (SkuCounterModel) TableName() string {
	return "sku_counters"
}

// ToDomain converts the model to a domain counter
func (m *SkuCounterModel) ToDomain() *catalog.SkuCounter {
	return &catalog.SkuCounter{
		TenantID: m.TenantID,
		Category: m.Category,
		Count:    m.Count,
	}
}
