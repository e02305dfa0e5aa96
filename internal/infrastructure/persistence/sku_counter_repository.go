package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// GormSkuCounterRepository implements catalog.SkuCounterRepository using GORM
type GormSkuCounterRepository struct {
	db *gorm.DB
}

// NewGormSkuCounterRepository creates a new GormSkuCounterRepository
func NewGormSkuCounterRepository(db *gorm.DB) *GormSkuCounterRepository {
	return &GormSkuCounterRepository{db: db}
}

// Find returns the (tenant, category) counter. On first access it creates
// the zero row so that reads and later increments share one record.
func (r *GormSkuCounterRepository) Find(ctx context.Context, tenantID, category string) (*catalog.SkuCounter, error) {
	var model models.SkuCounterModel
	err := r.db.WithContext(ctx).
		First(&model, "tenant_id = ? AND category = ?", tenantID, category).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Lazily initialize the counter. A concurrent initializer is harmless:
	// DoNothing keeps whichever row landed first.
	seed := models.SkuCounterModel{TenantID: tenantID, Category: category, Count: 0}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "category"}},
			DoNothing: true,
		}).
		Create(&seed).Error; err != nil {
		return nil, err
	}
	return seed.ToDomain(), nil
}

// Increment advances a counter by one in a single atomic upsert. The
// arithmetic happens inside the store, so concurrent increments never lose
// updates.
func (r *GormSkuCounterRepository) Increment(ctx context.Context, tenantID, category string) error {
	model := models.SkuCounterModel{TenantID: tenantID, Category: category, Count: 1}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "category"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("sku_counters.count + 1"),
			}),
		}).
		Create(&model).Error
}

// Ensure GormSkuCounterRepository implements catalog.SkuCounterRepository
var _ catalog.SkuCounterRepository = (*GormSkuCounterRepository)(nil)
