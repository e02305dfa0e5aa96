package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront/backend/internal/domain/credential"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// GormCredentialRepository implements credential.Repository using GORM
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GormCredentialRepository
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Save upserts the credentials for a tenant. A second save for the same
// tenant replaces token and merchant ID (last write wins).
func (r *GormCredentialRepository) Save(ctx context.Context, cred *credential.Credential) error {
	model := models.TenantCredentialModelFromDomain(cred)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "merchant_id", "updated_at"}),
		}).
		Create(model).Error
}

// FindByTenant returns the stored credentials for a tenant
func (r *GormCredentialRepository) FindByTenant(ctx context.Context, tenantID string) (*credential.Credential, error) {
	var model models.TenantCredentialModel
	if err := r.db.WithContext(ctx).First(&model, "tenant_id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, credential.ErrCredentialNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormCredentialRepository implements credential.Repository
var _ credential.Repository = (*GormCredentialRepository)(nil)
