package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// SkuCounterService hands out per-tenant, per-category SKU sequence values.
// PeekNext is a read; the counter only advances when CommitIncrement is
// called, so a failed provisioning run does not burn sequence numbers
// while an out-of-band race may reuse one. Uniqueness of the resulting
// SKU is not guaranteed and downstream consumers must tolerate reuse.
type SkuCounterService struct {
	repo   catalog.SkuCounterRepository
	logger *zap.Logger
}

// NewSkuCounterService creates a new SkuCounterService
func NewSkuCounterService(repo catalog.SkuCounterRepository, logger *zap.Logger) *SkuCounterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkuCounterService{
		repo:   repo,
		logger: logger,
	}
}

// PeekNext returns the value the next committed SKU in this category will
// carry, without advancing the counter. A tenant that has never used the
// category sees 1.
func (s *SkuCounterService) PeekNext(ctx context.Context, tenantID, category string) (int64, error) {
	if category == "" {
		return 0, catalog.ErrInvalidCategory
	}

	counter, err := s.repo.Find(ctx, tenantID, category)
	if err != nil {
		s.logger.Error("failed to read sku counter",
			zap.String("tenant_id", tenantID),
			zap.String("category", category),
			zap.Error(err))
		return 0, shared.ErrStoreUnavailable
	}

	return counter.NextValue(), nil
}

// CommitIncrement advances the counter by one. Called once per successfully
// provisioned product.
func (s *SkuCounterService) CommitIncrement(ctx context.Context, tenantID, category string) error {
	if category == "" {
		return catalog.ErrInvalidCategory
	}

	if err := s.repo.Increment(ctx, tenantID, category); err != nil {
		s.logger.Error("failed to advance sku counter",
			zap.String("tenant_id", tenantID),
			zap.String("category", category),
			zap.Error(err))
		return shared.ErrStoreUnavailable
	}

	return nil
}
