package provisioning

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/commerce"
	"github.com/storefront/backend/internal/domain/credential"
	"github.com/storefront/backend/internal/domain/shared"
)

// DefaultCategoryLockTTL bounds how long a crashed provisioning run can
// keep the duplicate-category guard held
const DefaultCategoryLockTTL = 30 * time.Second

// CredentialSource resolves a tenant to its platform credentials
type CredentialSource interface {
	Get(ctx context.Context, tenantID string) (*credential.Credential, error)
}

// SkuCommitter advances the per-tenant-per-category SKU counter
type SkuCommitter interface {
	CommitIncrement(ctx context.Context, tenantID, category string) error
}

// ProvisionResult is the outcome of a successful provisioning run
type ProvisionResult struct {
	Product *commerce.RemoteItem
	Stock   *commerce.RemoteItemStock
}

// Service orchestrates the multi-step creation of a product on the
// commerce platform. The remote sequence is strictly ordered and carries
// no compensation: a failure partway through leaves earlier remote effects
// (a created category or item) behind, which is logged rather than masked.
type Service struct {
	credentials CredentialSource
	counters    SkuCommitter
	platform    commerce.Platform
	lock        shared.ProvisionLock
	lockTTL     time.Duration
	logger      *zap.Logger
}

// NewService creates a new provisioning Service
func NewService(credentials CredentialSource, counters SkuCommitter, platform commerce.Platform, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		credentials: credentials,
		counters:    counters,
		platform:    platform,
		lockTTL:     DefaultCategoryLockTTL,
		logger:      logger,
	}
}

// SetCategoryLock enables the optional duplicate-category guard. Without
// it, two concurrent runs for the same category name can both miss the
// lookup and create two categories with the same label.
func (s *Service) SetCategoryLock(lock shared.ProvisionLock, ttl time.Duration) {
	s.lock = lock
	if ttl > 0 {
		s.lockTTL = ttl
	}
}

// ProvisionProduct resolves the tenant's credentials and runs the remote
// sequence: find-or-create category, create item, associate, set stock.
// The SKU counter is committed only after every remote step succeeded, so
// a failed run never consumes a sequence number.
func (s *Service) ProvisionProduct(ctx context.Context, tenantID string, draft *catalog.ProductDraft) (*ProvisionResult, error) {
	// Step 1: credentials. Failures propagate unchanged so the caller can
	// distinguish an unprovisioned tenant from a store outage.
	creds, err := s.credentials.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	platformCreds := commerce.Credentials{Token: creds.Token, MerchantID: creds.MerchantID}

	categoryName := draft.CategoryName()

	if s.lock != nil {
		release, acquired, lockErr := s.lock.Acquire(ctx, creds.MerchantID+":"+categoryName, s.lockTTL)
		switch {
		case lockErr != nil:
			s.logger.Warn("category lock unavailable, continuing unguarded",
				zap.String("tenant_id", tenantID),
				zap.String("category_name", categoryName),
				zap.Error(lockErr))
		case !acquired:
			s.logger.Warn("category lock contended, continuing unguarded",
				zap.String("tenant_id", tenantID),
				zap.String("category_name", categoryName))
		default:
			defer func() {
				if err := release(ctx); err != nil {
					s.logger.Warn("failed to release category lock", zap.Error(err))
				}
			}()
		}
	}

	// Step 2: find or create the platform category.
	category, err := s.platform.FindOrCreateCategory(ctx, platformCreds, categoryName)
	if err != nil {
		return nil, s.stepFailed(tenantID, 2, "find-or-create category", err)
	}

	// Step 3: create the item, linked to the category.
	item, err := s.platform.CreateItem(ctx, platformCreds, commerce.ItemDraft{
		Name:       draft.Name,
		PriceCents: draft.Price,
		CostCents:  draft.CostMinorUnits(),
		SKU:        draft.SKU,
		CategoryID: category.ID,
	})
	if err != nil {
		s.logOrphans(tenantID, category.ID, "")
		return nil, s.stepFailed(tenantID, 3, "create item", err)
	}

	// Step 4: the categories field on item creation is not reliably
	// applied upstream, so the association is made explicitly.
	if err := s.platform.AssociateItemWithCategory(ctx, platformCreds, category.ID, item.ID); err != nil {
		s.logOrphans(tenantID, category.ID, item.ID)
		return nil, s.stepFailed(tenantID, 4, "associate item with category", err)
	}

	// Step 5: initial stock.
	stock, err := s.platform.SetItemStock(ctx, platformCreds, item.ID, draft.StockCount)
	if err != nil {
		s.logOrphans(tenantID, category.ID, item.ID)
		return nil, s.stepFailed(tenantID, 5, "set item stock", err)
	}

	// Step 6: commit the SKU counter. The remote side is fully provisioned
	// at this point; a commit failure is still terminal for the request,
	// and the provisioned item stays behind.
	if err := s.counters.CommitIncrement(ctx, tenantID, draft.Category); err != nil {
		s.logger.Error("sku counter commit failed after remote provisioning succeeded",
			zap.String("tenant_id", tenantID),
			zap.String("category", draft.Category),
			zap.String("item_id", item.ID),
			zap.Error(err))
		return nil, err
	}

	// Step 7: assemble the result.
	return &ProvisionResult{Product: item, Stock: stock}, nil
}

func (s *Service) stepFailed(tenantID string, step int, op string, err error) error {
	s.logger.Error("provisioning step failed",
		zap.String("tenant_id", tenantID),
		zap.Int("step", step),
		zap.String("operation", op),
		zap.Error(err))
	return &commerce.ProvisioningError{Step: step, Op: op, Err: err}
}

// logOrphans records remote records left behind by an aborted run
func (s *Service) logOrphans(tenantID, categoryID, itemID string) {
	s.logger.Warn("provisioning aborted with remote state left behind",
		zap.String("tenant_id", tenantID),
		zap.String("category_id", categoryID),
		zap.String("item_id", itemID))
}
