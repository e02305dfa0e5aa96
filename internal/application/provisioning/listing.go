package provisioning

import (
	"context"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/commerce"
)

const (
	// DefaultListLimit applies when the caller does not request a page size
	DefaultListLimit = 100
	// MaxListLimit caps the page size forwarded to the platform
	MaxListLimit = 1000
)

// ItemListingService reads a tenant's items from the commerce platform.
// It is a pass-through after credential resolution; limit and offset are
// clamped to sane bounds and otherwise forwarded verbatim.
type ItemListingService struct {
	credentials CredentialSource
	platform    commerce.Platform
	logger      *zap.Logger
}

// NewItemListingService creates a new ItemListingService
func NewItemListingService(credentials CredentialSource, platform commerce.Platform, logger *zap.Logger) *ItemListingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemListingService{
		credentials: credentials,
		platform:    platform,
		logger:      logger,
	}
}

// NormalizePage clamps a requested page to the bounds the platform is
// called with: limit falls back to the default when unset and is capped at
// the maximum, a negative offset reads from the start.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListItems returns one page of the tenant's items with stock and category
// expansions applied
func (s *ItemListingService) ListItems(ctx context.Context, tenantID string, limit, offset int) (*commerce.ItemPage, error) {
	creds, err := s.credentials.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	limit, offset = NormalizePage(limit, offset)

	return s.platform.ListItems(ctx, commerce.Credentials{Token: creds.Token, MerchantID: creds.MerchantID}, commerce.ListItemsQuery{
		Limit:  limit,
		Offset: offset,
	})
}
