package credential

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/credential"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles credential-related business operations
type Service struct {
	repo   credential.Repository
	logger *zap.Logger
}

// NewService creates a new credential Service
func NewService(repo credential.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Save validates and stores credentials for a tenant. Saving again for the
// same tenant overwrites the previous token and merchant (last write wins).
func (s *Service) Save(ctx context.Context, tenantID, token, merchantID string) (*credential.Credential, error) {
	cred, err := credential.NewCredential(tenantID, token, merchantID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, cred); err != nil {
		s.logger.Error("failed to save credentials",
			zap.String("tenant_id", cred.TenantID),
			zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}

	return cred, nil
}

// Get returns the stored credentials for a tenant
func (s *Service) Get(ctx context.Context, tenantID string) (*credential.Credential, error) {
	if tenantID == "" {
		return nil, credential.ErrCredentialNotFound
	}

	cred, err := s.repo.FindByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, credential.ErrCredentialNotFound) {
			return nil, err
		}
		s.logger.Error("failed to load credentials",
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}

	return cred, nil
}
