package credential

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// Credential holds the Clover API access for one tenant: the OAuth token
// and the merchant the token is scoped to. Tokens are stored verbatim and
// never inspected or refreshed here.
type Credential struct {
	TenantID   string
	Token      string
	MerchantID string
}

// NewCredential creates a validated credential record
func NewCredential(tenantID, token, merchantID string) (*Credential, error) {
	c := &Credential{
		TenantID:   strings.TrimSpace(tenantID),
		Token:      strings.TrimSpace(token),
		MerchantID: strings.TrimSpace(merchantID),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the credential invariants
func (c *Credential) Validate() error {
	if c.TenantID == "" {
		return shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	if c.Token == "" {
		return shared.NewDomainError("INVALID_INPUT", "API token is required")
	}
	if c.MerchantID == "" {
		return shared.NewDomainError("INVALID_INPUT", "Merchant ID is required")
	}
	return nil
}

// ErrCredentialNotFound is returned when no credentials exist for a tenant
var ErrCredentialNotFound = shared.NewDomainError("NOT_FOUND", "Credentials not found for this user")
