package credential

import "context"

// Repository defines persistence operations for tenant credentials.
// Save is an upsert: writing for an existing tenant replaces the stored
// token and merchant ID (last write wins).
type Repository interface {
	Save(ctx context.Context, cred *Credential) error
	FindByTenant(ctx context.Context, tenantID string) (*Credential, error)
}
