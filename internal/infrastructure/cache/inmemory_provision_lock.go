package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// lockEntry represents a held lock with its owner token and expiration
type lockEntry struct {
	token     string
	expiresAt time.Time
}

// InMemoryProvisionLock implements ProvisionLock using an in-memory map
// This is suitable for single-instance deployments and testing
type InMemoryProvisionLock struct {
	mu      sync.Mutex
	entries map[string]lockEntry
}

// NewInMemoryProvisionLock creates a new in-memory provisioning lock
func NewInMemoryProvisionLock() *InMemoryProvisionLock {
	return &InMemoryProvisionLock{
		entries: make(map[string]lockEntry),
	}
}

// Acquire takes the named lock unless a live entry already holds it.
// Expired entries are overwritten in place; there is no cleanup loop
// because the key space is bounded by active merchants.
func (l *InMemoryProvisionLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, exists := l.entries[key]; exists && time.Now().Before(e.expiresAt) {
		return nil, false, nil
	}

	token := uuid.NewString()
	l.entries[key] = lockEntry{
		token:     token,
		expiresAt: time.Now().Add(ttl),
	}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if e, exists := l.entries[key]; exists && e.token == token {
			delete(l.entries, key)
		}
		return nil
	}
	return release, true, nil
}

// Ensure InMemoryProvisionLock implements ProvisionLock
var _ shared.ProvisionLock = (*InMemoryProvisionLock)(nil)
