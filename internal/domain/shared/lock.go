package shared

import (
	"context"
	"time"
)

// ProvisionLock serializes provisioning work that races against remote
// state, such as find-or-create of a platform category. Locks are
// best-effort: a lost lock widens the duplicate window but never blocks
// a correct request forever, which is why every acquisition carries a TTL.
type ProvisionLock interface {
	// Acquire attempts to take the named lock. When acquired is true the
	// caller owns the lock until it calls release or the TTL expires.
	// Release is safe to call after expiry; it only removes the lock if
	// this caller still owns it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}
