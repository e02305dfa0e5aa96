package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/storefront/backend/internal/domain/shared"
)

// releaseScript deletes the lock only when the stored owner token matches,
// so a caller whose TTL already expired cannot release someone else's lock
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisProvisionLock implements ProvisionLock using Redis SETNX.
// This is suitable for distributed deployments where multiple instances
// provision against the same merchant.
type RedisProvisionLock struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisProvisionLock creates a new Redis-backed provisioning lock
func NewRedisProvisionLock(cfg RedisConfig) (*RedisProvisionLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProvisionLock{
		client:    client,
		keyPrefix: "provision:lock:",
	}, nil
}

// NewRedisProvisionLockWithClient creates a lock with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisProvisionLockWithClient(client *redis.Client, keyPrefix string) *RedisProvisionLock {
	if keyPrefix == "" {
		keyPrefix = "provision:lock:"
	}
	return &RedisProvisionLock{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Acquire takes the lock via SETNX with a TTL. The owner token guards
// release against TTL expiry races.
func (l *RedisProvisionLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	fullKey := l.keyPrefix + key
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire provision lock: %w", err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil && err != redis.Nil {
			return fmt.Errorf("failed to release provision lock: %w", err)
		}
		return nil
	}
	return release, true, nil
}

// Close closes the Redis client
func (l *RedisProvisionLock) Close() error {
	return l.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (l *RedisProvisionLock) GetClient() *redis.Client {
	return l.client
}

// Ensure RedisProvisionLock implements ProvisionLock
var _ shared.ProvisionLock = (*RedisProvisionLock)(nil)
