package auth

import (
	"context"
	"fmt"
	"rental_portal/internal/usecase/interfaces"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "tenant_session:revoked:"

// RedisRevoker remembers logged-out token ids until the token would have
// expired on its own.
type RedisRevoker struct {
	rdb *redis.Client
	now func() time.Time
}

var _ interfaces.ISessionRevoker = (*RedisRevoker)(nil)

func NewRedisRevoker(rdb *redis.Client) *RedisRevoker {
	return &RedisRevoker{rdb: rdb, now: time.Now}
}

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.rdb.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("lookup revoked session: %w", err)
	}
	return n > 0, nil
}
