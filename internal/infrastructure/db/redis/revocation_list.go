package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList records consumed refresh-token IDs in Redis.
// Key format: revoked:<jti>, expiring with the token's remaining lifetime
// so the set never outgrows the population of live tokens.
type RevocationList struct {
	client *redis.Client
}

func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Consume marks the token ID as spent until its natural expiry and
// reports whether it already was. SET NX makes the check and the write a
// single Redis operation, so concurrent redemptions of the same ID see
// alreadyUsed exactly once. A ttl at or below zero means the token is
// already expired and nothing needs to be stored.
func (l *RevocationList) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}
	stored, err := l.client.SetNX(ctx, l.key(jti), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("consume token: %w", err)
	}
	return !stored, nil
}

func (l *RevocationList) key(jti string) string {
	return "revoked:" + jti
}
