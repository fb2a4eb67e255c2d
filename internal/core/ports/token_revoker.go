package ports

import (
	"context"
	"time"
)

// TokenRevoker tracks consumed refresh-token IDs so each refresh token can
// be redeemed at most once. Consume marks the ID spent and reports in one
// atomic step whether it already was; two racing calls for the same ID
// observe alreadyUsed at most once. Entries only need to live until the
// token's own expiry; ttl communicates the remaining lifetime.
type TokenRevoker interface {
	Consume(ctx context.Context, jti string, ttl time.Duration) (alreadyUsed bool, err error)
}
