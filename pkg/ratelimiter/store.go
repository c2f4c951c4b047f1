package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state. Implementations must apply refill and
// consumption atomically per key.
type Store interface {
	// ConsumeTokens refills the bucket for the elapsed intervals, then takes
	// tokens from it. A negative remaining count means the request is denied.
	// Passing 0 tokens reports the state without consuming.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	Reset(ctx context.Context, key string) error
}
