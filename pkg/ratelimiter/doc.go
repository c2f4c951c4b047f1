// Package ratelimiter provides a token bucket limiter with in-memory and
// Redis stores, and HTTP middleware that keys buckets per client.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     1,
//		RefillInterval: 2 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP()))
//
// Denied requests receive 429 with Retry-After. Responses always carry
// X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset.
package ratelimiter
