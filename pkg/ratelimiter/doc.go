// Package ratelimiter throttles form submissions with a token bucket.
//
// Each key (by default the client address and route) owns a bucket of
// Capacity tokens refilled by RefillRate every RefillInterval. A request
// takes one token; an empty bucket gets 429 with Retry-After.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(limiter,
//		ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByPath),
//	)).Post("/login", login)
package ratelimiter
