// Package redis connects to Redis for the shared rate limit store.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Healthcheck adapts the client to a readiness probe.
package redis
