package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "formkit:ratelimit:"

// tokenBucketScript mirrors MemoryStore.ConsumeTokens so that several
// instances can share one bucket per client.
//
// KEYS[1] bucket key
// ARGV: capacity, refill rate, refill interval (ms), tokens, now (ms), max intervals
var tokenBucketScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local tokens = tonumber(ARGV[4])
local now = tonumber(ARGV[5])
local max_intervals = tonumber(ARGV[6])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'last')
local current = tonumber(state[1])
local last = tonumber(state[2])
if current == nil or last == nil then
	current = capacity
	last = now
end

local intervals = math.floor((now - last) / interval)
if intervals > max_intervals then
	intervals = max_intervals
end
if intervals > 0 then
	current = math.min(current + intervals * rate, capacity)
	last = now
end

local remaining = current - tokens
if remaining >= 0 then
	current = remaining
end

redis.call('HSET', KEYS[1], 'tokens', current, 'last', last)
redis.call('PEXPIRE', KEYS[1], interval * (max_intervals + 1))

return {remaining, last + interval}
`)

// RedisStore shares buckets across instances through Redis.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

type RedisStoreOption func(*RedisStore)

func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.prefix = prefix
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client: client,
		prefix: defaultRedisPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	res, err := tokenBucketScript.Run(ctx, rs.client, []string{rs.prefix + key},
		config.Capacity,
		config.RefillRate,
		config.RefillInterval.Milliseconds(),
		tokens,
		rs.now().UnixMilli(),
		config.maxIntervals(),
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, ErrStoreUnavailable
	}

	return int(res[0]), time.UnixMilli(res[1]), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
