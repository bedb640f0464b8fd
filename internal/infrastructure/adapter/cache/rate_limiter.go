package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills the bucket by elapsed time and takes one token.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local rate_per_sec = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_ms')
local tokens = tonumber(state[1])
local last_ms = tonumber(state[2])
if tokens == nil or last_ms == nil then
  tokens = capacity
  last_ms = now_ms
end

local elapsed = math.max(0, now_ms - last_ms)
tokens = math.min(capacity, tokens + (elapsed * rate_per_sec / 1000))

local allowed = 0
local retry_after_ms = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
else
  retry_after_ms = math.ceil((1 - tokens) * 1000 / rate_per_sec)
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'last_ms', now_ms)
redis.call('EXPIRE', key, ttl_seconds)

return {allowed, math.floor(tokens), retry_after_ms}
`)

// RateDecision is the outcome of one rate limit check
type RateDecision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
	Limit      int
}

// RateLimiter is a token bucket shared by every API instance through Redis
type RateLimiter struct {
	client       *redis.Client
	ratePerSec   int
	burst        int
	prefix       string
	timeProvider coreport.TimeProvider
}

// NewRateLimiter creates a limiter refilling ratePerSec tokens per second up to burst
func NewRateLimiter(client *redis.Client, ratePerSec, burst int, timeProvider coreport.TimeProvider) *RateLimiter {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	if burst < ratePerSec {
		burst = ratePerSec
	}
	return &RateLimiter{
		client:       client,
		ratePerSec:   ratePerSec,
		burst:        burst,
		prefix:       "game-booking:ratelimit:",
		timeProvider: timeProvider,
	}
}

// Allow takes one token from the bucket identified by key
func (l *RateLimiter) Allow(ctx context.Context, key string) (RateDecision, error) {
	// Keep idle buckets around long enough to refill completely
	ttl := l.burst/l.ratePerSec + 1

	result, err := tokenBucketScript.Run(ctx, l.client, []string{l.prefix + key},
		l.timeProvider.Now().UnixMilli(), l.burst, l.ratePerSec, ttl,
	).Slice()
	if err != nil {
		return RateDecision{}, fmt.Errorf("running rate limit script: %w", err)
	}
	if len(result) != 3 {
		return RateDecision{}, fmt.Errorf("unexpected rate limit script result: %v", result)
	}

	return RateDecision{
		Allowed:    asInt64(result[0]) == 1,
		Remaining:  asInt64(result[1]),
		RetryAfter: time.Duration(asInt64(result[2])) * time.Millisecond,
		Limit:      l.burst,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
