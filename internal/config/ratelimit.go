package config

import "time"

// RateLimitConfig tunes the Redis token-bucket limiter applied to the
// authenticated API group.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int64
	RefillTokens   int64
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadRateLimitConfig reads limiter tuning from the environment. The
// defaults allow a burst of 30 requests per client with 10 tokens
// restored every second, generous enough for a front desk terminal.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       int64(envInt("RATE_LIMIT_CAPACITY", 30)),
		RefillTokens:   int64(envInt("RATE_LIMIT_REFILL_TOKENS", 10)),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rsv:rl:"),
	}
}
