package config

import "time"

// CacheConfig controls the Redis response cache placed in front of the
// movie listing.  Titles and showtimes never change while the process
// runs, so the listing can be cached for a long time; seat maps are never
// cached.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* variables, falling back to defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 10*time.Minute),
		Prefix:       getenv("CACHE_PREFIX", "cinebook:cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
