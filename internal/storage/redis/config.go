package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// GuestPlayerTTL bounds how long an unlinked guest account is kept
	GuestPlayerTTL time.Duration
	// ChallengeTTL bounds challenge retention; it must exceed the 7-day
	// play window so completed matches stay readable for a while
	ChallengeTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       10,
		MinIdleConns:   2,
		GuestPlayerTTL: 30 * 24 * time.Hour,
		ChallengeTTL:   14 * 24 * time.Hour,
	}
}
