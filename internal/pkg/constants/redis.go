package constants

import "time"

// Redis key formats
const (
	// Ledger Service
	KeyDashboardSummary = "ledger:dashboard:%s" // Format: ledger:dashboard:{user_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit" // the middleware appends route and client
)

// Auth endpoint rate limits
const (
	AuthRateLimit       = 10
	AuthRateLimitPeriod = time.Minute
)

// DashboardCacheTTL bounds how stale a cached dashboard may be when the
// invalidation on write is missed.
const DashboardCacheTTL = 60 * time.Second
