package middleware

import (
	"smart-timetable/pkg/log"
)

// Config tunes the middleware chain.
type Config struct {
	RateLimitPerMin int
}

// Middleware bundles the HTTP middleware used across route groups.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware bundle.
func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
