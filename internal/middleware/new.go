package middleware

import (
	"inventory-service/pkg/log"
)

// Config tunes the optional middlewares.
type Config struct {
	// RateLimitPerMin is the request budget per client IP. 0 disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
