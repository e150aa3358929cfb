package middleware

import (
	"study-companion/config"
	"study-companion/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rateCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateCfg.RequestsPerMin),
	}
}
