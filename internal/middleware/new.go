package middleware

import (
	"dotask-bot/pkg/log"
	"dotask-bot/pkg/ratelimit"
)

type Middleware struct {
	l             log.Logger
	webhookSecret string
	ipLimiter     *ratelimit.Limiter
}

// New creates the HTTP middlewares. An empty webhookSecret disables the
// secret check; a nil ipLimiter disables per-IP limiting.
func New(l log.Logger, webhookSecret string, ipLimiter *ratelimit.Limiter) Middleware {
	return Middleware{
		l:             l,
		webhookSecret: webhookSecret,
		ipLimiter:     ipLimiter,
	}
}
