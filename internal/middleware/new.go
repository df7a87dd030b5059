package middleware

import (
	"todo-chat/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New builds the shared middlewares. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	mw := Middleware{l: l}
	if ratePerMin > 0 {
		mw.rateLimiter = newRateLimiter(ratePerMin)
	}
	return mw
}
