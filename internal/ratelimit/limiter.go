package ratelimit

import (
	"context"
	"errors"
)

// Limiter answers whether a client identified by key may make another
// request inside the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) error
}

var ErrLimitExceeded = errors.New("rate limit exceeded")
