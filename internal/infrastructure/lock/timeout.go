package lock

import (
	"context"
	"time"

	"github.com/systrack/systrack-api/internal/core/ports"
)

type timeoutLocker struct {
	inner   ports.Locker
	timeout time.Duration
}

// WithTimeout bounds how long Acquire on inner may wait. A caller deadline
// shorter than d still wins. A non-positive d returns inner unchanged.
func WithTimeout(inner ports.Locker, d time.Duration) ports.Locker {
	if d <= 0 {
		return inner
	}
	return &timeoutLocker{inner: inner, timeout: d}
}

func (l *timeoutLocker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return l.inner.Acquire(ctx, keys...)
}
