package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/systrack/systrack-api/internal/core/domain"
)

const (
	defaultLockTTL = 10 * time.Second
	retryInterval  = 25 * time.Millisecond
	lockPrefix     = "systrack:lock:"
)

// releaseScript deletes a lock only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// renewScript pushes a lock's expiry out only while it still carries our token.
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

// Locker is a ports.Locker shared by every API instance.
// Key format: systrack:lock:<kind>:<id>
type Locker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocker creates a Locker wrapping the given Redis client. Locks expire
// after ttl so a crashed holder cannot block others forever. While a lock is
// held its expiry is pushed out every ttl/3, so a slow holder keeps it.
func NewLocker(client *redis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &Locker{client: client, ttl: ttl}
}

// Acquire takes every key in sorted order, retrying each until ctx is done.
func (l *Locker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	var held []string
	unlock := func() {
		// The caller's ctx may already be cancelled; release regardless.
		rctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		for _, k := range held {
			_ = releaseScript.Run(rctx, l.client, []string{k}, token).Err()
		}
	}

	for i, k := range sorted {
		if i > 0 && k == sorted[i-1] {
			continue
		}
		key := lockPrefix + k
		if err := l.take(ctx, key, token); err != nil {
			unlock()
			return nil, fmt.Errorf("acquire %s: %w", k, err)
		}
		held = append(held, key)
	}

	stop := make(chan struct{})
	done := keepAlive(stop, renewInterval(l.ttl), func() { l.renew(held, token) })
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			unlock()
		})
	}, nil
}

func (l *Locker) renew(keys []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ms := l.ttl.Milliseconds()
	for _, k := range keys {
		_ = renewScript.Run(ctx, l.client, []string{k}, token, ms).Err()
	}
}

// renewInterval is how often a held lock is extended: three times per ttl.
func renewInterval(ttl time.Duration) time.Duration {
	d := ttl / 3
	if d < retryInterval {
		d = retryInterval
	}
	return d
}

// keepAlive calls renew every interval until stop is closed. The returned
// channel is closed once the loop has exited.
func keepAlive(stop <-chan struct{}, interval time.Duration, renew func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				renew()
			}
		}
	}()
	return done
}

func (l *Locker) take(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w (%v)", domain.ErrConflict, ctx.Err())
			}
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (%v)", domain.ErrConflict, ctx.Err())
		case <-ticker.C:
		}
	}
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
