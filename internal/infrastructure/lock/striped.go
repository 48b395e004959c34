// Package lock provides an in-process ports.Locker for single-instance
// deployments and tests.
package lock

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/systrack/systrack-api/internal/core/domain"
)

const defaultStripes = 256

// Striped maps each key onto one of a fixed set of stripes by FNV hash.
// Stripes are taken in ascending index order, so two callers locking
// overlapping key sets never deadlock.
type Striped struct {
	stripes []chan struct{}
}

// NewStriped creates a Striped locker. If n <= 0, defaultStripes is used.
func NewStriped(n int) *Striped {
	if n <= 0 {
		n = defaultStripes
	}
	s := &Striped{stripes: make([]chan struct{}, n)}
	for i := range s.stripes {
		s.stripes[i] = make(chan struct{}, 1)
	}
	return s
}

func (s *Striped) stripeIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(s.stripes)))
}

// Acquire blocks until every stripe covering keys is held or ctx is done.
func (s *Striped) Acquire(ctx context.Context, keys ...string) (func(), error) {
	idx := make([]int, 0, len(keys))
	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		i := s.stripeIndex(k)
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		idx = append(idx, i)
	}
	sort.Ints(idx)

	held := make([]int, 0, len(idx))
	release := func() {
		for j := len(held) - 1; j >= 0; j-- {
			<-s.stripes[held[j]]
		}
	}
	for _, i := range idx {
		select {
		case s.stripes[i] <- struct{}{}:
			held = append(held, i)
		case <-ctx.Done():
			release()
			return nil, fmt.Errorf("acquire %v: %w (%v)", keys, domain.ErrConflict, ctx.Err())
		}
	}
	return release, nil
}
