package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

// maxLockRounds bounds how many times a lock set may be widened before the
// operation gives up with domain.ErrConflict. The set only grows between
// rounds.
const maxLockRounds = 8

// newID returns a time-ordered identifier for a new record.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func utcNow() time.Time { return time.Now().UTC() }

// dedupeIDs trims ids, drops blanks and duplicates, and keeps first-seen order.
func dedupeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// missingID returns the first id in want that has no entry in got.
func missingID(want []string, got []*domain.Part) string {
	have := make(map[string]struct{}, len(got))
	for _, p := range got {
		have[p.ID] = struct{}{}
	}
	for _, id := range want {
		if _, ok := have[id]; !ok {
			return id
		}
	}
	return ""
}

// covers reports whether every key in need is already in held.
func covers(held, need []string) bool {
	for _, k := range need {
		if !slices.Contains(held, k) {
			return false
		}
	}
	return true
}

func union(a, b []string) []string {
	out := slices.Clone(a)
	for _, k := range b {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}

// guard serializes a multi-entity mutation. It locks keys, asks plan which
// keys the operation really touches given the current state, widens the lock
// set until plan is satisfied, then runs apply inside one transaction while
// every lock is held.
type guard struct {
	locker ports.Locker
	tx     ports.Transactor
}

func (g guard) run(
	ctx context.Context,
	keys []string,
	plan func(ctx context.Context) ([]string, error),
	apply func(ctx context.Context) error,
) error {
	held := slices.Clone(keys)
	for round := 0; round < maxLockRounds; round++ {
		release, err := g.locker.Acquire(ctx, held...)
		if err != nil {
			return err
		}

		need := held
		if plan != nil {
			need, err = plan(ctx)
			if err != nil {
				release()
				return err
			}
		}
		if !covers(held, need) {
			release()
			held = union(held, need)
			continue
		}

		err = g.tx.WithinTransaction(ctx, apply)
		release()
		return err
	}
	return fmt.Errorf("lock set did not settle after %d rounds: %w", maxLockRounds, domain.ErrConflict)
}

// ignoreNotFound turns a not-found error into (nil, nil).
func ignoreNotFound[T any](v T, err error) (T, error) {
	var zero T
	if errors.Is(err, domain.ErrNotFound) {
		return zero, nil
	}
	return v, err
}
