package memory

import (
	"context"
	"errors"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// ErrAuditUnavailable is returned by Insert while the repository is failing.
var ErrAuditUnavailable = errors.New("audit store unavailable")

type AuditRepository struct {
	s    *Store
	fail bool
}

func NewAuditRepository(s *Store) *AuditRepository {
	return &AuditRepository{s: s}
}

// SetFailing makes subsequent inserts fail, to exercise callers that must
// tolerate a broken audit store.
func (r *AuditRepository) SetFailing(fail bool) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.fail = fail
}

func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditEntry) error {
	return r.s.write(ctx, func() error {
		if r.fail {
			return ErrAuditUnavailable
		}
		c := *e
		c.Details.SystemIDs = append([]string(nil), e.Details.SystemIDs...)
		c.Details.PartIDs = append([]string(nil), e.Details.PartIDs...)
		r.s.audit = append(r.s.audit, &c)
		return nil
	})
}

// List returns entries newest first. limit <= 0 returns all of them.
func (r *AuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	out := []*domain.AuditEntry{}
	r.s.read(ctx, func() {
		for i := len(r.s.audit) - 1; i >= 0; i-- {
			if limit > 0 && len(out) == limit {
				break
			}
			c := *r.s.audit[i]
			out = append(out, &c)
		}
	})
	return out, nil
}
