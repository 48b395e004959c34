package memory

import (
	"context"
	"slices"
	"time"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type SystemRepository struct {
	s *Store
}

func NewSystemRepository(s *Store) *SystemRepository {
	return &SystemRepository{s: s}
}

func (r *SystemRepository) nameTaken(sys *domain.System) bool {
	for _, other := range r.s.systems {
		if other.ID != sys.ID && other.Name == sys.Name {
			return true
		}
	}
	return false
}

func (r *SystemRepository) Create(ctx context.Context, sys *domain.System) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.systems[sys.ID]; ok {
			return domain.ErrDuplicateKey
		}
		if r.nameTaken(sys) {
			return domain.ErrDuplicateName
		}
		r.s.systems[sys.ID] = sys.Clone()
		return nil
	})
}

func (r *SystemRepository) FindByID(ctx context.Context, id string) (*domain.System, error) {
	var out *domain.System
	r.s.read(ctx, func() { out = r.s.systems[id].Clone() })
	if out == nil {
		return nil, domain.ErrSystemNotFound
	}
	return out, nil
}

func (r *SystemRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.System, error) {
	out := make([]*domain.System, 0, len(ids))
	r.s.read(ctx, func() {
		for _, id := range ids {
			if sys, ok := r.s.systems[id]; ok {
				out = append(out, sys.Clone())
			}
		}
	})
	return out, nil
}

func (r *SystemRepository) FindByName(ctx context.Context, name string) (*domain.System, error) {
	var out *domain.System
	r.s.read(ctx, func() {
		for _, sys := range r.s.systems {
			if sys.Name == name {
				out = sys.Clone()
				return
			}
		}
	})
	if out == nil {
		return nil, domain.ErrSystemNotFound
	}
	return out, nil
}

// Update writes the scalar fields and keeps the stored part set.
func (r *SystemRepository) Update(ctx context.Context, sys *domain.System) error {
	return r.s.write(ctx, func() error {
		cur, ok := r.s.systems[sys.ID]
		if !ok {
			return domain.ErrSystemNotFound
		}
		if r.nameTaken(sys) {
			return domain.ErrDuplicateName
		}
		next := sys.Clone()
		next.Parts = cur.Parts
		r.s.systems[sys.ID] = next
		return nil
	})
}

func matchSystem(sys *domain.System, f ports.SystemFilter) bool {
	if f.Status != "" && sys.Status != f.Status {
		return false
	}
	if f.PartID != "" && !sys.HasPart(f.PartID) {
		return false
	}
	return true
}

func (r *SystemRepository) List(ctx context.Context, f ports.SystemFilter) ([]*domain.System, error) {
	out := []*domain.System{}
	r.s.read(ctx, func() {
		for _, sys := range r.s.systems {
			if matchSystem(sys, f) {
				out = append(out, sys.Clone())
			}
		}
	})
	newestFirst(out, func(s *domain.System) time.Time { return s.CreatedAt }, func(s *domain.System) string { return s.ID })
	return out, nil
}

func (r *SystemRepository) Count(ctx context.Context, f ports.SystemFilter) (int64, error) {
	var n int64
	r.s.read(ctx, func() {
		for _, sys := range r.s.systems {
			if matchSystem(sys, f) {
				n++
			}
		}
	})
	return n, nil
}

func (r *SystemRepository) AddParts(ctx context.Context, systemID string, partIDs []string) error {
	return r.s.write(ctx, func() error {
		sys, ok := r.s.systems[systemID]
		if !ok {
			return domain.ErrSystemNotFound
		}
		for _, id := range partIDs {
			if !sys.HasPart(id) {
				sys.Parts = append(sys.Parts, id)
			}
		}
		return nil
	})
}

func (r *SystemRepository) RemovePart(ctx context.Context, systemID, partID string) error {
	return r.s.write(ctx, func() error {
		sys, ok := r.s.systems[systemID]
		if !ok {
			return domain.ErrSystemNotFound
		}
		sys.Parts = slices.DeleteFunc(sys.Parts, func(id string) bool { return id == partID })
		return nil
	})
}

func (r *SystemRepository) PullPart(ctx context.Context, partID string) error {
	return r.s.write(ctx, func() error {
		for _, sys := range r.s.systems {
			sys.Parts = slices.DeleteFunc(sys.Parts, func(id string) bool { return id == partID })
		}
		return nil
	})
}
