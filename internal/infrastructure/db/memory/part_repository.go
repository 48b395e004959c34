package memory

import (
	"context"
	"slices"
	"time"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type PartRepository struct {
	s *Store
}

func NewPartRepository(s *Store) *PartRepository {
	return &PartRepository{s: s}
}

// uniqueViolation reports which unique field of p collides with another part.
func (r *PartRepository) uniqueViolation(p *domain.Part) error {
	for _, other := range r.s.parts {
		if other.ID == p.ID {
			continue
		}
		if p.Barcode != "" && other.Barcode == p.Barcode {
			return domain.ErrDuplicateBarcode
		}
		if p.SerialNumber != "" && other.SerialNumber == p.SerialNumber {
			return domain.ErrDuplicateSerial
		}
	}
	return nil
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.parts[p.ID]; ok {
			return domain.ErrDuplicateKey
		}
		if err := r.uniqueViolation(p); err != nil {
			return err
		}
		r.s.parts[p.ID] = p.Clone()
		return nil
	})
}

func (r *PartRepository) FindByID(ctx context.Context, id string) (*domain.Part, error) {
	var out *domain.Part
	r.s.read(ctx, func() { out = r.s.parts[id].Clone() })
	if out == nil {
		return nil, domain.ErrPartNotFound
	}
	return out, nil
}

func (r *PartRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Part, error) {
	out := make([]*domain.Part, 0, len(ids))
	r.s.read(ctx, func() {
		for _, id := range ids {
			if p, ok := r.s.parts[id]; ok {
				out = append(out, p.Clone())
			}
		}
	})
	return out, nil
}

func (r *PartRepository) findBy(ctx context.Context, match func(*domain.Part) bool) (*domain.Part, error) {
	var out *domain.Part
	r.s.read(ctx, func() {
		for _, p := range r.s.parts {
			if match(p) {
				out = p.Clone()
				return
			}
		}
	})
	if out == nil {
		return nil, domain.ErrPartNotFound
	}
	return out, nil
}

func (r *PartRepository) FindByBarcode(ctx context.Context, barcode string) (*domain.Part, error) {
	return r.findBy(ctx, func(p *domain.Part) bool { return p.Barcode == barcode })
}

func (r *PartRepository) FindBySerial(ctx context.Context, serial string) (*domain.Part, error) {
	return r.findBy(ctx, func(p *domain.Part) bool { return p.SerialNumber == serial })
}

func (r *PartRepository) Update(ctx context.Context, p *domain.Part) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.parts[p.ID]; !ok {
			return domain.ErrPartNotFound
		}
		if err := r.uniqueViolation(p); err != nil {
			return err
		}
		r.s.parts[p.ID] = p.Clone()
		return nil
	})
}

func (r *PartRepository) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.parts[id]; !ok {
			return domain.ErrPartNotFound
		}
		delete(r.s.parts, id)
		return nil
	})
}

func matchPart(p *domain.Part, f ports.PartFilter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.PartType != "" && p.PartType != f.PartType {
		return false
	}
	if f.SystemID != "" && !p.OwnedBy(f.SystemID) {
		return false
	}
	shared := slices.Contains(f.MultiAssignTypes, p.PartType)
	if f.MultiAssignOnly && !shared {
		return false
	}
	if f.Free && p.InUse() && !shared {
		return false
	}
	return true
}

func (r *PartRepository) List(ctx context.Context, f ports.PartFilter) ([]*domain.Part, error) {
	out := []*domain.Part{}
	r.s.read(ctx, func() {
		for _, p := range r.s.parts {
			if matchPart(p, f) {
				out = append(out, p.Clone())
			}
		}
	})
	newestFirst(out, func(p *domain.Part) time.Time { return p.CreatedAt }, func(p *domain.Part) string { return p.ID })
	return out, nil
}

func (r *PartRepository) Count(ctx context.Context, f ports.PartFilter) (int64, error) {
	var n int64
	r.s.read(ctx, func() {
		for _, p := range r.s.parts {
			if matchPart(p, f) {
				n++
			}
		}
	})
	return n, nil
}

func (r *PartRepository) AttachSystem(ctx context.Context, partIDs []string, systemID string) error {
	return r.s.write(ctx, func() error {
		for _, id := range partIDs {
			if _, ok := r.s.parts[id]; !ok {
				return domain.ErrPartNotFound
			}
		}
		for _, id := range partIDs {
			p := r.s.parts[id]
			if !p.OwnedBy(systemID) {
				p.AssignedSystems = append(p.AssignedSystems, systemID)
			}
		}
		return nil
	})
}

func (r *PartRepository) DetachSystem(ctx context.Context, partIDs []string, systemID string) error {
	return r.s.write(ctx, func() error {
		for _, id := range partIDs {
			if p, ok := r.s.parts[id]; ok {
				p.AssignedSystems = slices.DeleteFunc(p.AssignedSystems, func(s string) bool { return s == systemID })
			}
		}
		return nil
	})
}
