package memory

import (
	"context"
	"time"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type EmployeeRepository struct {
	s *Store
}

func NewEmployeeRepository(s *Store) *EmployeeRepository {
	return &EmployeeRepository{s: s}
}

func (r *EmployeeRepository) uniqueViolation(e *domain.Employee) error {
	for _, other := range r.s.employees {
		if other.ID == e.ID {
			continue
		}
		switch {
		case other.EmployeeID == e.EmployeeID:
			return domain.ErrDuplicateEmployeeID
		case e.Email != "" && other.Email == e.Email:
			return domain.ErrDuplicateEmail
		case e.Phone != "" && other.Phone == e.Phone:
			return domain.ErrDuplicatePhone
		}
	}
	return nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.employees[e.ID]; ok {
			return domain.ErrDuplicateKey
		}
		if err := r.uniqueViolation(e); err != nil {
			return err
		}
		r.s.employees[e.ID] = e.Clone()
		return nil
	})
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	var out *domain.Employee
	r.s.read(ctx, func() { out = r.s.employees[id].Clone() })
	if out == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return out, nil
}

func (r *EmployeeRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(ids))
	r.s.read(ctx, func() {
		for _, id := range ids {
			if e, ok := r.s.employees[id]; ok {
				out = append(out, e.Clone())
			}
		}
	})
	return out, nil
}

func (r *EmployeeRepository) findBy(ctx context.Context, match func(*domain.Employee) bool) (*domain.Employee, error) {
	var out *domain.Employee
	r.s.read(ctx, func() {
		for _, e := range r.s.employees {
			if match(e) {
				out = e.Clone()
				return
			}
		}
	})
	if out == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return out, nil
}

func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	return r.findBy(ctx, func(e *domain.Employee) bool { return e.EmployeeID == employeeID })
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findBy(ctx, func(e *domain.Employee) bool { return e.Email == email })
}

func (r *EmployeeRepository) FindByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	return r.findBy(ctx, func(e *domain.Employee) bool { return e.Phone == phone })
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.employees[e.ID]; !ok {
			return domain.ErrEmployeeNotFound
		}
		if err := r.uniqueViolation(e); err != nil {
			return err
		}
		r.s.employees[e.ID] = e.Clone()
		return nil
	})
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.employees[id]; !ok {
			return domain.ErrEmployeeNotFound
		}
		delete(r.s.employees, id)
		return nil
	})
}

func matchEmployee(e *domain.Employee, f ports.EmployeeFilter) bool {
	if f.Unassigned && e.AllocatedSys != nil {
		return false
	}
	if f.AllocatedSys != "" && !e.Holds(f.AllocatedSys) {
		return false
	}
	return true
}

func (r *EmployeeRepository) List(ctx context.Context, f ports.EmployeeFilter) ([]*domain.Employee, error) {
	out := []*domain.Employee{}
	r.s.read(ctx, func() {
		for _, e := range r.s.employees {
			if matchEmployee(e, f) {
				out = append(out, e.Clone())
			}
		}
	})
	newestFirst(out, func(e *domain.Employee) time.Time { return e.CreatedAt }, func(e *domain.Employee) string { return e.ID })
	return out, nil
}

func (r *EmployeeRepository) Count(ctx context.Context, f ports.EmployeeFilter) (int64, error) {
	var n int64
	r.s.read(ctx, func() {
		for _, e := range r.s.employees {
			if matchEmployee(e, f) {
				n++
			}
		}
	})
	return n, nil
}

// ReleaseSystem clears AllocatedSys on every employee pointing at systemID.
func (r *EmployeeRepository) ReleaseSystem(ctx context.Context, systemID string) (int64, error) {
	var n int64
	err := r.s.write(ctx, func() error {
		for _, e := range r.s.employees {
			if e.Holds(systemID) {
				e.AllocatedSys = nil
				e.UpdatedAt = time.Now().UTC()
				n++
			}
		}
		return nil
	})
	return n, err
}
