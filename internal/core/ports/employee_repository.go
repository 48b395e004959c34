package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// EmployeeFilter narrows employee listings and counts.
type EmployeeFilter struct {
	// Unassigned restricts the result to employees without a system.
	Unassigned bool
	// AllocatedSys restricts the result to employees pointing at that system.
	AllocatedSys string
}

// EmployeeRepository persists employees and their allocated-system pointer.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	// FindByID returns domain.ErrEmployeeNotFound when the id does not resolve.
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f EmployeeFilter) ([]*domain.Employee, error)
	Count(ctx context.Context, f EmployeeFilter) (int64, error)

	// ReleaseSystem clears allocatedSys on every employee pointing at systemID
	// and returns how many were changed.
	ReleaseSystem(ctx context.Context, systemID string) (int64, error)
}
