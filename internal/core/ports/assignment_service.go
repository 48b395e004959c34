package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// AssignmentService is the only writer of the employee <-> system edge.
type AssignmentService interface {
	Assign(ctx context.Context, systemID, employeeID string) (*SystemView, error)
	Unassign(ctx context.Context, systemID string) (*SystemView, error)
	Deallocate(ctx context.Context, systemID string) (*SystemView, error)
	RemoveEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
}
