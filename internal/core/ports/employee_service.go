package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// CreateEmployeeInput carries the fields of a new employee.
type CreateEmployeeInput struct {
	Name        string
	EmployeeID  int64
	Department  string
	Designation string
	Email       string
	Phone       string
}

// UpdateEmployeeInput carries editable employee fields. Nil leaves a field untouched.
type UpdateEmployeeInput struct {
	Name        *string
	EmployeeID  *int64
	Department  *string
	Designation *string
	Email       *string
	Phone       *string
}

// EmployeeView is an employee with the allocated system and its parts resolved.
type EmployeeView struct {
	*domain.Employee
	System *SystemView `json:"system,omitempty"`
}

// EmployeeService manages the employee directory.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*EmployeeView, error)
	ListEmployees(ctx context.Context) ([]*EmployeeView, error)
	ListUnassigned(ctx context.Context) ([]*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, in UpdateEmployeeInput) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (*domain.Employee, error)
}
