package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type employeeService struct {
	employees   ports.EmployeeRepository
	guard       guard
	resolver    resolver
	assignments ports.AssignmentService
	audit       ports.AuditRecorder
	log         zerolog.Logger
}

// NewEmployeeService returns an EmployeeService implementation. Deletion is
// delegated to assignments so a held system is released in the same unit.
func NewEmployeeService(
	parts ports.PartRepository,
	systems ports.SystemRepository,
	employees ports.EmployeeRepository,
	tx ports.Transactor,
	locker ports.Locker,
	assignments ports.AssignmentService,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.EmployeeService {
	return &employeeService{
		employees:   employees,
		guard:       guard{locker: locker, tx: tx},
		resolver:    resolver{parts: parts, systems: systems, employees: employees},
		assignments: assignments,
		audit:       audit,
		log:         log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *employeeService) CreateEmployee(ctx context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("create employee: %w", domain.ErrEmptyName)
	}
	if in.EmployeeID <= 0 {
		return nil, fmt.Errorf("create employee: %w", domain.ErrInvalidEmployeeID)
	}

	now := utcNow()
	e := &domain.Employee{
		ID:          newID(),
		Name:        name,
		EmployeeID:  in.EmployeeID,
		Department:  strings.TrimSpace(in.Department),
		Designation: strings.TrimSpace(in.Designation),
		Email:       normalizeEmail(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.checkUnique(ctx, e); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.audit.Record(ctx, ports.AuditRecord{
		Action:      domain.ActionCreateEmployee,
		EntityKind:  domain.EntityEmployee,
		EntityID:    e.ID,
		PerformerID: ports.PerformerFrom(ctx),
		Details:     domain.AuditDetails{EmployeeName: e.Name, EmployeeEmail: e.Email},
	})
	s.log.Info().Str("employee_id", e.ID).Int64("number", e.EmployeeID).Msg("employee created")
	return e, nil
}

// checkUnique rejects an employee number, email or phone used by another
// employee.
func (s *employeeService) checkUnique(ctx context.Context, e *domain.Employee) error {
	other, err := ignoreNotFound(s.employees.FindByEmployeeID(ctx, e.EmployeeID))
	if err != nil {
		return err
	}
	if other != nil && other.ID != e.ID {
		return domain.ErrDuplicateEmployeeID
	}
	if e.Email != "" {
		other, err := ignoreNotFound(s.employees.FindByEmail(ctx, e.Email))
		if err != nil {
			return err
		}
		if other != nil && other.ID != e.ID {
			return domain.ErrDuplicateEmail
		}
	}
	if e.Phone != "" {
		other, err := ignoreNotFound(s.employees.FindByPhone(ctx, e.Phone))
		if err != nil {
			return err
		}
		if other != nil && other.ID != e.ID {
			return domain.ErrDuplicatePhone
		}
	}
	return nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (*ports.EmployeeView, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	views, err := s.resolver.employeeViews(ctx, []*domain.Employee{e})
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return views[0], nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]*ports.EmployeeView, error) {
	emps, err := s.employees.List(ctx, ports.EmployeeFilter{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	views, err := s.resolver.employeeViews(ctx, emps)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return views, nil
}

func (s *employeeService) ListUnassigned(ctx context.Context) ([]*domain.Employee, error) {
	emps, err := s.employees.List(ctx, ports.EmployeeFilter{Unassigned: true})
	if err != nil {
		return nil, fmt.Errorf("list unassigned employees: %w", err)
	}
	return emps, nil
}

// UpdateEmployee edits directory fields only. The allocated system is owned
// by the assignment coordinator and is never changed here.
func (s *employeeService) UpdateEmployee(ctx context.Context, id string, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
	var updated *domain.Employee
	err := s.guard.run(ctx, []string{ports.EmployeeKey(id)}, nil, func(ctx context.Context) error {
		e, err := s.employees.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrEmptyName
			}
			e.Name = name
		}
		if in.EmployeeID != nil {
			if *in.EmployeeID <= 0 {
				return domain.ErrInvalidEmployeeID
			}
			e.EmployeeID = *in.EmployeeID
		}
		if in.Department != nil {
			e.Department = strings.TrimSpace(*in.Department)
		}
		if in.Designation != nil {
			e.Designation = strings.TrimSpace(*in.Designation)
		}
		if in.Email != nil {
			e.Email = normalizeEmail(*in.Email)
		}
		if in.Phone != nil {
			e.Phone = strings.TrimSpace(*in.Phone)
		}
		if err := s.checkUnique(ctx, e); err != nil {
			return err
		}
		e.UpdatedAt = utcNow()
		if err := s.employees.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	s.audit.Record(ctx, ports.AuditRecord{
		Action:      domain.ActionUpdateEmployee,
		EntityKind:  domain.EntityEmployee,
		EntityID:    updated.ID,
		PerformerID: ports.PerformerFrom(ctx),
		Details:     domain.AuditDetails{EmployeeName: updated.Name, EmployeeEmail: updated.Email},
	})
	return updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	return s.assignments.RemoveEmployee(ctx, id)
}
