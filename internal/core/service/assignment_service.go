package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type assignmentService struct {
	systems   ports.SystemRepository
	employees ports.EmployeeRepository
	guard     guard
	resolver  resolver
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

// NewAssignmentService returns the coordinator that owns the
// System.AssignedTo <-> Employee.AllocatedSys edge. Every mutation locks all
// systems and employees it touches, so both pointers always change together.
func NewAssignmentService(
	parts ports.PartRepository,
	systems ports.SystemRepository,
	employees ports.EmployeeRepository,
	tx ports.Transactor,
	locker ports.Locker,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.AssignmentService {
	return &assignmentService{
		systems:   systems,
		employees: employees,
		guard:     guard{locker: locker, tx: tx},
		resolver:  resolver{parts: parts, systems: systems, employees: employees},
		audit:     audit,
		log:       log,
	}
}

// systemHolders returns lock keys for the system and everyone who points at
// it, either through System.AssignedTo or a stale Employee.AllocatedSys.
func (s *assignmentService) systemHolders(ctx context.Context, sys *domain.System) ([]string, error) {
	keys := []string{ports.SystemKey(sys.ID)}
	if sys.AssignedTo != nil {
		keys = append(keys, ports.EmployeeKey(*sys.AssignedTo))
	}
	holders, err := s.employees.List(ctx, ports.EmployeeFilter{AllocatedSys: sys.ID})
	if err != nil {
		return nil, err
	}
	for _, e := range holders {
		keys = append(keys, ports.EmployeeKey(e.ID))
	}
	return keys, nil
}

func (s *assignmentService) Assign(ctx context.Context, systemID, employeeID string) (*ports.SystemView, error) {
	base := []string{ports.SystemKey(systemID), ports.EmployeeKey(employeeID)}

	plan := func(ctx context.Context) ([]string, error) {
		sys, err := s.systems.FindByID(ctx, systemID)
		if err != nil {
			return nil, err
		}
		emp, err := s.employees.FindByID(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		keys, err := s.systemHolders(ctx, sys)
		if err != nil {
			return nil, err
		}
		keys = append(keys, ports.EmployeeKey(emp.ID))
		if emp.AllocatedSys != nil {
			keys = append(keys, ports.SystemKey(*emp.AllocatedSys))
		}
		return keys, nil
	}

	var (
		sys     *domain.System
		emp     *domain.Employee
		prevEmp string
		changed bool
	)
	apply := func(ctx context.Context) error {
		prevEmp, changed = "", false

		var err error
		if sys, err = s.systems.FindByID(ctx, systemID); err != nil {
			return err
		}
		if emp, err = s.employees.FindByID(ctx, employeeID); err != nil {
			return err
		}
		if sys.HeldBy(emp.ID) && emp.Holds(sys.ID) {
			return nil
		}

		// 1. Vacate the employee's previous system.
		if emp.AllocatedSys != nil && *emp.AllocatedSys != sys.ID {
			prev, err := ignoreNotFound(s.systems.FindByID(ctx, *emp.AllocatedSys))
			if err != nil {
				return err
			}
			if prev != nil && prev.HeldBy(emp.ID) {
				prev.Release(domain.SystemUnassigned)
				prev.UpdatedAt = utcNow()
				if err := s.systems.Update(ctx, prev); err != nil {
					return err
				}
			}
		}

		// 2. Detach whoever held the target system.
		if sys.AssignedTo != nil && *sys.AssignedTo != emp.ID {
			prevEmp = *sys.AssignedTo
		}
		if _, err := s.employees.ReleaseSystem(ctx, sys.ID); err != nil {
			return err
		}

		// 3. Point both sides at each other.
		now := utcNow()
		sys.AssignTo(emp.ID)
		sys.UpdatedAt = now
		if err := s.systems.Update(ctx, sys); err != nil {
			return err
		}
		emp.Allocate(sys.ID)
		emp.UpdatedAt = now
		if err := s.employees.Update(ctx, emp); err != nil {
			return err
		}
		changed = true
		return nil
	}

	if err := s.guard.run(ctx, base, plan, apply); err != nil {
		return nil, fmt.Errorf("assign system: %w", err)
	}

	if changed {
		s.audit.Record(ctx, ports.AuditRecord{
			Action:      domain.ActionAssignSystem,
			EntityKind:  domain.EntitySystem,
			EntityID:    sys.ID,
			PerformerID: ports.PerformerFrom(ctx),
			Details: domain.AuditDetails{
				EmployeeID:         emp.ID,
				EmployeeName:       emp.Name,
				EmployeeEmail:      emp.Email,
				PreviousEmployeeID: prevEmp,
				SystemName:         sys.Name,
			},
		})
		s.log.Info().Str("system_id", sys.ID).Str("employee_id", emp.ID).Str("previous_employee_id", prevEmp).Msg("system assigned")
	}
	return s.resolver.systemView(ctx, sys)
}

func (s *assignmentService) Unassign(ctx context.Context, systemID string) (*ports.SystemView, error) {
	return s.release(ctx, systemID, domain.SystemUnassigned)
}

func (s *assignmentService) Deallocate(ctx context.Context, systemID string) (*ports.SystemView, error) {
	return s.release(ctx, systemID, domain.SystemDeallocated)
}

// release clears the assignment of a system and leaves it in status.
func (s *assignmentService) release(ctx context.Context, systemID string, status domain.SystemStatus) (*ports.SystemView, error) {
	plan := func(ctx context.Context) ([]string, error) {
		sys, err := s.systems.FindByID(ctx, systemID)
		if err != nil {
			return nil, err
		}
		return s.systemHolders(ctx, sys)
	}

	var (
		sys     *domain.System
		holder  *domain.Employee
		holdID  string
		changed bool
	)
	apply := func(ctx context.Context) error {
		holder, holdID, changed = nil, "", false

		var err error
		if sys, err = s.systems.FindByID(ctx, systemID); err != nil {
			return err
		}
		if sys.AssignedTo != nil {
			holdID = *sys.AssignedTo
			if holder, err = ignoreNotFound(s.employees.FindByID(ctx, holdID)); err != nil {
				return err
			}
		}

		n, err := s.employees.ReleaseSystem(ctx, sys.ID)
		if err != nil {
			return err
		}
		if sys.AssignedTo == nil && sys.Status == status && n == 0 {
			return nil
		}
		sys.Release(status)
		sys.UpdatedAt = utcNow()
		if err := s.systems.Update(ctx, sys); err != nil {
			return err
		}
		changed = true
		return nil
	}

	if err := s.guard.run(ctx, []string{ports.SystemKey(systemID)}, plan, apply); err != nil {
		return nil, fmt.Errorf("%s system: %w", verbFor(status), err)
	}

	action := domain.ActionUnassignSystem
	if status == domain.SystemDeallocated {
		action = domain.ActionDeallocateSystem
	}
	if changed && (holdID != "" || status == domain.SystemDeallocated) {
		details := domain.AuditDetails{EmployeeID: holdID, SystemName: sys.Name}
		if holder != nil {
			details.EmployeeName = holder.Name
			details.EmployeeEmail = holder.Email
		}
		s.audit.Record(ctx, ports.AuditRecord{
			Action:      action,
			EntityKind:  domain.EntitySystem,
			EntityID:    sys.ID,
			PerformerID: ports.PerformerFrom(ctx),
			Details:     details,
		})
		s.log.Info().Str("system_id", sys.ID).Str("employee_id", holdID).Str("status", string(status)).Msg("system released")
	}
	return s.resolver.systemView(ctx, sys)
}

func verbFor(status domain.SystemStatus) string {
	if status == domain.SystemDeallocated {
		return "deallocate"
	}
	return "unassign"
}

// RemoveEmployee unassigns the system the employee holds, if any, and deletes
// the employee in the same unit.
func (s *assignmentService) RemoveEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	plan := func(ctx context.Context) ([]string, error) {
		emp, err := s.employees.FindByID(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		keys := []string{ports.EmployeeKey(emp.ID)}
		if emp.AllocatedSys != nil {
			keys = append(keys, ports.SystemKey(*emp.AllocatedSys))
		}
		return keys, nil
	}

	var (
		emp      *domain.Employee
		released *domain.System
	)
	apply := func(ctx context.Context) error {
		released = nil

		var err error
		if emp, err = s.employees.FindByID(ctx, employeeID); err != nil {
			return err
		}
		if emp.AllocatedSys != nil {
			sys, err := ignoreNotFound(s.systems.FindByID(ctx, *emp.AllocatedSys))
			if err != nil {
				return err
			}
			if sys != nil && sys.HeldBy(emp.ID) {
				sys.Release(domain.SystemUnassigned)
				sys.UpdatedAt = utcNow()
				if err := s.systems.Update(ctx, sys); err != nil {
					return err
				}
				released = sys
			}
		}
		return s.employees.Delete(ctx, emp.ID)
	}

	if err := s.guard.run(ctx, []string{ports.EmployeeKey(employeeID)}, plan, apply); err != nil {
		return nil, fmt.Errorf("remove employee: %w", err)
	}

	performer := ports.PerformerFrom(ctx)
	if released != nil {
		s.audit.Record(ctx, ports.AuditRecord{
			Action:      domain.ActionUnassignSystem,
			EntityKind:  domain.EntitySystem,
			EntityID:    released.ID,
			PerformerID: performer,
			Details: domain.AuditDetails{
				EmployeeID:    emp.ID,
				EmployeeName:  emp.Name,
				EmployeeEmail: emp.Email,
				SystemName:    released.Name,
			},
		})
	}
	s.audit.Record(ctx, ports.AuditRecord{
		Action:      domain.ActionDeleteEmployee,
		EntityKind:  domain.EntityEmployee,
		EntityID:    emp.ID,
		PerformerID: performer,
		Details:     domain.AuditDetails{EmployeeName: emp.Name, EmployeeEmail: emp.Email, SystemIDs: systemIDsOf(released)},
	})
	s.log.Info().Str("employee_id", emp.ID).Msg("employee removed")
	return emp, nil
}

func systemIDsOf(s *domain.System) []string {
	if s == nil {
		return nil
	}
	return []string{s.ID}
}
