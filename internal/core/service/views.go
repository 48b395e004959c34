package service

import (
	"context"
	"fmt"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

// resolver expands systems and employees into their cross-referenced views
// using batched lookups.
type resolver struct {
	parts     ports.PartRepository
	systems   ports.SystemRepository
	employees ports.EmployeeRepository
}

func (r resolver) systemView(ctx context.Context, s *domain.System) (*ports.SystemView, error) {
	views, err := r.systemViews(ctx, []*domain.System{s})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r resolver) systemViews(ctx context.Context, systems []*domain.System) ([]*ports.SystemView, error) {
	var partIDs, employeeIDs []string
	for _, s := range systems {
		partIDs = append(partIDs, s.Parts...)
		if s.AssignedTo != nil {
			employeeIDs = append(employeeIDs, *s.AssignedTo)
		}
	}

	parts, err := r.parts.FindByIDs(ctx, dedupeIDs(partIDs))
	if err != nil {
		return nil, fmt.Errorf("resolve system parts: %w", err)
	}
	partByID := make(map[string]*domain.Part, len(parts))
	for _, p := range parts {
		partByID[p.ID] = p
	}

	employeeByID := map[string]*domain.Employee{}
	if len(employeeIDs) > 0 {
		emps, err := r.employees.FindByIDs(ctx, dedupeIDs(employeeIDs))
		if err != nil {
			return nil, fmt.Errorf("resolve system assignees: %w", err)
		}
		for _, e := range emps {
			employeeByID[e.ID] = e
		}
	}

	out := make([]*ports.SystemView, len(systems))
	for i, s := range systems {
		v := &ports.SystemView{System: s, PartDetails: make([]*domain.Part, 0, len(s.Parts))}
		for _, id := range s.Parts {
			if p, ok := partByID[id]; ok {
				v.PartDetails = append(v.PartDetails, p)
			}
		}
		if s.AssignedTo != nil {
			v.Employee = employeeByID[*s.AssignedTo]
		}
		out[i] = v
	}
	return out, nil
}

func (r resolver) employeeViews(ctx context.Context, employees []*domain.Employee) ([]*ports.EmployeeView, error) {
	var systemIDs []string
	for _, e := range employees {
		if e.AllocatedSys != nil {
			systemIDs = append(systemIDs, *e.AllocatedSys)
		}
	}

	viewBySystem := map[string]*ports.SystemView{}
	if len(systemIDs) > 0 {
		systems, err := r.systems.FindByIDs(ctx, dedupeIDs(systemIDs))
		if err != nil {
			return nil, fmt.Errorf("resolve allocated systems: %w", err)
		}
		views, err := r.systemViews(ctx, systems)
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			v.Employee = nil
			viewBySystem[v.ID] = v
		}
	}

	out := make([]*ports.EmployeeView, len(employees))
	for i, e := range employees {
		v := &ports.EmployeeView{Employee: e}
		if e.AllocatedSys != nil {
			v.System = viewBySystem[*e.AllocatedSys]
		}
		out[i] = v
	}
	return out, nil
}
