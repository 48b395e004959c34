package service

import (
	"context"
	"fmt"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type statsService struct {
	parts     ports.PartRepository
	systems   ports.SystemRepository
	employees ports.EmployeeRepository
}

// NewStatsService returns the dashboard counter service.
func NewStatsService(parts ports.PartRepository, systems ports.SystemRepository, employees ports.EmployeeRepository) ports.StatsService {
	return &statsService{parts: parts, systems: systems, employees: employees}
}

func (s *statsService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		st  domain.DashboardStats
		err error
	)
	counts := []struct {
		dst *int64
		fn  func() (int64, error)
	}{
		{&st.TotalSystems, func() (int64, error) { return s.systems.Count(ctx, ports.SystemFilter{}) }},
		{&st.AssignedSystems, func() (int64, error) {
			return s.systems.Count(ctx, ports.SystemFilter{Status: domain.SystemAssigned})
		}},
		{&st.UnassignedSystems, func() (int64, error) {
			return s.systems.Count(ctx, ports.SystemFilter{Status: domain.SystemUnassigned})
		}},
		{&st.DeallocatedSystems, func() (int64, error) {
			return s.systems.Count(ctx, ports.SystemFilter{Status: domain.SystemDeallocated})
		}},
		{&st.TotalParts, func() (int64, error) { return s.parts.Count(ctx, ports.PartFilter{}) }},
		{&st.ActiveParts, func() (int64, error) { return s.parts.Count(ctx, ports.PartFilter{Status: domain.PartActive}) }},
		{&st.UnusableParts, func() (int64, error) {
			return s.parts.Count(ctx, ports.PartFilter{Status: domain.PartUnusable})
		}},
		{&st.TotalEmployees, func() (int64, error) { return s.employees.Count(ctx, ports.EmployeeFilter{}) }},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(); err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}
	return &st, nil
}
