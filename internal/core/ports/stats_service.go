package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// StatsService computes dashboard counts.
type StatsService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
