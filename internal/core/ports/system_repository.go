package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// SystemFilter narrows system listings and counts.
type SystemFilter struct {
	Status domain.SystemStatus
	// PartID restricts the result to systems containing that part.
	PartID string
}

// SystemRepository persists systems and their part sets.
type SystemRepository interface {
	// Create inserts a system; a name collision yields domain.ErrDuplicateName.
	Create(ctx context.Context, s *domain.System) error
	// FindByID returns domain.ErrSystemNotFound when the id does not resolve.
	FindByID(ctx context.Context, id string) (*domain.System, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.System, error)
	FindByName(ctx context.Context, name string) (*domain.System, error)
	// Update writes name, holder, status and updated_at. It never touches the
	// part set.
	Update(ctx context.Context, s *domain.System) error
	List(ctx context.Context, f SystemFilter) ([]*domain.System, error)
	Count(ctx context.Context, f SystemFilter) (int64, error)

	// AddParts adds partIDs to the system's part set, ignoring ones already present.
	AddParts(ctx context.Context, systemID string, partIDs []string) error
	// RemovePart removes partID from the system's part set.
	RemovePart(ctx context.Context, systemID, partID string) error
	// PullPart removes partID from every system that contains it.
	PullPart(ctx context.Context, partID string) error
}
