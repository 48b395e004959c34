package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// SystemView is a system with its parts and assignee resolved.
type SystemView struct {
	*domain.System
	PartDetails []*domain.Part   `json:"part_details"`
	Employee    *domain.Employee `json:"employee,omitempty"`
}

// UpdateSystemInput renames a system and/or adds parts in one call.
type UpdateSystemInput struct {
	Name    *string
	PartIDs []string
}

// SystemService is the system composition manager.
type SystemService interface {
	CreateSystem(ctx context.Context, name string, partIDs []string) (*SystemView, error)
	GetSystem(ctx context.Context, id string) (*SystemView, error)
	ListSystems(ctx context.Context) ([]*SystemView, error)
	PartsOfSystem(ctx context.Context, id string) ([]*domain.Part, error)
	AddParts(ctx context.Context, systemID string, partIDs []string) (*SystemView, error)
	RemovePart(ctx context.Context, systemID, partID string) (*SystemView, error)
	RenameSystem(ctx context.Context, systemID, newName string) (*SystemView, error)
	UpdateSystem(ctx context.Context, systemID string, in UpdateSystemInput) (*SystemView, error)
}
