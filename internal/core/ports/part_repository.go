package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// PartFilter narrows part listings and counts. Zero values mean "no filter".
type PartFilter struct {
	Status   domain.PartStatus
	PartType string
	// SystemID restricts the result to parts owned by that system.
	SystemID string
	// Free restricts the result to Active parts that can still be composed:
	// either of a type listed in MultiAssignTypes or owned by no system.
	Free             bool
	MultiAssignTypes []string
	// MultiAssignOnly, combined with Free, drops the unowned exclusive parts.
	MultiAssignOnly bool
}

// PartRepository persists parts and their owning-system back-references.
type PartRepository interface {
	Create(ctx context.Context, p *domain.Part) error
	// FindByID returns domain.ErrPartNotFound when the id does not resolve.
	FindByID(ctx context.Context, id string) (*domain.Part, error)
	// FindByIDs returns the parts that exist; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Part, error)
	FindByBarcode(ctx context.Context, barcode string) (*domain.Part, error)
	FindBySerial(ctx context.Context, serial string) (*domain.Part, error)
	// Update replaces the stored part. Unique-index violations surface as
	// domain.ErrDuplicateBarcode / domain.ErrDuplicateSerial.
	Update(ctx context.Context, p *domain.Part) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f PartFilter) ([]*domain.Part, error)
	Count(ctx context.Context, f PartFilter) (int64, error)

	// AttachSystem adds systemID to the owning set of every listed part.
	AttachSystem(ctx context.Context, partIDs []string, systemID string) error
	// DetachSystem removes systemID from the owning set of every listed part.
	DetachSystem(ctx context.Context, partIDs []string, systemID string) error
}
