package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// RegisterPartInput carries the fields of a new part.
type RegisterPartInput struct {
	PartType       string
	Barcode        string
	BarcodeImage   string
	SerialNumber   string
	Brand          string
	Model          string
	Specs          []domain.Spec
	Notes          string
	Status         domain.PartStatus // empty means Active
	UnusableReason string
}

// UpdatePartInput carries the editable descriptive fields of a part.
// Nil pointers leave the stored value untouched.
type UpdatePartInput struct {
	Barcode      *string
	BarcodeImage *string
	SerialNumber *string
	Brand        *string
	Model        *string
	Specs        []domain.Spec
	Notes        *string
}

// PartService is the part registry.
type PartService interface {
	RegisterPart(ctx context.Context, in RegisterPartInput) (*domain.Part, error)
	GetPart(ctx context.Context, id string) (*domain.Part, error)
	UpdatePart(ctx context.Context, id string, in UpdatePartInput) (*domain.Part, error)
	ListParts(ctx context.Context, status domain.PartStatus, partType string) ([]*domain.Part, error)
	ListFree(ctx context.Context, multiAssignOnly bool) ([]*domain.Part, error)
	ListUnusable(ctx context.Context) ([]*domain.Part, error)
	MarkUnusable(ctx context.Context, id, reason string) (*domain.Part, error)
	Restore(ctx context.Context, id string) (*domain.Part, error)
	DeletePart(ctx context.Context, id string) error
}
