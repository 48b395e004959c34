package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type partService struct {
	parts   ports.PartRepository
	systems ports.SystemRepository
	guard   guard
	audit   ports.AuditRecorder
	types   domain.PartTypes
	log     zerolog.Logger
}

// NewPartService returns a PartService implementation.
func NewPartService(
	parts ports.PartRepository,
	systems ports.SystemRepository,
	tx ports.Transactor,
	locker ports.Locker,
	audit ports.AuditRecorder,
	types domain.PartTypes,
	log zerolog.Logger,
) ports.PartService {
	return &partService{
		parts:   parts,
		systems: systems,
		guard:   guard{locker: locker, tx: tx},
		audit:   audit,
		types:   types,
		log:     log,
	}
}

func (s *partService) RegisterPart(ctx context.Context, in ports.RegisterPartInput) (*domain.Part, error) {
	partType := strings.TrimSpace(in.PartType)
	if _, ok := s.types.Lookup(partType); !ok {
		return nil, fmt.Errorf("register part %q: %w", partType, domain.ErrUnknownPartType)
	}

	status := in.Status
	if status == "" {
		status = domain.PartActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("register part: %w: %q", domain.ErrInvalidStatus, status)
	}
	reason := strings.TrimSpace(in.UnusableReason)
	if status == domain.PartUnusable && reason == "" {
		return nil, domain.ErrUnusableReasonRequired
	}
	if status == domain.PartActive {
		reason = ""
	}

	now := utcNow()
	p := &domain.Part{
		ID:              newID(),
		PartType:        partType,
		Barcode:         strings.TrimSpace(in.Barcode),
		BarcodeImage:    in.BarcodeImage,
		SerialNumber:    strings.TrimSpace(in.SerialNumber),
		Brand:           strings.TrimSpace(in.Brand),
		Model:           strings.TrimSpace(in.Model),
		Specs:           in.Specs,
		Notes:           in.Notes,
		Status:          status,
		UnusableReason:  reason,
		AssignedSystems: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if p.Specs == nil {
		p.Specs = []domain.Spec{}
	}

	if err := s.checkUnique(ctx, "", p.Barcode, p.SerialNumber); err != nil {
		return nil, fmt.Errorf("register part: %w", err)
	}
	if err := s.parts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("register part: %w", err)
	}

	s.audit.Record(ctx, ports.AuditRecord{
		Action:      domain.ActionRegisterPart,
		EntityKind:  domain.EntityPart,
		EntityID:    p.ID,
		PerformerID: ports.PerformerFrom(ctx),
		Details:     domain.AuditDetails{Reason: reason},
	})

	s.log.Info().Str("part_id", p.ID).Str("type", p.PartType).Str("barcode", p.Barcode).Msg("part registered")
	return p, nil
}

// checkUnique fails fast on a barcode or serial already used by a part other
// than selfID. The unique indexes still catch concurrent races.
func (s *partService) checkUnique(ctx context.Context, selfID, barcode, serial string) error {
	if barcode != "" {
		other, err := ignoreNotFound(s.parts.FindByBarcode(ctx, barcode))
		if err != nil {
			return err
		}
		if other != nil && other.ID != selfID {
			return domain.ErrDuplicateBarcode
		}
	}
	if serial != "" {
		other, err := ignoreNotFound(s.parts.FindBySerial(ctx, serial))
		if err != nil {
			return err
		}
		if other != nil && other.ID != selfID {
			return domain.ErrDuplicateSerial
		}
	}
	return nil
}

func (s *partService) GetPart(ctx context.Context, id string) (*domain.Part, error) {
	p, err := s.parts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

func (s *partService) UpdatePart(ctx context.Context, id string, in ports.UpdatePartInput) (*domain.Part, error) {
	var updated *domain.Part
	err := s.guard.run(ctx, []string{ports.PartKey(id)}, nil, func(ctx context.Context) error {
		p, err := s.parts.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if in.Barcode != nil {
			p.Barcode = strings.TrimSpace(*in.Barcode)
		}
		if in.BarcodeImage != nil {
			p.BarcodeImage = *in.BarcodeImage
		}
		if in.SerialNumber != nil {
			p.SerialNumber = strings.TrimSpace(*in.SerialNumber)
		}
		if in.Brand != nil {
			p.Brand = strings.TrimSpace(*in.Brand)
		}
		if in.Model != nil {
			p.Model = strings.TrimSpace(*in.Model)
		}
		if in.Specs != nil {
			p.Specs = in.Specs
		}
		if in.Notes != nil {
			p.Notes = *in.Notes
		}
		if err := s.checkUnique(ctx, p.ID, p.Barcode, p.SerialNumber); err != nil {
			return err
		}
		p.UpdatedAt = utcNow()
		if err := s.parts.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update part: %w", err)
	}
	return updated, nil
}

func (s *partService) ListParts(ctx context.Context, status domain.PartStatus, partType string) ([]*domain.Part, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("list parts: %w: %q", domain.ErrInvalidStatus, status)
	}
	parts, err := s.parts.List(ctx, ports.PartFilter{Status: status, PartType: partType})
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return parts, nil
}

// ListFree returns Active parts that can still be placed into a system:
// parts with no owner, plus every part whose type allows sharing.
func (s *partService) ListFree(ctx context.Context, multiAssignOnly bool) ([]*domain.Part, error) {
	parts, err := s.parts.List(ctx, ports.PartFilter{
		Status:           domain.PartActive,
		Free:             true,
		MultiAssignTypes: s.types.MultiAssignTypes(),
		MultiAssignOnly:  multiAssignOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("list free parts: %w", err)
	}
	return parts, nil
}

func (s *partService) ListUnusable(ctx context.Context) ([]*domain.Part, error) {
	return s.ListParts(ctx, domain.PartUnusable, "")
}

func (s *partService) MarkUnusable(ctx context.Context, id, reason string) (*domain.Part, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrUnusableReasonRequired
	}

	var marked *domain.Part
	err := s.guard.run(ctx, []string{ports.PartKey(id)}, nil, func(ctx context.Context) error {
		p, err := s.parts.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p.InUse() {
			return fmt.Errorf("%w (systems %v)", domain.ErrPartInUse, p.AssignedSystems)
		}
		p.Status = domain.PartUnusable
		p.UnusableReason = reason
		p.UpdatedAt = utcNow()
		if err := s.parts.Update(ctx, p); err != nil {
			return err
		}
		marked = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mark part unusable: %w", err)
	}

	s.audit.Record(ctx, ports.AuditRecord{
		Action:      domain.ActionMarkUnusable,
		EntityKind:  domain.EntityPart,
		EntityID:    marked.ID,
		PerformerID: ports.PerformerFrom(ctx),
		Details:     domain.AuditDetails{Reason: reason},
	})
	return marked, nil
}

func (s *partService) Restore(ctx context.Context, id string) (*domain.Part, error) {
	var (
		restored *domain.Part
		changed  bool
	)
	err := s.guard.run(ctx, []string{ports.PartKey(id)}, nil, func(ctx context.Context) error {
		changed = false
		p, err := s.parts.FindByID(ctx, id)
		if err != nil {
			return err
		}
		restored = p
		if p.Status == domain.PartActive && p.UnusableReason == "" {
			return nil
		}
		p.Status = domain.PartActive
		p.UnusableReason = ""
		p.UpdatedAt = utcNow()
		if err := s.parts.Update(ctx, p); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("restore part: %w", err)
	}

	if changed {
		s.audit.Record(ctx, ports.AuditRecord{
			Action:      domain.ActionRestorePart,
			EntityKind:  domain.EntityPart,
			EntityID:    restored.ID,
			PerformerID: ports.PerformerFrom(ctx),
		})
	}
	return restored, nil
}

// DeletePart removes the part and detaches it from every system that lists
// it, in one unit.
func (s *partService) DeletePart(ctx context.Context, id string) error {
	var detached []string
	// Every system holding the part is rewritten, so each one's lock is needed
	// alongside the part's own.
	plan := func(ctx context.Context) ([]string, error) {
		owners, err := s.owners(ctx, id)
		if err != nil {
			return nil, err
		}
		keys := []string{ports.PartKey(id)}
		for _, sysID := range owners {
			keys = append(keys, ports.SystemKey(sysID))
		}
		return keys, nil
	}
	err := s.guard.run(ctx, []string{ports.PartKey(id)}, plan, func(ctx context.Context) error {
		p, err := s.parts.FindByID(ctx, id)
		if err != nil {
			return err
		}
		detached = p.AssignedSystems
		if err := s.systems.PullPart(ctx, id); err != nil {
			return err
		}
		return s.parts.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}

	s.audit.Record(ctx, ports.AuditRecord{
		Action:      domain.ActionDeletePart,
		EntityKind:  domain.EntityPart,
		EntityID:    id,
		PerformerID: ports.PerformerFrom(ctx),
		Details:     domain.AuditDetails{SystemIDs: detached},
	})
	s.log.Info().Str("part_id", id).Strs("detached_from", detached).Msg("part deleted")
	return nil
}

// owners returns the union of the part's back-references and the systems that
// list it. The two agree unless the store was left inconsistent.
func (s *partService) owners(ctx context.Context, id string) ([]string, error) {
	p, err := s.parts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	listing, err := s.systems.List(ctx, ports.SystemFilter{PartID: id})
	if err != nil {
		return nil, err
	}
	out := slices.Clone(p.AssignedSystems)
	for _, sys := range listing {
		if !slices.Contains(out, sys.ID) {
			out = append(out, sys.ID)
		}
	}
	return out, nil
}
