package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type systemService struct {
	parts    ports.PartRepository
	systems  ports.SystemRepository
	guard    guard
	resolver resolver
	audit    ports.AuditRecorder
	types    domain.PartTypes
	log      zerolog.Logger
}

// NewSystemService returns the composition manager: it owns the
// System.Parts <-> Part.AssignedSystems edge.
func NewSystemService(
	parts ports.PartRepository,
	systems ports.SystemRepository,
	employees ports.EmployeeRepository,
	tx ports.Transactor,
	locker ports.Locker,
	audit ports.AuditRecorder,
	types domain.PartTypes,
	log zerolog.Logger,
) ports.SystemService {
	return &systemService{
		parts:    parts,
		systems:  systems,
		guard:    guard{locker: locker, tx: tx},
		resolver: resolver{parts: parts, systems: systems, employees: employees},
		audit:    audit,
		types:    types,
		log:      log,
	}
}

func partKeys(ids []string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = ports.PartKey(id)
	}
	return keys
}

func (s *systemService) CreateSystem(ctx context.Context, name string, partIDs []string) (*ports.SystemView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("create system: %w", domain.ErrEmptyName)
	}
	ids := dedupeIDs(partIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("create system: %w", domain.ErrEmptyComposition)
	}

	now := utcNow()
	sys := &domain.System{
		ID:        newID(),
		Name:      name,
		Parts:     ids,
		Status:    domain.SystemUnassigned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.guard.run(ctx, partKeys(ids), nil, func(ctx context.Context) error {
		// 1. Name must be free.
		existing, err := ignoreNotFound(s.systems.FindByName(ctx, name))
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateName
		}

		// 2. Every part must exist and be attachable.
		if err := s.checkAttachable(ctx, sys.ID, ids); err != nil {
			return err
		}

		// 3. Write both sides of the edge.
		if err := s.systems.Create(ctx, sys); err != nil {
			return err
		}
		return s.parts.AttachSystem(ctx, ids, sys.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("create system: %w", err)
	}

	s.audit.Record(ctx, ports.AuditRecord{
		Action:      domain.ActionCreateSystem,
		EntityKind:  domain.EntitySystem,
		EntityID:    sys.ID,
		PerformerID: ports.PerformerFrom(ctx),
		Details:     domain.AuditDetails{SystemName: sys.Name, PartIDs: ids},
	})
	s.log.Info().Str("system_id", sys.ID).Str("name", sys.Name).Int("parts", len(ids)).Msg("system created")

	return s.resolver.systemView(ctx, sys)
}

// checkAttachable verifies that each part exists, is usable and, unless its
// type is shareable, is not owned by a system other than systemID.
func (s *systemService) checkAttachable(ctx context.Context, systemID string, ids []string) error {
	parts, err := s.parts.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if missing := missingID(ids, parts); missing != "" {
		return fmt.Errorf("%w: %s", domain.ErrPartNotFound, missing)
	}
	for _, p := range parts {
		if p.Status == domain.PartUnusable {
			return fmt.Errorf("%w: %s", domain.ErrPartUnusable, p.ID)
		}
		if !s.types.MultiAssign(p.PartType) && p.OwnedElsewhere(systemID) {
			return fmt.Errorf("%w: %s", domain.ErrPartAlreadyAssigned, p.ID)
		}
	}
	return nil
}

func (s *systemService) GetSystem(ctx context.Context, id string) (*ports.SystemView, error) {
	sys, err := s.systems.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get system: %w", err)
	}
	return s.resolver.systemView(ctx, sys)
}

func (s *systemService) ListSystems(ctx context.Context) ([]*ports.SystemView, error) {
	systems, err := s.systems.List(ctx, ports.SystemFilter{})
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	return s.resolver.systemViews(ctx, systems)
}

func (s *systemService) PartsOfSystem(ctx context.Context, id string) ([]*domain.Part, error) {
	v, err := s.GetSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	return v.PartDetails, nil
}

func (s *systemService) AddParts(ctx context.Context, systemID string, partIDs []string) (*ports.SystemView, error) {
	return s.UpdateSystem(ctx, systemID, ports.UpdateSystemInput{PartIDs: partIDs})
}

func (s *systemService) RenameSystem(ctx context.Context, systemID, newName string) (*ports.SystemView, error) {
	return s.UpdateSystem(ctx, systemID, ports.UpdateSystemInput{Name: &newName})
}

// UpdateSystem renames the system and/or attaches more parts in one unit.
func (s *systemService) UpdateSystem(ctx context.Context, systemID string, in ports.UpdateSystemInput) (*ports.SystemView, error) {
	var name string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("update system: %w", domain.ErrEmptyName)
		}
	}
	ids := dedupeIDs(in.PartIDs)

	var (
		sys     *domain.System
		oldName string
		added   []string
		renamed bool
	)
	keys := append([]string{ports.SystemKey(systemID)}, partKeys(ids)...)
	err := s.guard.run(ctx, keys, nil, func(ctx context.Context) error {
		added, renamed = nil, false

		var err error
		sys, err = s.systems.FindByID(ctx, systemID)
		if err != nil {
			return err
		}
		oldName = sys.Name

		if in.Name != nil && name != sys.Name {
			other, err := ignoreNotFound(s.systems.FindByName(ctx, name))
			if err != nil {
				return err
			}
			if other != nil && other.ID != sys.ID {
				return domain.ErrDuplicateName
			}
			sys.Name = name
			renamed = true
		}

		for _, id := range ids {
			if !sys.HasPart(id) {
				added = append(added, id)
			}
		}
		if len(added) > 0 {
			if err := s.checkAttachable(ctx, sys.ID, added); err != nil {
				return err
			}
		}

		if !renamed && len(added) == 0 {
			return nil
		}
		sys.UpdatedAt = utcNow()
		if err := s.systems.Update(ctx, sys); err != nil {
			return err
		}
		if len(added) == 0 {
			return nil
		}
		if err := s.systems.AddParts(ctx, sys.ID, added); err != nil {
			return err
		}
		sys.Parts = append(sys.Parts, added...)
		return s.parts.AttachSystem(ctx, added, sys.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("update system: %w", err)
	}

	performer := ports.PerformerFrom(ctx)
	if renamed {
		s.audit.Record(ctx, ports.AuditRecord{
			Action:      domain.ActionRenameSystem,
			EntityKind:  domain.EntitySystem,
			EntityID:    sys.ID,
			PerformerID: performer,
			Details:     domain.AuditDetails{SystemName: sys.Name, PreviousName: oldName},
		})
	}
	if len(added) > 0 {
		s.audit.Record(ctx, ports.AuditRecord{
			Action:      domain.ActionAddParts,
			EntityKind:  domain.EntitySystem,
			EntityID:    sys.ID,
			PerformerID: performer,
			Details:     domain.AuditDetails{SystemName: sys.Name, PartIDs: added},
		})
	}

	return s.resolver.systemView(ctx, sys)
}

// RemovePart detaches partID from the system. Removing a part the system does
// not list is a no-op; the last part may be removed.
func (s *systemService) RemovePart(ctx context.Context, systemID, partID string) (*ports.SystemView, error) {
	var (
		sys     *domain.System
		removed bool
	)
	keys := []string{ports.SystemKey(systemID), ports.PartKey(partID)}
	err := s.guard.run(ctx, keys, nil, func(ctx context.Context) error {
		removed = false

		var err error
		sys, err = s.systems.FindByID(ctx, systemID)
		if err != nil {
			return err
		}
		p, err := s.parts.FindByID(ctx, partID)
		if err != nil {
			return err
		}
		if !sys.HasPart(partID) && !p.OwnedBy(systemID) {
			return nil
		}

		if err := s.systems.RemovePart(ctx, systemID, partID); err != nil {
			return err
		}
		if err := s.parts.DetachSystem(ctx, []string{partID}, systemID); err != nil {
			return err
		}
		sys, err = s.systems.FindByID(ctx, systemID)
		if err != nil {
			return err
		}
		removed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("remove part: %w", err)
	}

	if removed {
		s.audit.Record(ctx, ports.AuditRecord{
			Action:      domain.ActionRemovePart,
			EntityKind:  domain.EntitySystem,
			EntityID:    sys.ID,
			PerformerID: ports.PerformerFrom(ctx),
			Details:     domain.AuditDetails{SystemName: sys.Name, PartIDs: []string{partID}},
		})
	}
	return s.resolver.systemView(ctx, sys)
}
