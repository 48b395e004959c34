package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

// AuditService appends entries to the audit trail and reads them back with
// names resolved against the current state of the store.
type AuditService struct {
	repo      ports.AuditRepository
	parts     ports.PartRepository
	systems   ports.SystemRepository
	employees ports.EmployeeRepository
	users     ports.AuthRepository
	log       zerolog.Logger
}

func NewAuditService(
	repo ports.AuditRepository,
	parts ports.PartRepository,
	systems ports.SystemRepository,
	employees ports.EmployeeRepository,
	users ports.AuthRepository,
	log zerolog.Logger,
) *AuditService {
	return &AuditService{
		repo:      repo,
		parts:     parts,
		systems:   systems,
		employees: employees,
		users:     users,
		log:       log,
	}
}

// Append persists one entry and reports the storage error, if any. The
// entry keeps rec.Timestamp so that a delayed write still sorts where the
// mutation happened.
func (s *AuditService) Append(ctx context.Context, rec ports.AuditRecord) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = utcNow()
	}
	entry := &domain.AuditEntry{
		ID:          newID(),
		Action:      rec.Action,
		EntityKind:  rec.EntityKind,
		EntityID:    rec.EntityID,
		PerformerID: rec.PerformerID,
		Details:     rec.Details,
		Timestamp:   ts.UTC(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// Record appends an entry. A failed write is logged and never surfaces to
// the caller; the mutation it describes has already committed.
func (s *AuditService) Record(ctx context.Context, rec ports.AuditRecord) {
	if err := s.Append(ctx, rec); err != nil {
		s.log.Warn().Err(err).
			Str("action", string(rec.Action)).
			Str("entity_id", rec.EntityID).
			Msg("failed to record audit entry")
	}
}

// ListChronological returns up to limit entries, newest first. Entity,
// performer and employee names are looked up at read time, so renamed
// entities show their current name and deleted ones show only their id.
func (s *AuditService) ListChronological(ctx context.Context, limit int) ([]domain.AuditEntryView, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	var systemIDs, partIDs, employeeIDs, userIDs []string
	for _, e := range entries {
		switch e.EntityKind {
		case domain.EntitySystem:
			systemIDs = append(systemIDs, e.EntityID)
		case domain.EntityPart:
			partIDs = append(partIDs, e.EntityID)
		case domain.EntityEmployee:
			employeeIDs = append(employeeIDs, e.EntityID)
		}
		if e.Details.EmployeeID != "" {
			employeeIDs = append(employeeIDs, e.Details.EmployeeID)
		}
		if e.PerformerID != "" {
			userIDs = append(userIDs, e.PerformerID)
		}
	}

	names, err := s.resolveNames(ctx, dedupeIDs(systemIDs), dedupeIDs(partIDs), dedupeIDs(employeeIDs), dedupeIDs(userIDs))
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	views := make([]domain.AuditEntryView, len(entries))
	for i, e := range entries {
		v := domain.AuditEntryView{AuditEntry: *e}
		v.Entity = names.entity(e.EntityKind, e.EntityID)
		if e.PerformerID != "" {
			v.Performer = names.lookup(names.users, e.PerformerID)
		}
		if e.Details.EmployeeID != "" {
			v.Employee = names.lookup(names.employees, e.Details.EmployeeID)
			// Fall back to the snapshot taken when the entry was written.
			if v.Employee.Name == "" {
				v.Employee.Name = e.Details.EmployeeName
				v.Employee.Email = e.Details.EmployeeEmail
			}
		}
		views[i] = v
	}
	return views, nil
}

type nameIndex struct {
	systems   map[string]domain.Identity
	parts     map[string]domain.Identity
	employees map[string]domain.Identity
	users     map[string]domain.Identity
}

func (n nameIndex) lookup(m map[string]domain.Identity, id string) *domain.Identity {
	if ident, ok := m[id]; ok {
		return &ident
	}
	return &domain.Identity{ID: id}
}

func (n nameIndex) entity(kind domain.EntityKind, id string) *domain.Identity {
	switch kind {
	case domain.EntitySystem:
		return n.lookup(n.systems, id)
	case domain.EntityPart:
		return n.lookup(n.parts, id)
	case domain.EntityEmployee:
		return n.lookup(n.employees, id)
	}
	return &domain.Identity{ID: id}
}

func (s *AuditService) resolveNames(ctx context.Context, systemIDs, partIDs, employeeIDs, userIDs []string) (nameIndex, error) {
	n := nameIndex{
		systems:   map[string]domain.Identity{},
		parts:     map[string]domain.Identity{},
		employees: map[string]domain.Identity{},
		users:     map[string]domain.Identity{},
	}

	if len(systemIDs) > 0 {
		systems, err := s.systems.FindByIDs(ctx, systemIDs)
		if err != nil {
			return n, err
		}
		for _, sys := range systems {
			n.systems[sys.ID] = domain.Identity{ID: sys.ID, Name: sys.Name}
		}
	}
	if len(partIDs) > 0 {
		parts, err := s.parts.FindByIDs(ctx, partIDs)
		if err != nil {
			return n, err
		}
		for _, p := range parts {
			n.parts[p.ID] = domain.Identity{ID: p.ID, Name: partLabel(p)}
		}
	}
	if len(employeeIDs) > 0 {
		emps, err := s.employees.FindByIDs(ctx, employeeIDs)
		if err != nil {
			return n, err
		}
		for _, e := range emps {
			n.employees[e.ID] = domain.Identity{ID: e.ID, Name: e.Name, Email: e.Email}
		}
	}
	if len(userIDs) > 0 {
		users, err := s.users.FindByIDs(ctx, userIDs)
		if err != nil {
			return n, err
		}
		for _, u := range users {
			n.users[u.ID] = domain.Identity{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}
	return n, nil
}

func partLabel(p *domain.Part) string {
	label := strings.Join(strings.Fields(p.PartType+" "+p.Brand+" "+p.Model), " ")
	return fmt.Sprintf("%s (%s)", label, p.Barcode)
}
