package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
	"github.com/systrack/systrack-api/internal/infrastructure/db/memory"
	"github.com/systrack/systrack-api/internal/infrastructure/lock"
)

type auditFixture struct {
	*harness
	auditRepo *memory.AuditRepository
	users     *memory.AuthRepository
	svc       *AuditService
}

// newAuditFixture wires the services to a real AuditService so entries land
// in the store.
func newAuditFixture(t *testing.T) *auditFixture {
	t.Helper()
	h := newHarness(t)
	f := &auditFixture{
		harness:   h,
		auditRepo: memory.NewAuditRepository(h.store),
		users:     memory.NewAuthRepository(h.store),
	}
	f.svc = NewAuditService(f.auditRepo, h.partRepo, h.sysRepo, h.empRepo, f.users, zerolog.Nop())

	locker := lock.NewStriped(16)
	types := domain.DefaultPartTypes()
	h.parts = NewPartService(h.partRepo, h.sysRepo, h.store, locker, f.svc, types, zerolog.Nop())
	h.systems = NewSystemService(h.partRepo, h.sysRepo, h.empRepo, h.store, locker, f.svc, types, zerolog.Nop())
	h.assign = NewAssignmentService(h.partRepo, h.sysRepo, h.empRepo, h.store, locker, f.svc, zerolog.Nop())
	h.employees = NewEmployeeService(h.partRepo, h.sysRepo, h.empRepo, h.store, locker, h.assign, f.svc, zerolog.Nop())
	return f
}

func TestListChronological_ResolvesNames(t *testing.T) {
	f := newAuditFixture(t)
	user := &domain.User{ID: "u1", Name: "Admin", Email: "admin@example.com", CreatedAt: time.Now()}
	if _, err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	ctx := ports.WithPerformer(context.Background(), user.ID)

	ram := f.mustPart(t, "RAM", "R1")
	ws := f.mustSystem(t, "WS-1", ram.ID)
	e1 := f.mustEmployee(t, 1, "e1")
	if _, err := f.assign.Assign(ctx, ws.ID, e1.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if _, err := f.systems.RenameSystem(ctx, ws.ID, "Design-01"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	views, err := f.svc.ListChronological(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListChronological: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(views))
	}

	rename := views[0]
	if rename.Action != domain.ActionRenameSystem {
		t.Fatalf("expected newest entry first, got %s", rename.Action)
	}
	assign := views[1]
	if assign.Action != domain.ActionAssignSystem {
		t.Fatalf("expected ASSIGN_SYSTEM second, got %s", assign.Action)
	}
	// Names come from current state, so the assign entry shows the new name.
	if assign.Entity == nil || assign.Entity.Name != "Design-01" {
		t.Fatalf("expected current system name, got %+v", assign.Entity)
	}
	if assign.Performer == nil || assign.Performer.Email != "admin@example.com" {
		t.Fatalf("expected resolved performer, got %+v", assign.Performer)
	}
	if assign.Employee == nil || assign.Employee.Email != "e1@example.com" {
		t.Fatalf("expected resolved employee, got %+v", assign.Employee)
	}

	limited, _ := f.svc.ListChronological(context.Background(), 2)
	if len(limited) != 2 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}
}

func TestListChronological_DeletedEntityFallsBack(t *testing.T) {
	f := newAuditFixture(t)
	ws := f.mustSystem(t, "WS-1", f.mustPart(t, "RAM", "R1").ID)
	e1 := f.mustEmployee(t, 1, "e1")
	_, _ = f.assign.Assign(context.Background(), ws.ID, e1.ID)
	if _, err := f.employees.DeleteEmployee(context.Background(), e1.ID); err != nil {
		t.Fatalf("DeleteEmployee: %v", err)
	}

	views, err := f.svc.ListChronological(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListChronological: %v", err)
	}
	deleted := views[0]
	if deleted.Action != domain.ActionDeleteEmployee {
		t.Fatalf("expected DELETE_EMPLOYEE first, got %s", deleted.Action)
	}
	if deleted.Entity == nil || deleted.Entity.ID != e1.ID || deleted.Entity.Name != "" {
		t.Fatalf("expected bare id for deleted employee, got %+v", deleted.Entity)
	}
	unassign := views[1]
	if unassign.Employee == nil || unassign.Employee.Name != "e1" {
		t.Fatalf("expected snapshot name for deleted employee, got %+v", unassign.Employee)
	}
}

func TestAuditFailureDoesNotFailMutation(t *testing.T) {
	f := newAuditFixture(t)
	ws := f.mustSystem(t, "WS-1", f.mustPart(t, "RAM", "R1").ID)
	e1 := f.mustEmployee(t, 1, "e1")

	f.auditRepo.SetFailing(true)
	if _, err := f.assign.Assign(context.Background(), ws.ID, e1.ID); err != nil {
		t.Fatalf("Assign must succeed while audit store is down: %v", err)
	}
	if !f.system(t, ws.ID).HeldBy(e1.ID) {
		t.Fatalf("mutation was not committed")
	}

	if err := f.svc.Append(context.Background(), ports.AuditRecord{Action: domain.ActionAssignSystem}); err == nil {
		t.Fatalf("expected Append to report the failure")
	}
	f.checkConsistency(t)
}

// A record written late keeps the time of the mutation it describes, so the
// feed stays in mutation order whatever order the writes land in.
func TestAppend_KeepsMutationTime(t *testing.T) {
	f := newAuditFixture(t)
	ctx := context.Background()
	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Second)

	if err := f.svc.Append(ctx, ports.AuditRecord{
		Action: domain.ActionUnassignSystem, EntityKind: domain.EntitySystem, EntityID: "s2", Timestamp: second,
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := f.svc.Append(ctx, ports.AuditRecord{
		Action: domain.ActionAssignSystem, EntityKind: domain.EntitySystem, EntityID: "s1", Timestamp: first,
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	views, err := f.svc.ListChronological(ctx, 0)
	if err != nil {
		t.Fatalf("ListChronological: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(views))
	}
	if views[0].EntityID != "s2" || !views[0].Timestamp.Equal(second) {
		t.Fatalf("expected s2 at %s first, got %s at %s", second, views[0].EntityID, views[0].Timestamp)
	}
	if views[1].EntityID != "s1" || !views[1].Timestamp.Equal(first) {
		t.Fatalf("expected s1 at %s second, got %s at %s", first, views[1].EntityID, views[1].Timestamp)
	}

	before := time.Now().UTC()
	if err := f.svc.Append(ctx, ports.AuditRecord{Action: domain.ActionRegisterPart, EntityID: "p1"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	views, _ = f.svc.ListChronological(ctx, 1)
	if views[0].Timestamp.Before(before) {
		t.Fatalf("unstamped record got %s, want >= %s", views[0].Timestamp, before)
	}
}
