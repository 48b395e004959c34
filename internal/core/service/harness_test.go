package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
	"github.com/systrack/systrack-api/internal/infrastructure/db/memory"
	"github.com/systrack/systrack-api/internal/infrastructure/lock"
)

type recordingAudit struct {
	mu   sync.Mutex
	recs []ports.AuditRecord
}

func (r *recordingAudit) Record(_ context.Context, rec ports.AuditRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
}

func (r *recordingAudit) count(action domain.AuditAction) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.recs {
		if rec.Action == action {
			n++
		}
	}
	return n
}

func (r *recordingAudit) last() ports.AuditRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recs[len(r.recs)-1]
}

// passThroughTx runs fn directly, as the Mongo transactor does with
// transactions disabled. Entity locks are then the only serialization.
type passThroughTx struct{}

func (passThroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// hookedSystems calls onUpdate before each Update reaches the store.
type hookedSystems struct {
	ports.SystemRepository

	mu       sync.Mutex
	onUpdate func(s *domain.System)
}

func (r *hookedSystems) Update(ctx context.Context, s *domain.System) error {
	r.mu.Lock()
	hook := r.onUpdate
	r.mu.Unlock()
	if hook != nil {
		hook(s)
	}
	return r.SystemRepository.Update(ctx, s)
}

type harness struct {
	store     *memory.Store
	partRepo  *memory.PartRepository
	sysRepo   *memory.SystemRepository
	empRepo   *memory.EmployeeRepository
	sysHook   *hookedSystems
	audit     *recordingAudit
	parts     ports.PartService
	systems   ports.SystemService
	assign    ports.AssignmentService
	employees ports.EmployeeService
	stats     ports.StatsService
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	tx ports.Transactor
}

// withoutStoreTx drops the store-wide transaction so that only the entity
// locks keep concurrent operations apart.
func withoutStoreTx() harnessOption {
	return func(c *harnessConfig) { c.tx = passThroughTx{} }
}

// txModes lists the ways the services can be wired for concurrency tests.
var txModes = []struct {
	name string
	opts []harnessOption
}{
	{"store_tx", nil},
	{"locks_only", []harnessOption{withoutStoreTx()}},
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	store := memory.New()
	cfg := harnessConfig{tx: store}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &harness{
		store:    store,
		partRepo: memory.NewPartRepository(store),
		sysRepo:  memory.NewSystemRepository(store),
		empRepo:  memory.NewEmployeeRepository(store),
		audit:    &recordingAudit{},
	}
	h.sysHook = &hookedSystems{SystemRepository: h.sysRepo}
	locker := lock.NewStriped(64)
	types := domain.DefaultPartTypes()
	log := zerolog.Nop()

	h.parts = NewPartService(h.partRepo, h.sysHook, cfg.tx, locker, h.audit, types, log)
	h.systems = NewSystemService(h.partRepo, h.sysHook, h.empRepo, cfg.tx, locker, h.audit, types, log)
	h.assign = NewAssignmentService(h.partRepo, h.sysHook, h.empRepo, cfg.tx, locker, h.audit, log)
	h.employees = NewEmployeeService(h.partRepo, h.sysHook, h.empRepo, cfg.tx, locker, h.assign, h.audit, log)
	h.stats = NewStatsService(h.partRepo, h.sysRepo, h.empRepo)
	return h
}

// onSystemUpdate installs fn to run before every system Update.
func (h *harness) onSystemUpdate(fn func(s *domain.System)) {
	h.sysHook.mu.Lock()
	defer h.sysHook.mu.Unlock()
	h.sysHook.onUpdate = fn
}

// interleave runs op the first time systemID is updated, then lets the update
// continue once op returns or after a short grace period. An op that is
// correctly held back by a lock only finishes after the update.
func (h *harness) interleave(systemID string, op func()) (wait func()) {
	var once sync.Once
	done := make(chan struct{})
	h.onSystemUpdate(func(s *domain.System) {
		if s.ID != systemID {
			return
		}
		once.Do(func() {
			go func() {
				defer close(done)
				op()
			}()
			select {
			case <-done:
			case <-time.After(100 * time.Millisecond):
			}
		})
	})
	return func() { <-done }
}

func (h *harness) mustPart(t *testing.T, partType, barcode string) *domain.Part {
	t.Helper()
	p, err := h.parts.RegisterPart(context.Background(), ports.RegisterPartInput{
		PartType:     partType,
		Barcode:      barcode,
		SerialNumber: "SN-" + barcode,
		Brand:        "Acme",
	})
	if err != nil {
		t.Fatalf("register part %s: %v", barcode, err)
	}
	return p
}

func (h *harness) mustEmployee(t *testing.T, number int64, name string) *domain.Employee {
	t.Helper()
	e, err := h.employees.CreateEmployee(context.Background(), ports.CreateEmployeeInput{
		Name:       name,
		EmployeeID: number,
		Email:      fmt.Sprintf("%s@example.com", name),
		Phone:      fmt.Sprintf("555-%04d", number),
	})
	if err != nil {
		t.Fatalf("create employee %s: %v", name, err)
	}
	return e
}

func (h *harness) mustSystem(t *testing.T, name string, partIDs ...string) *ports.SystemView {
	t.Helper()
	v, err := h.systems.CreateSystem(context.Background(), name, partIDs)
	if err != nil {
		t.Fatalf("create system %s: %v", name, err)
	}
	return v
}

func (h *harness) part(t *testing.T, id string) *domain.Part {
	t.Helper()
	p, err := h.partRepo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find part %s: %v", id, err)
	}
	return p
}

func (h *harness) system(t *testing.T, id string) *domain.System {
	t.Helper()
	s, err := h.sysRepo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find system %s: %v", id, err)
	}
	return s
}

func (h *harness) employee(t *testing.T, id string) *domain.Employee {
	t.Helper()
	e, err := h.empRepo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find employee %s: %v", id, err)
	}
	return e
}

// checkConsistency fails the test if any bidirectional edge disagrees.
func (h *harness) checkConsistency(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	types := domain.DefaultPartTypes()

	systems, _ := h.sysRepo.List(ctx, ports.SystemFilter{})
	parts, _ := h.partRepo.List(ctx, ports.PartFilter{})
	emps, _ := h.empRepo.List(ctx, ports.EmployeeFilter{})

	partByID := map[string]*domain.Part{}
	for _, p := range parts {
		partByID[p.ID] = p
	}
	sysByID := map[string]*domain.System{}
	for _, s := range systems {
		sysByID[s.ID] = s
	}
	empByID := map[string]*domain.Employee{}
	for _, e := range emps {
		empByID[e.ID] = e
	}

	for _, s := range systems {
		for _, pid := range s.Parts {
			p, ok := partByID[pid]
			if !ok || !p.OwnedBy(s.ID) {
				t.Errorf("system %s lists part %s which does not point back", s.Name, pid)
			}
		}
		if (s.Status == domain.SystemAssigned) != (s.AssignedTo != nil) {
			t.Errorf("system %s: status %s with assignedTo %v", s.Name, s.Status, s.AssignedTo)
		}
		if s.AssignedTo != nil {
			e, ok := empByID[*s.AssignedTo]
			if !ok || !e.Holds(s.ID) {
				t.Errorf("system %s assigned to %s which does not point back", s.Name, *s.AssignedTo)
			}
		}
	}
	for _, p := range parts {
		for _, sid := range p.AssignedSystems {
			s, ok := sysByID[sid]
			if !ok || !s.HasPart(p.ID) {
				t.Errorf("part %s owned by %s which does not list it", p.Barcode, sid)
			}
		}
		if !types.MultiAssign(p.PartType) && len(p.AssignedSystems) > 1 {
			t.Errorf("exclusive part %s owned by %v", p.Barcode, p.AssignedSystems)
		}
		if p.Status == domain.PartUnusable && p.InUse() {
			t.Errorf("unusable part %s still owned by %v", p.Barcode, p.AssignedSystems)
		}
	}
	for _, e := range emps {
		if e.AllocatedSys == nil {
			continue
		}
		s, ok := sysByID[*e.AllocatedSys]
		if !ok || !s.HeldBy(e.ID) {
			t.Errorf("employee %s holds %s which does not point back", e.Name, *e.AllocatedSys)
		}
	}
}
