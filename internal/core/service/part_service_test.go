package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
	"github.com/systrack/systrack-api/internal/infrastructure/lock"
)

func TestRegisterPart(t *testing.T) {
	h := newHarness(t)

	p, err := h.parts.RegisterPart(context.Background(), ports.RegisterPartInput{
		PartType:     "SSD",
		Barcode:      " BC-1 ",
		SerialNumber: "SN-1",
		Brand:        "Acme",
		Model:        "X1",
		Specs:        []domain.Spec{{Key: "capacity", Value: "1TB"}},
	})
	if err != nil {
		t.Fatalf("RegisterPart: %v", err)
	}
	if p.ID == "" || p.Barcode != "BC-1" || p.Status != domain.PartActive {
		t.Fatalf("unexpected part %+v", p)
	}
	if p.InUse() {
		t.Fatalf("new part must have no owners")
	}
	if h.audit.last().Action != domain.ActionRegisterPart {
		t.Fatalf("expected REGISTER_PART entry")
	}
}

func TestRegisterPart_Validation(t *testing.T) {
	h := newHarness(t)
	h.mustPart(t, "RAM", "B1")

	cases := []struct {
		in   ports.RegisterPartInput
		want error
	}{
		{ports.RegisterPartInput{PartType: "Toaster", Barcode: "X"}, domain.ErrUnknownPartType},
		{ports.RegisterPartInput{PartType: "RAM", Barcode: "B1", SerialNumber: "other"}, domain.ErrDuplicateBarcode},
		{ports.RegisterPartInput{PartType: "RAM", Barcode: "B2", SerialNumber: "SN-B1"}, domain.ErrDuplicateSerial},
		{ports.RegisterPartInput{PartType: "RAM", Barcode: "B3", Status: domain.PartUnusable}, domain.ErrUnusableReasonRequired},
		{ports.RegisterPartInput{PartType: "RAM", Barcode: "B4", Status: "Broken"}, domain.ErrInvalidStatus},
	}
	for _, c := range cases {
		if _, err := h.parts.RegisterPart(context.Background(), c.in); !errors.Is(err, c.want) {
			t.Fatalf("RegisterPart(%+v): expected %v, got %v", c.in, c.want, err)
		}
	}
}

func TestRegisterPart_CustomTypes(t *testing.T) {
	h := newHarness(t)
	types := domain.PartTypesFromFlags(map[string]bool{"Dock": true})
	svc := NewPartService(h.partRepo, h.sysRepo, h.store, lock.NewStriped(4), h.audit, types, zerolog.Nop())

	if _, err := svc.RegisterPart(context.Background(), ports.RegisterPartInput{PartType: "Dock", Barcode: "D1"}); err != nil {
		t.Fatalf("RegisterPart: %v", err)
	}
	if _, err := svc.RegisterPart(context.Background(), ports.RegisterPartInput{PartType: "RAM", Barcode: "R1"}); !errors.Is(err, domain.ErrUnknownPartType) {
		t.Fatalf("expected ErrUnknownPartType, got %v", err)
	}
}

func TestMarkUnusable_PartInUse(t *testing.T) {
	h := newHarness(t)
	ram := h.mustPart(t, "RAM", "RAM-1")
	h.mustSystem(t, "WS-1", ram.ID)

	_, err := h.parts.MarkUnusable(context.Background(), ram.ID, "failed POST")
	if !errors.Is(err, domain.ErrPartInUse) {
		t.Fatalf("expected ErrPartInUse, got %v", err)
	}
	if h.part(t, ram.ID).Status != domain.PartActive {
		t.Fatalf("part must stay Active")
	}
}

func TestMarkUnusable_AfterRemoval(t *testing.T) {
	h := newHarness(t)
	ram := h.mustPart(t, "RAM", "RAM-1")
	ws := h.mustSystem(t, "WS-1", ram.ID)

	if _, err := h.systems.RemovePart(context.Background(), ws.ID, ram.ID); err != nil {
		t.Fatalf("RemovePart: %v", err)
	}
	p, err := h.parts.MarkUnusable(context.Background(), ram.ID, "failed POST")
	if err != nil {
		t.Fatalf("MarkUnusable: %v", err)
	}
	if p.Status != domain.PartUnusable || p.UnusableReason != "failed POST" || p.InUse() {
		t.Fatalf("unexpected part %+v", p)
	}
	if rec := h.audit.last(); rec.Action != domain.ActionMarkUnusable || rec.Details.Reason != "failed POST" {
		t.Fatalf("unexpected audit record %+v", rec)
	}
	h.checkConsistency(t)
}

func TestMarkUnusable_ReasonRequired(t *testing.T) {
	h := newHarness(t)
	ram := h.mustPart(t, "RAM", "R1")
	if _, err := h.parts.MarkUnusable(context.Background(), ram.ID, "  "); !errors.Is(err, domain.ErrUnusableReasonRequired) {
		t.Fatalf("expected ErrUnusableReasonRequired, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	h := newHarness(t)
	ram := h.mustPart(t, "RAM", "R1")
	_, _ = h.parts.MarkUnusable(context.Background(), ram.ID, "dead")

	p, err := h.parts.Restore(context.Background(), ram.ID)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if p.Status != domain.PartActive || p.UnusableReason != "" {
		t.Fatalf("unexpected part %+v", p)
	}

	// Restoring an Active part is a no-op.
	if _, err := h.parts.Restore(context.Background(), ram.ID); err != nil {
		t.Fatalf("second Restore: %v", err)
	}
	if n := h.audit.count(domain.ActionRestorePart); n != 1 {
		t.Fatalf("expected one RESTORE_PART entry, got %d", n)
	}
}

func TestListFree(t *testing.T) {
	h := newHarness(t)
	freeRAM := h.mustPart(t, "RAM", "R1")
	usedRAM := h.mustPart(t, "RAM", "R2")
	usedPrinter := h.mustPart(t, "Printer", "P1")
	deadRAM := h.mustPart(t, "RAM", "R3")
	h.mustSystem(t, "WS-1", usedRAM.ID, usedPrinter.ID)
	_, _ = h.parts.MarkUnusable(context.Background(), deadRAM.ID, "dead")

	free, err := h.parts.ListFree(context.Background(), false)
	if err != nil {
		t.Fatalf("ListFree: %v", err)
	}
	got := map[string]bool{}
	for _, p := range free {
		got[p.ID] = true
	}
	if len(got) != 2 || !got[freeRAM.ID] || !got[usedPrinter.ID] {
		t.Fatalf("unexpected free parts %v", got)
	}

	shared, _ := h.parts.ListFree(context.Background(), true)
	if len(shared) != 1 || shared[0].ID != usedPrinter.ID {
		t.Fatalf("unexpected shared parts %+v", shared)
	}

	unusable, _ := h.parts.ListUnusable(context.Background())
	if len(unusable) != 1 || unusable[0].ID != deadRAM.ID {
		t.Fatalf("unexpected unusable parts %+v", unusable)
	}
}

func TestUpdatePart(t *testing.T) {
	h := newHarness(t)
	p := h.mustPart(t, "RAM", "R1")
	h.mustPart(t, "RAM", "R2")

	taken := "R2"
	if _, err := h.parts.UpdatePart(context.Background(), p.ID, ports.UpdatePartInput{Barcode: &taken}); !errors.Is(err, domain.ErrDuplicateBarcode) {
		t.Fatalf("expected ErrDuplicateBarcode, got %v", err)
	}

	model := "Fury 16GB"
	updated, err := h.parts.UpdatePart(context.Background(), p.ID, ports.UpdatePartInput{Model: &model})
	if err != nil {
		t.Fatalf("UpdatePart: %v", err)
	}
	if updated.Model != model || updated.Barcode != "R1" {
		t.Fatalf("unexpected part %+v", updated)
	}
}

func TestDeletePart_CascadesToSystems(t *testing.T) {
	h := newHarness(t)
	printer := h.mustPart(t, "Printer", "P1")
	ram := h.mustPart(t, "RAM", "R1")
	ws1 := h.mustSystem(t, "WS-1", printer.ID, ram.ID)
	ws2 := h.mustSystem(t, "WS-2", printer.ID)

	if err := h.parts.DeletePart(context.Background(), printer.ID); err != nil {
		t.Fatalf("DeletePart: %v", err)
	}
	if h.system(t, ws1.ID).HasPart(printer.ID) || h.system(t, ws2.ID).HasPart(printer.ID) {
		t.Fatalf("deleted part still listed by a system")
	}
	if _, err := h.partRepo.FindByID(context.Background(), printer.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected part to be gone, got %v", err)
	}
	if rec := h.audit.last(); rec.Action != domain.ActionDeletePart || len(rec.Details.SystemIDs) != 2 {
		t.Fatalf("unexpected audit record %+v", rec)
	}
	if err := h.parts.DeletePart(context.Background(), printer.ID); !errors.Is(err, domain.ErrPartNotFound) {
		t.Fatalf("expected ErrPartNotFound, got %v", err)
	}
	h.checkConsistency(t)
}

// A delete landing between Assign's read and write of the system must not
// leave the deleted id in the system's part list.
func TestDeletePart_DuringAssign(t *testing.T) {
	h := newHarness(t, withoutStoreTx())
	ram := h.mustPart(t, "RAM", "R1")
	cpu := h.mustPart(t, "CPU", "C1")
	ws := h.mustSystem(t, "WS-1", ram.ID, cpu.ID)
	e1 := h.mustEmployee(t, 1, "e1")

	var delErr error
	wait := h.interleave(ws.ID, func() {
		delErr = h.parts.DeletePart(context.Background(), ram.ID)
	})
	if _, err := h.assign.Assign(context.Background(), ws.ID, e1.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	wait()

	if delErr != nil {
		t.Fatalf("DeletePart: %v", delErr)
	}
	sys := h.system(t, ws.ID)
	if sys.HasPart(ram.ID) {
		t.Fatalf("deleted part %s came back: %v", ram.ID, sys.Parts)
	}
	if !sys.HeldBy(e1.ID) {
		t.Fatalf("assignment lost: %+v", sys)
	}
	h.checkConsistency(t)
}

// Same race against UpdateSystem, which renames and attaches parts.
func TestDeletePart_DuringUpdateSystem(t *testing.T) {
	h := newHarness(t, withoutStoreTx())
	ram := h.mustPart(t, "RAM", "R1")
	cpu := h.mustPart(t, "CPU", "C1")
	ws := h.mustSystem(t, "WS-1", ram.ID)

	var delErr error
	wait := h.interleave(ws.ID, func() {
		delErr = h.parts.DeletePart(context.Background(), ram.ID)
	})
	name := "WS-2"
	if _, err := h.systems.UpdateSystem(context.Background(), ws.ID, ports.UpdateSystemInput{
		Name:    &name,
		PartIDs: []string{cpu.ID},
	}); err != nil {
		t.Fatalf("UpdateSystem: %v", err)
	}
	wait()

	if delErr != nil {
		t.Fatalf("DeletePart: %v", delErr)
	}
	sys := h.system(t, ws.ID)
	if sys.HasPart(ram.ID) || !sys.HasPart(cpu.ID) || sys.Name != name {
		t.Fatalf("unexpected system after race: %+v", sys)
	}
	h.checkConsistency(t)
}

// Deletes and part attachments racing over shared systems stay consistent.
func TestDeletePart_ConcurrentWithAddParts(t *testing.T) {
	for _, m := range txModes {
		t.Run(m.name, func(t *testing.T) {
			h := newHarness(t, m.opts...)

			var sysIDs, doomed, spare []string
			for i := 0; i < 3; i++ {
				p := h.mustPart(t, "Monitor", fmt.Sprintf("M%d", i))
				sysIDs = append(sysIDs, h.mustSystem(t, fmt.Sprintf("WS-%d", i), p.ID).ID)
			}
			for i := 0; i < 6; i++ {
				doomed = append(doomed, h.mustPart(t, "Printer", fmt.Sprintf("P%d", i)).ID)
				spare = append(spare, h.mustPart(t, "Headphone", fmt.Sprintf("H%d", i)).ID)
			}
			for i, id := range doomed {
				if _, err := h.systems.AddParts(context.Background(), sysIDs[i%len(sysIDs)], []string{id}); err != nil {
					t.Fatalf("AddParts: %v", err)
				}
			}

			var wg sync.WaitGroup
			for i := range doomed {
				wg.Add(2)
				go func(id string) {
					defer wg.Done()
					if err := h.parts.DeletePart(context.Background(), id); err != nil {
						t.Errorf("DeletePart(%s): %v", id, err)
					}
				}(doomed[i])
				go func(sysID, partID string) {
					defer wg.Done()
					if _, err := h.systems.AddParts(context.Background(), sysID, []string{partID}); err != nil {
						t.Errorf("AddParts(%s): %v", sysID, err)
					}
				}(sysIDs[i%len(sysIDs)], spare[i])
			}
			wg.Wait()

			for _, id := range sysIDs {
				sys := h.system(t, id)
				for _, pid := range doomed {
					if sys.HasPart(pid) {
						t.Errorf("system %s still lists deleted part %s", sys.Name, pid)
					}
				}
			}
			h.checkConsistency(t)
		})
	}
}
