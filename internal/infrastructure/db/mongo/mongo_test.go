package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

func dupErr(index string) error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: systrack.parts index: " + index + " dup key: { x: \"1\" }",
	}}}
}

func TestMapDuplicate(t *testing.T) {
	if got := mapDuplicate(dupErr(indexPartSerial), partDuplicates); got != domain.ErrDuplicateSerial {
		t.Fatalf("expected ErrDuplicateSerial, got %v", got)
	}
	if got := mapDuplicate(dupErr(indexPartBarcode), partDuplicates); got != domain.ErrDuplicateBarcode {
		t.Fatalf("expected ErrDuplicateBarcode, got %v", got)
	}
	if got := mapDuplicate(dupErr("_id_"), partDuplicates); !errors.Is(got, domain.ErrDuplicateKey) {
		t.Fatalf("expected generic duplicate key, got %v", got)
	}

	other := errors.New("network")
	if got := mapDuplicate(other, partDuplicates); got != other {
		t.Fatalf("expected error to pass through, got %v", got)
	}
	if mapDuplicate(nil, partDuplicates) != nil {
		t.Fatalf("expected nil")
	}
}

func TestPartFilter(t *testing.T) {
	if got := partFilter(ports.PartFilter{}); len(got) != 0 {
		t.Fatalf("expected empty filter, got %v", got)
	}

	got := partFilter(ports.PartFilter{
		Status:           domain.PartActive,
		Free:             true,
		MultiAssignTypes: []string{"Printer"},
	})
	and, ok := got["$and"].([]bson.M)
	if !ok || len(and) != 2 {
		t.Fatalf("expected two clauses, got %v", got)
	}
	if and[0]["status"] != domain.PartActive {
		t.Fatalf("unexpected status clause: %v", and[0])
	}
	if _, ok := and[1]["$or"]; !ok {
		t.Fatalf("expected free clause, got %v", and[1])
	}
}

func TestEmployeeFilter(t *testing.T) {
	f := employeeFilter(ports.EmployeeFilter{Unassigned: true})
	if v, ok := f["allocated_sys"]; !ok || v != nil {
		t.Fatalf("expected allocated_sys null match, got %v", f)
	}
	f = employeeFilter(ports.EmployeeFilter{AllocatedSys: "s1"})
	if f["allocated_sys"] != "s1" {
		t.Fatalf("unexpected filter %v", f)
	}
}

func TestSystemUpdate_LeavesPartsAlone(t *testing.T) {
	holder := "e1"
	sys := &domain.System{ID: "s1", Name: "Desk", Parts: []string{"p1"}, AssignedTo: &holder, Status: domain.SystemAssigned}

	set, ok := systemUpdate(sys)["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected a $set document")
	}
	if _, has := set["parts"]; has {
		t.Fatalf("update must not write the part set: %v", set)
	}
	if set["name"] != "Desk" || set["status"] != domain.SystemAssigned || set["assigned_to"] != &holder {
		t.Fatalf("unexpected $set %v", set)
	}
}

func TestSupportsTransactions(t *testing.T) {
	cases := []struct {
		name  string
		hello bson.M
		want  bool
	}{
		{"standalone", bson.M{"isWritablePrimary": true}, false},
		{"replica set", bson.M{"isWritablePrimary": true, "setName": "rs0"}, true},
		{"mongos", bson.M{"msg": "isdbgrid"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := supportsTransactions(tc.hello); got != tc.want {
				t.Fatalf("supportsTransactions(%v) = %v, want %v", tc.hello, got, tc.want)
			}
		})
	}
}
