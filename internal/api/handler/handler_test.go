package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

// Stubs embed the port so only the methods a test exercises need a body.

type stubPartService struct {
	ports.PartService
	listFn         func(status domain.PartStatus, partType string) ([]*domain.Part, error)
	freeFn         func(multiOnly bool) ([]*domain.Part, error)
	markUnusableFn func(id, reason string) (*domain.Part, error)
}

func (s *stubPartService) ListParts(_ context.Context, status domain.PartStatus, partType string) ([]*domain.Part, error) {
	return s.listFn(status, partType)
}

func (s *stubPartService) ListFree(_ context.Context, multiOnly bool) ([]*domain.Part, error) {
	return s.freeFn(multiOnly)
}

func (s *stubPartService) MarkUnusable(_ context.Context, id, reason string) (*domain.Part, error) {
	return s.markUnusableFn(id, reason)
}

type stubSystemService struct {
	ports.SystemService
	updateFn func(id string, in ports.UpdateSystemInput) (*ports.SystemView, error)
}

func (s *stubSystemService) UpdateSystem(_ context.Context, id string, in ports.UpdateSystemInput) (*ports.SystemView, error) {
	return s.updateFn(id, in)
}

type stubAssignmentService struct {
	ports.AssignmentService
	assignFn func(systemID, employeeID string) (*ports.SystemView, error)
}

func (s *stubAssignmentService) Assign(_ context.Context, systemID, employeeID string) (*ports.SystemView, error) {
	return s.assignFn(systemID, employeeID)
}

type stubEmployeeService struct {
	ports.EmployeeService
	createFn func(in ports.CreateEmployeeInput) (*domain.Employee, error)
}

func (s *stubEmployeeService) CreateEmployee(_ context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error) {
	return s.createFn(in)
}

type stubAuditReader struct {
	limits []int
}

func (s *stubAuditReader) ListChronological(_ context.Context, limit int) ([]domain.AuditEntryView, error) {
	s.limits = append(s.limits, limit)
	return []domain.AuditEntryView{}, nil
}

func TestPartHandler_List_PassesFilters(t *testing.T) {
	stub := &stubPartService{
		listFn: func(status domain.PartStatus, partType string) ([]*domain.Part, error) {
			if status != domain.PartUnusable || partType != "RAM" {
				t.Fatalf("unexpected filters: %q %q", status, partType)
			}
			return []*domain.Part{{ID: "p1"}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/api/part?status=Unusable&type=RAM", "")

	if err := NewPartHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"p1"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestPartHandler_Free_ParsesMulti(t *testing.T) {
	var got []bool
	stub := &stubPartService{
		freeFn: func(multiOnly bool) ([]*domain.Part, error) {
			got = append(got, multiOnly)
			return nil, nil
		},
	}
	h := NewPartHandler(stub)

	for _, target := range []string{"/api/part/freeparts", "/api/part/freeparts?multi=true"} {
		c, _ := newJSONContext(http.MethodGet, target, "")
		if err := h.Free(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}
	if len(got) != 2 || got[0] || !got[1] {
		t.Fatalf("unexpected multi flags: %v", got)
	}

	c, _ := newJSONContext(http.MethodGet, "/api/part/freeparts?multi=maybe", "")
	expectHTTPError(t, h.Free(c), http.StatusBadRequest)
}

func TestPartHandler_MarkUnusable(t *testing.T) {
	stub := &stubPartService{
		markUnusableFn: func(id, reason string) (*domain.Part, error) {
			if id != "p1" || reason != "cracked" {
				t.Fatalf("unexpected args: %s %s", id, reason)
			}
			return &domain.Part{ID: id, Status: domain.PartUnusable, UnusableReason: reason}, nil
		},
	}
	h := NewPartHandler(stub)

	c, rec := newJSONContext(http.MethodPatch, "/api/part/p1/unusable", `{"reason":"cracked"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := h.MarkUnusable(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newJSONContext(http.MethodPatch, "/api/part/p1/unusable", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	err := h.MarkUnusable(c)
	expectHTTPError(t, err, http.StatusBadRequest)
	if !strings.Contains(err.Error(), "reason is required") {
		t.Fatalf("expected json field name in message, got %v", err)
	}
}

func TestPartHandler_MarkUnusable_PassesDomainError(t *testing.T) {
	stub := &stubPartService{
		markUnusableFn: func(id, reason string) (*domain.Part, error) {
			return nil, domain.ErrPartInUse
		},
	}
	c, _ := newJSONContext(http.MethodPatch, "/api/part/p1/unusable", `{"reason":"cracked"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := NewPartHandler(stub).MarkUnusable(c); !errors.Is(err, domain.ErrPartInUse) {
		t.Fatalf("expected ErrPartInUse, got %v", err)
	}
}

func TestSystemHandler_Update(t *testing.T) {
	stub := &stubSystemService{
		updateFn: func(id string, in ports.UpdateSystemInput) (*ports.SystemView, error) {
			if id != "s1" || in.Name == nil || *in.Name != "WS-02" || len(in.PartIDs) != 1 || in.PartIDs[0] != "p9" {
				t.Fatalf("unexpected args: %s %+v", id, in)
			}
			return &ports.SystemView{System: &domain.System{ID: id, Name: *in.Name}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/system/updateSystem/s1", `{"name":"WS-02","parts":["p9"]}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := NewSystemHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["name"] != "WS-02" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestSystemHandler_Update_RejectsBlankPartID(t *testing.T) {
	stub := &stubSystemService{
		updateFn: func(id string, in ports.UpdateSystemInput) (*ports.SystemView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/system/updateSystem/s1", `{"parts":[""]}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	expectHTTPError(t, NewSystemHandler(stub).Update(c), http.StatusBadRequest)
}

func TestAssignmentHandler_Assign(t *testing.T) {
	stub := &stubAssignmentService{
		assignFn: func(systemID, employeeID string) (*ports.SystemView, error) {
			if systemID != "s1" || employeeID != "e1" {
				t.Fatalf("unexpected args: %s %s", systemID, employeeID)
			}
			sys := &domain.System{ID: systemID}
			sys.AssignTo(employeeID)
			return &ports.SystemView{System: sys}, nil
		},
	}
	h := NewAssignmentHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/system/assignSystem/s1", `{"employee_id":"e1"}`)
	c.SetParamNames("systemId")
	c.SetParamValues("s1")
	if err := h.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"status":"assigned"`) {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}

	c, _ = newJSONContext(http.MethodPost, "/api/system/assignSystem/s1", `{}`)
	c.SetParamNames("systemId")
	c.SetParamValues("s1")
	expectHTTPError(t, h.Assign(c), http.StatusBadRequest)
}

func TestAssignmentHandler_MissingPathParam(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/system/assignSystem/", `{"employee_id":"e1"}`)
	expectHTTPError(t, NewAssignmentHandler(&stubAssignmentService{}).Assign(c), http.StatusBadRequest)
}

func TestEmployeeHandler_Create(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(in ports.CreateEmployeeInput) (*domain.Employee, error) {
			if in.Name != "Ada" || in.EmployeeID != 7 || in.Email != "ada@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Employee{ID: "e1", Name: in.Name}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/employee",
		`{"name":"Ada","employee_id":7,"email":"ada@example.com","phone":"555-0007"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, _ = newJSONContext(http.MethodPost, "/api/employee",
		`{"name":"Ada","employee_id":0,"email":"ada@example.com","phone":"555-0007"}`)
	expectHTTPError(t, h.Create(c), http.StatusBadRequest)
}

func TestAuditHandler_Logs_Limit(t *testing.T) {
	reader := &stubAuditReader{}
	h := NewAuditHandler(reader, nil)

	for _, target := range []string{"/api/logs", "/api/logs?limit=5", "/api/logs?limit=0"} {
		c, rec := newJSONContext(http.MethodGet, target, "")
		if err := h.Logs(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
	if len(reader.limits) != 3 || reader.limits[0] != defaultLogLimit || reader.limits[1] != 5 || reader.limits[2] != 0 {
		t.Fatalf("unexpected limits: %v", reader.limits)
	}

	c, _ := newJSONContext(http.MethodGet, "/api/logs?limit=abc", "")
	expectHTTPError(t, h.Logs(c), http.StatusBadRequest)
}

func TestResultLabel(t *testing.T) {
	cases := map[string]error{
		"ok":       nil,
		"rejected": domain.ErrPartAlreadyAssigned,
		"error":    errors.New("disk full"),
	}
	for want, err := range cases {
		if got := resultLabel(err); got != want {
			t.Fatalf("resultLabel(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestHealth_ReadinessWithoutDependencies(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
	if err := NewHealthDependenciesHandler(nil, nil).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Dependencies["redis"].Status != "disabled" || resp.Dependencies["mongodb"].Status != "disabled" {
		t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
	}
}

func TestHealth_ReadinessReportsFailingProbe(t *testing.T) {
	h := &HealthDependenciesHandler{probes: []probe{
		{name: "mongodb", check: func(context.Context) error { return nil }},
		{name: "redis", check: func(context.Context) error { return errors.New("connection refused") }},
	}}
	c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp readinessResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != "degraded" || resp.Dependencies["mongodb"].Status != "ok" || resp.Dependencies["redis"].Error == "" {
		t.Fatalf("unexpected readiness body: %+v", resp)
	}
}
