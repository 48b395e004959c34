package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/systrack/systrack-api/internal/core/ports"
)

// AssignmentHandler exposes the employee <-> system edge.
type AssignmentHandler struct {
	assignments ports.AssignmentService
}

func NewAssignmentHandler(assignments ports.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// Assign hands a system to an employee, vacating whatever either side held.
//
// @Summary      Assign a system
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        systemId  path      string         true  "System ID"
// @Param        body      body      assignRequest  true  "Employee to receive the system"
// @Success      200       {object}  ports.SystemView
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /api/system/assignSystem/{systemId} [post]
func (h *AssignmentHandler) Assign(c echo.Context) (err error) {
	defer func(start time.Time) { observe("assign", start, err) }(time.Now())

	systemID, err := pathID(c, "systemId")
	if err != nil {
		return err
	}
	var req assignRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.assignments.Assign(c.Request().Context(), systemID, req.EmployeeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Unassign takes a system back from its holder.
//
// @Summary      Unassign a system
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        systemId  path      string  true  "System ID"
// @Success      200       {object}  ports.SystemView
// @Failure      404       {object}  map[string]string
// @Router       /api/system/unassign/{systemId} [patch]
func (h *AssignmentHandler) Unassign(c echo.Context) (err error) {
	defer func(start time.Time) { observe("unassign", start, err) }(time.Now())

	systemID, err := pathID(c, "systemId")
	if err != nil {
		return err
	}
	view, err := h.assignments.Unassign(c.Request().Context(), systemID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Deallocate takes a system back and marks it deallocated.
//
// @Summary      Deallocate a system
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        systemId  path      string  true  "System ID"
// @Success      200       {object}  ports.SystemView
// @Failure      404       {object}  map[string]string
// @Router       /api/system/deallocate/{systemId} [patch]
func (h *AssignmentHandler) Deallocate(c echo.Context) (err error) {
	defer func(start time.Time) { observe("deallocate", start, err) }(time.Now())

	systemID, err := pathID(c, "systemId")
	if err != nil {
		return err
	}
	view, err := h.assignments.Deallocate(c.Request().Context(), systemID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
