package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/systrack/systrack-api/internal/core/ports"
)

// SystemHandler exposes system composition.
type SystemHandler struct {
	systems ports.SystemService
}

func NewSystemHandler(systems ports.SystemService) *SystemHandler {
	return &SystemHandler{systems: systems}
}

// Create composes a new system from existing parts.
//
// @Summary      Create a system
// @Tags         systems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSystemRequest  true  "Name and part ids"
// @Success      201   {object}  ports.SystemView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/system [post]
func (h *SystemHandler) Create(c echo.Context) (err error) {
	defer func(start time.Time) { observe("create_system", start, err) }(time.Now())

	var req createSystemRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.systems.CreateSystem(c.Request().Context(), req.Name, req.Parts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// List returns every system with its parts and assignee.
//
// @Summary      List systems
// @Tags         systems
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.SystemView
// @Router       /api/system/allsys [get]
func (h *SystemHandler) List(c echo.Context) error {
	views, err := h.systems.ListSystems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get returns one system.
//
// @Summary      Get a system
// @Tags         systems
// @Produce      json
// @Security     BearerAuth
// @Param        systemId  path      string  true  "System ID"
// @Success      200       {object}  ports.SystemView
// @Failure      404       {object}  map[string]string
// @Router       /api/system/{systemId} [get]
func (h *SystemHandler) Get(c echo.Context) error {
	id, err := pathID(c, "systemId")
	if err != nil {
		return err
	}
	view, err := h.systems.GetSystem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Parts returns the parts that make up a system. It is mounted on both
// /:systemId/parts and /by-system/:systemId.
//
// @Summary      List the parts of a system
// @Tags         systems
// @Produce      json
// @Security     BearerAuth
// @Param        systemId  path      string  true  "System ID"
// @Success      200       {array}   domain.Part
// @Failure      404       {object}  map[string]string
// @Router       /api/system/{systemId}/parts [get]
func (h *SystemHandler) Parts(c echo.Context) error {
	id, err := pathID(c, "systemId")
	if err != nil {
		return err
	}
	parts, err := h.systems.PartsOfSystem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parts)
}

// Update renames a system and/or adds parts to it.
//
// @Summary      Update a system
// @Tags         systems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "System ID"
// @Param        body  body      updateSystemRequest  true  "New name and/or parts to add"
// @Success      200   {object}  ports.SystemView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/system/updateSystem/{id} [post]
func (h *SystemHandler) Update(c echo.Context) (err error) {
	defer func(start time.Time) { observe("update_system", start, err) }(time.Now())

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateSystemRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.systems.UpdateSystem(c.Request().Context(), id, ports.UpdateSystemInput{
		Name:    req.Name,
		PartIDs: req.Parts,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// RemovePart detaches one part from a system.
//
// @Summary      Remove a part from a system
// @Tags         systems
// @Produce      json
// @Security     BearerAuth
// @Param        systemId  path      string  true  "System ID"
// @Param        partId    path      string  true  "Part ID"
// @Success      200       {object}  ports.SystemView
// @Failure      404       {object}  map[string]string
// @Router       /api/system/{systemId}/remove-part/{partId} [put]
func (h *SystemHandler) RemovePart(c echo.Context) (err error) {
	defer func(start time.Time) { observe("remove_part", start, err) }(time.Now())

	systemID, err := pathID(c, "systemId")
	if err != nil {
		return err
	}
	partID, err := pathID(c, "partId")
	if err != nil {
		return err
	}

	view, err := h.systems.RemovePart(c.Request().Context(), systemID, partID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
