package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

// PartHandler exposes the part registry.
type PartHandler struct {
	parts ports.PartService
}

func NewPartHandler(parts ports.PartService) *PartHandler {
	return &PartHandler{parts: parts}
}

// Register adds a part to the inventory.
//
// @Summary      Register a part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerPartRequest  true  "Part details"
// @Success      201   {object}  domain.Part
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/part [post]
func (h *PartHandler) Register(c echo.Context) (err error) {
	defer func(start time.Time) { observe("register_part", start, err) }(time.Now())

	var req registerPartRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	part, err := h.parts.RegisterPart(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, part)
}

// List returns parts, optionally narrowed by status and type.
//
// @Summary      List parts
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Active or Unusable"
// @Param        type    query     string  false  "Part type"
// @Success      200     {array}   domain.Part
// @Failure      400     {object}  map[string]string
// @Router       /api/part [get]
func (h *PartHandler) List(c echo.Context) error {
	parts, err := h.parts.ListParts(c.Request().Context(),
		domain.PartStatus(c.QueryParam("status")), c.QueryParam("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parts)
}

// Free returns Active parts that can still be composed into a system.
//
// @Summary      List free parts
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        multi  query     bool  false  "Only shareable part types"
// @Success      200    {array}   domain.Part
// @Router       /api/part/freeparts [get]
func (h *PartHandler) Free(c echo.Context) error {
	multiOnly := false
	if raw := c.QueryParam("multi"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "multi must be a boolean")
		}
		multiOnly = v
	}

	parts, err := h.parts.ListFree(c.Request().Context(), multiOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parts)
}

// Unusable returns every part marked unusable.
//
// @Summary      List unusable parts
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Part
// @Router       /api/part/unusable [get]
func (h *PartHandler) Unusable(c echo.Context) error {
	parts, err := h.parts.ListUnusable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parts)
}

// Get returns one part.
//
// @Summary      Get a part
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Part ID"
// @Success      200  {object}  domain.Part
// @Failure      404  {object}  map[string]string
// @Router       /api/part/{id} [get]
func (h *PartHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	part, err := h.parts.GetPart(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, part)
}

// Update edits the descriptive fields of a part.
//
// @Summary      Update a part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Part ID"
// @Param        body  body      updatePartRequest  true  "Fields to change"
// @Success      200   {object}  domain.Part
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/part/{id} [put]
func (h *PartHandler) Update(c echo.Context) (err error) {
	defer func(start time.Time) { observe("update_part", start, err) }(time.Now())

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updatePartRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	part, err := h.parts.UpdatePart(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, part)
}

// Delete detaches a part from every system and removes it.
//
// @Summary      Delete a part
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Part ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/part/{id} [delete]
func (h *PartHandler) Delete(c echo.Context) (err error) {
	defer func(start time.Time) { observe("delete_part", start, err) }(time.Now())

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err = h.parts.DeletePart(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "part deleted"})
}

// MarkUnusable takes a detached part out of circulation.
//
// @Summary      Mark a part unusable
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Part ID"
// @Param        body  body      markUnusableRequest  true  "Reason"
// @Success      200   {object}  domain.Part
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/part/{id}/unusable [patch]
func (h *PartHandler) MarkUnusable(c echo.Context) (err error) {
	defer func(start time.Time) { observe("mark_unusable", start, err) }(time.Now())

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req markUnusableRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	part, err := h.parts.MarkUnusable(c.Request().Context(), id, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, part)
}

// Restore returns an unusable part to service.
//
// @Summary      Restore a part
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Part ID"
// @Success      200  {object}  domain.Part
// @Failure      404  {object}  map[string]string
// @Router       /api/part/{id}/restore [patch]
func (h *PartHandler) Restore(c echo.Context) (err error) {
	defer func(start time.Time) { observe("restore_part", start, err) }(time.Now())

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	part, err := h.parts.Restore(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, part)
}
