package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/systrack/systrack-api/internal/core/ports"
)

const defaultLogLimit = 100

// AuditHandler serves the audit feed and dashboard counts.
type AuditHandler struct {
	audit ports.AuditReader
	stats ports.StatsService
}

func NewAuditHandler(audit ports.AuditReader, stats ports.StatsService) *AuditHandler {
	return &AuditHandler{audit: audit, stats: stats}
}

// Logs returns the newest audit entries with names resolved.
//
// @Summary      Audit feed
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries, 0 for all"  default(100)
// @Success      200    {array}   domain.AuditEntryView
// @Failure      400    {object}  map[string]string
// @Router       /api/logs [get]
func (h *AuditHandler) Logs(c echo.Context) error {
	limit := defaultLogLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	entries, err := h.audit.ListChronological(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Stats returns inventory counts for the dashboard.
//
// @Summary      Dashboard counts
// @Tags         systems
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /api/system/stats [get]
func (h *AuditHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
