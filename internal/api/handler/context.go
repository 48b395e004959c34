package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/systrack/systrack-api/internal/api/metrics"
	"github.com/systrack/systrack-api/internal/core/domain"
)

// pathID reads a required path parameter. Echo leaves a missing segment
// empty rather than failing the route, so an empty value is a bad request.
func pathID(c echo.Context, name string) (string, error) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, name+" is required")
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// observe records the outcome of one inventory mutation.
func observe(operation string, start time.Time, err error) {
	metrics.MutationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.MutationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict):
		return "rejected"
	default:
		return "error"
	}
}
