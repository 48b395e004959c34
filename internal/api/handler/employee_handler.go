package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/systrack/systrack-api/internal/core/ports"
)

// EmployeeHandler exposes the employee directory.
type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Create adds an employee.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/employee [post]
func (h *EmployeeHandler) Create(c echo.Context) (err error) {
	defer func(start time.Time) { observe("create_employee", start, err) }(time.Now())

	var req createEmployeeRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	emp, err := h.employees.CreateEmployee(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, emp)
}

// List returns every employee with the allocated system resolved.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.EmployeeView
// @Router       /api/employee/allemployee [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	views, err := h.employees.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Unassigned returns employees that hold no system.
//
// @Summary      List employees without a system
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Employee
// @Router       /api/employee/unassigned [get]
func (h *EmployeeHandler) Unassigned(c echo.Context) error {
	emps, err := h.employees.ListUnassigned(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emps)
}

// Get returns one employee.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  ports.EmployeeView
// @Failure      404  {object}  map[string]string
// @Router       /api/employee/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.employees.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Update edits an employee's profile. The allocated system is not editable here.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee ID"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/employee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) (err error) {
	defer func(start time.Time) { observe("update_employee", start, err) }(time.Now())

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateEmployeeRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	emp, err := h.employees.UpdateEmployee(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

// Delete removes an employee, releasing any system they hold.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /api/employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) (err error) {
	defer func(start time.Time) { observe("delete_employee", start, err) }(time.Now())

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	emp, err := h.employees.DeleteEmployee(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}
