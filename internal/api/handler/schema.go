package handler

import (
	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

type specRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

func toSpecs(in []specRequest) []domain.Spec {
	if in == nil {
		return nil
	}
	out := make([]domain.Spec, len(in))
	for i, s := range in {
		out[i] = domain.Spec{Key: s.Key, Value: s.Value}
	}
	return out
}

type registerPartRequest struct {
	PartType       string        `json:"part_type" validate:"required"`
	Barcode        string        `json:"barcode" validate:"required"`
	BarcodeImage   string        `json:"barcode_image"`
	SerialNumber   string        `json:"serial_number" validate:"required"`
	Brand          string        `json:"brand" validate:"required"`
	Model          string        `json:"model" validate:"required"`
	Specs          []specRequest `json:"specs" validate:"dive"`
	Notes          string        `json:"notes"`
	Status         string        `json:"status" validate:"omitempty,oneof=Active Unusable"`
	UnusableReason string        `json:"unusable_reason"`
}

func (r registerPartRequest) toInput() ports.RegisterPartInput {
	return ports.RegisterPartInput{
		PartType:       r.PartType,
		Barcode:        r.Barcode,
		BarcodeImage:   r.BarcodeImage,
		SerialNumber:   r.SerialNumber,
		Brand:          r.Brand,
		Model:          r.Model,
		Specs:          toSpecs(r.Specs),
		Notes:          r.Notes,
		Status:         domain.PartStatus(r.Status),
		UnusableReason: r.UnusableReason,
	}
}

type updatePartRequest struct {
	Barcode      *string       `json:"barcode" validate:"omitempty,min=1"`
	BarcodeImage *string       `json:"barcode_image"`
	SerialNumber *string       `json:"serial_number" validate:"omitempty,min=1"`
	Brand        *string       `json:"brand"`
	Model        *string       `json:"model"`
	Specs        []specRequest `json:"specs" validate:"dive"`
	Notes        *string       `json:"notes"`
}

func (r updatePartRequest) toInput() ports.UpdatePartInput {
	return ports.UpdatePartInput{
		Barcode:      r.Barcode,
		BarcodeImage: r.BarcodeImage,
		SerialNumber: r.SerialNumber,
		Brand:        r.Brand,
		Model:        r.Model,
		Specs:        toSpecs(r.Specs),
		Notes:        r.Notes,
	}
}

type markUnusableRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type createSystemRequest struct {
	Name  string   `json:"name" validate:"required"`
	Parts []string `json:"parts" validate:"dive,required"`
}

type updateSystemRequest struct {
	Name  *string  `json:"name" validate:"omitempty,min=1"`
	Parts []string `json:"parts" validate:"dive,required"`
}

type assignRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

type createEmployeeRequest struct {
	Name        string `json:"name" validate:"required"`
	EmployeeID  int64  `json:"employee_id" validate:"required,gt=0"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
}

func (r createEmployeeRequest) toInput() ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		Name:        r.Name,
		EmployeeID:  r.EmployeeID,
		Department:  r.Department,
		Designation: r.Designation,
		Email:       r.Email,
		Phone:       r.Phone,
	}
}

type updateEmployeeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	EmployeeID  *int64  `json:"employee_id" validate:"omitempty,gt=0"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,min=1"`
}

func (r updateEmployeeRequest) toInput() ports.UpdateEmployeeInput {
	return ports.UpdateEmployeeInput{
		Name:        r.Name,
		EmployeeID:  r.EmployeeID,
		Department:  r.Department,
		Designation: r.Designation,
		Email:       r.Email,
		Phone:       r.Phone,
	}
}

// messageResponse is returned by operations that have no entity left to show.
type messageResponse struct {
	Message string `json:"message"`
}
