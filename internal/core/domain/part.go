package domain

import (
	"slices"
	"time"
)

// PartStatus is the usability state of a physical component.
type PartStatus string

const (
	PartActive   PartStatus = "Active"
	PartUnusable PartStatus = "Unusable"
)

// Valid reports whether s is a known status.
func (s PartStatus) Valid() bool {
	return s == PartActive || s == PartUnusable
}

// Spec is a free-form key/value attribute of a part (e.g. "capacity": "16GB").
type Spec struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// Part is a physical hardware component tracked by barcode and serial number.
type Part struct {
	ID              string     `json:"id" bson:"_id"`
	PartType        string     `json:"part_type" bson:"part_type"`
	Barcode         string     `json:"barcode" bson:"barcode"`
	BarcodeImage    string     `json:"barcode_image,omitempty" bson:"barcode_image,omitempty"`
	SerialNumber    string     `json:"serial_number" bson:"serial_number"`
	Brand           string     `json:"brand" bson:"brand"`
	Model           string     `json:"model" bson:"model"`
	Specs           []Spec     `json:"specs" bson:"specs"`
	Notes           string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Status          PartStatus `json:"status" bson:"status"`
	UnusableReason  string     `json:"unusable_reason,omitempty" bson:"unusable_reason,omitempty"`
	AssignedSystems []string   `json:"assigned_systems" bson:"assigned_systems"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" bson:"updated_at"`
}

// InUse reports whether any system currently references the part.
func (p *Part) InUse() bool {
	return len(p.AssignedSystems) > 0
}

// OwnedBy reports whether systemID is among the owning systems.
func (p *Part) OwnedBy(systemID string) bool {
	return slices.Contains(p.AssignedSystems, systemID)
}

// OwnedElsewhere reports whether a system other than systemID owns the part.
func (p *Part) OwnedElsewhere(systemID string) bool {
	for _, id := range p.AssignedSystems {
		if id != systemID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (p *Part) Clone() *Part {
	if p == nil {
		return nil
	}
	c := *p
	c.Specs = slices.Clone(p.Specs)
	c.AssignedSystems = slices.Clone(p.AssignedSystems)
	return &c
}
