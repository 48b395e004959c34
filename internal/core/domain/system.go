package domain

import (
	"slices"
	"time"
)

// SystemStatus is the assignment state of a system.
type SystemStatus string

const (
	SystemAssigned    SystemStatus = "assigned"
	SystemUnassigned  SystemStatus = "unassigned"
	SystemDeallocated SystemStatus = "deallocated"
)

// System is a logical machine composed of parts and optionally held by an employee.
//
// Status is assigned exactly when AssignedTo is set. Only the assignment
// service writes AssignedTo and Status.
type System struct {
	ID         string       `json:"id" bson:"_id"`
	Name       string       `json:"name" bson:"name"`
	Parts      []string     `json:"parts" bson:"parts"`
	AssignedTo *string      `json:"assigned_to" bson:"assigned_to"`
	Status     SystemStatus `json:"status" bson:"status"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" bson:"updated_at"`
}

// HasPart reports whether partID belongs to the system.
func (s *System) HasPart(partID string) bool {
	return slices.Contains(s.Parts, partID)
}

// HeldBy reports whether the system is currently assigned to employeeID.
func (s *System) HeldBy(employeeID string) bool {
	return s.AssignedTo != nil && *s.AssignedTo == employeeID
}

// AssignTo moves the system into the assigned state.
func (s *System) AssignTo(employeeID string) {
	id := employeeID
	s.AssignedTo = &id
	s.Status = SystemAssigned
}

// Release clears the assignee and moves the system into status, which must
// not be SystemAssigned.
func (s *System) Release(status SystemStatus) {
	s.AssignedTo = nil
	s.Status = status
}

// Clone returns a deep copy.
func (s *System) Clone() *System {
	if s == nil {
		return nil
	}
	c := *s
	c.Parts = slices.Clone(s.Parts)
	if s.AssignedTo != nil {
		id := *s.AssignedTo
		c.AssignedTo = &id
	}
	return &c
}
