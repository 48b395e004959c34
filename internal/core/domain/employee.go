package domain

import "time"

// Employee is a staff member who may hold at most one system.
type Employee struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	EmployeeID   int64     `json:"employee_id" bson:"employee_id"`
	Department   string    `json:"department" bson:"department"`
	Designation  string    `json:"designation" bson:"designation"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	AllocatedSys *string   `json:"allocated_sys" bson:"allocated_sys"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Holds reports whether the employee is allocated systemID.
func (e *Employee) Holds(systemID string) bool {
	return e.AllocatedSys != nil && *e.AllocatedSys == systemID
}

// Allocate points the employee at systemID.
func (e *Employee) Allocate(systemID string) {
	id := systemID
	e.AllocatedSys = &id
}

// Clone returns a deep copy.
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	c := *e
	if e.AllocatedSys != nil {
		id := *e.AllocatedSys
		c.AllocatedSys = &id
	}
	return &c
}
