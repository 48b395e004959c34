package domain

import "time"

// AuditAction names a state-changing operation.
type AuditAction string

const (
	ActionAssignSystem     AuditAction = "ASSIGN_SYSTEM"
	ActionUnassignSystem   AuditAction = "UNASSIGN_SYSTEM"
	ActionDeallocateSystem AuditAction = "DEALLOCATE_SYSTEM"
	ActionCreateSystem     AuditAction = "CREATE_SYSTEM"
	ActionRenameSystem     AuditAction = "RENAME_SYSTEM"
	ActionAddParts         AuditAction = "ADD_PARTS"
	ActionRemovePart       AuditAction = "REMOVE_PART"
	ActionRegisterPart     AuditAction = "REGISTER_PART"
	ActionMarkUnusable     AuditAction = "MARK_PART_UNUSABLE"
	ActionRestorePart      AuditAction = "RESTORE_PART"
	ActionDeletePart       AuditAction = "DELETE_PART"
	ActionCreateEmployee   AuditAction = "CREATE_EMPLOYEE"
	ActionUpdateEmployee   AuditAction = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee   AuditAction = "DELETE_EMPLOYEE"
)

// EntityKind identifies the kind of record an audit entry is about.
type EntityKind string

const (
	EntitySystem   EntityKind = "System"
	EntityPart     EntityKind = "Part"
	EntityEmployee EntityKind = "Employee"
)

// AuditDetails is the structured context attached to an entry. Which fields
// are set depends on the action:
//
//	ASSIGN_SYSTEM      EmployeeID, EmployeeName, EmployeeEmail, PreviousEmployeeID
//	UNASSIGN_SYSTEM    EmployeeID, EmployeeName, EmployeeEmail
//	DEALLOCATE_SYSTEM  EmployeeID (when one was attached)
//	CREATE_SYSTEM      SystemName, PartIDs
//	RENAME_SYSTEM      SystemName, PreviousName
//	ADD_PARTS          PartIDs
//	REMOVE_PART        PartIDs
//	MARK_PART_UNUSABLE Reason
//	DELETE_PART        SystemIDs (systems it was detached from)
//	*_EMPLOYEE         EmployeeName, EmployeeEmail
type AuditDetails struct {
	EmployeeID         string   `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	EmployeeName       string   `json:"employee_name,omitempty" bson:"employee_name,omitempty"`
	EmployeeEmail      string   `json:"employee_email,omitempty" bson:"employee_email,omitempty"`
	PreviousEmployeeID string   `json:"previous_employee_id,omitempty" bson:"previous_employee_id,omitempty"`
	SystemName         string   `json:"system_name,omitempty" bson:"system_name,omitempty"`
	PreviousName       string   `json:"previous_name,omitempty" bson:"previous_name,omitempty"`
	SystemIDs          []string `json:"system_ids,omitempty" bson:"system_ids,omitempty"`
	PartIDs            []string `json:"part_ids,omitempty" bson:"part_ids,omitempty"`
	Reason             string   `json:"reason,omitempty" bson:"reason,omitempty"`
}

// AuditEntry is an immutable record of one state-changing action.
type AuditEntry struct {
	ID          string       `json:"id" bson:"_id"`
	Action      AuditAction  `json:"action_type" bson:"action_type"`
	EntityKind  EntityKind   `json:"entity" bson:"entity"`
	EntityID    string       `json:"entity_id" bson:"entity_id"`
	PerformerID string       `json:"performed_by,omitempty" bson:"performed_by,omitempty"`
	Details     AuditDetails `json:"details" bson:"details"`
	Timestamp   time.Time    `json:"timestamp" bson:"timestamp"`
}

// Identity is a display-friendly reference to a person or record.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// AuditEntryView is an entry with its references resolved at read time.
type AuditEntryView struct {
	AuditEntry
	Entity    *Identity `json:"entity_ref,omitempty"`
	Performer *Identity `json:"performer,omitempty"`
	Employee  *Identity `json:"employee,omitempty"`
}
