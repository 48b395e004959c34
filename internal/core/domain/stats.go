package domain

// DashboardStats are derived counts over the whole inventory.
type DashboardStats struct {
	TotalSystems       int64 `json:"total_systems"`
	AssignedSystems    int64 `json:"assigned_systems"`
	UnassignedSystems  int64 `json:"unassigned_systems"`
	DeallocatedSystems int64 `json:"deallocated_systems"`
	TotalParts         int64 `json:"total_parts"`
	ActiveParts        int64 `json:"active_parts"`
	UnusableParts      int64 `json:"unusable_parts"`
	TotalEmployees     int64 `json:"total_employees"`
}
