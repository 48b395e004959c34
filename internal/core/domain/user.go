package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an operator account. Users are the performers recorded on audit entries.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
