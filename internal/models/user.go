package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// Valid reports whether r is one of the closed set of roles. Role checks go
// through this and the middleware gate, never raw string comparison.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	ID           string   `gorm:"size:36;primaryKey"`
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}
