package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a permission level in the practice.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleVet   Role = "vet"
	RoleStaff Role = "staff"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleVet || r == RoleStaff
}

// User represents a staff account that can log into the system. Charge
// entries record which user administered them.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Roles        []Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new active User.
func NewUser(email, name, passwordHash string, roles []Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Roles:        roles,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
