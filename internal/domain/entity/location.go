package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a place where horses are kept (barn, paddock, clinic stall).
type Location struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLocation creates a new Location entity.
func NewLocation(name, description string) *Location {
	now := time.Now().UTC()
	return &Location{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
