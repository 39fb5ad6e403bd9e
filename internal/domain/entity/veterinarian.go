package entity

import (
	"time"

	"github.com/google/uuid"
)

// Veterinarian is a practitioner who can be recorded as administering
// charges. Kept as reference data, separate from login users.
type Veterinarian struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	LicenseNumber string
	Phone         string
	Email         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns the veterinarian's display name.
func (v *Veterinarian) FullName() string {
	return v.FirstName + " " + v.LastName
}

// NewVeterinarian creates a new Veterinarian entity.
func NewVeterinarian(firstName, lastName, licenseNumber, phone, email string) *Veterinarian {
	now := time.Now().UTC()
	return &Veterinarian{
		ID:            uuid.New(),
		FirstName:     firstName,
		LastName:      lastName,
		LicenseNumber: licenseNumber,
		Phone:         phone,
		Email:         email,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
