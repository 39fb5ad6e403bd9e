// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Horse represents an animal under the practice's care. Billing always
// happens through a horse: charges are entered against it and invoices are
// generated for its owners.
type Horse struct {
	ID                 uuid.UUID
	Name               string
	AccountNumber      string
	Breed              string
	Color              string
	Sex                string
	DateOfBirth        *time.Time
	RegistrationNumber string
	MicrochipID        string
	CurrentLocationID  *uuid.UUID
	IsActive           bool
	Notes              string
	Owners             []*HorseOwner
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewHorse creates a new Horse entity.
func NewHorse(name, accountNumber string) *Horse {
	now := time.Now().UTC()
	return &Horse{
		ID:            uuid.New(),
		Name:          name,
		AccountNumber: accountNumber,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HorseOwner is the association between a horse and one of its owners.
// Percentage is the fractional ownership in [0,100]; it is nullable because
// legacy records may carry no explicit share. Position preserves insertion
// order, which the split resolver relies on for deterministic allocation.
type HorseOwner struct {
	HorseID    uuid.UUID
	OwnerID    uuid.UUID
	Percentage *decimal.Decimal
	Position   int
	StartDate  time.Time
	EndDate    *time.Time
}

// HorseLocation is one entry in a horse's location history. Exactly one row
// per horse has IsCurrent set; assigning a new location closes the prior
// entry by stamping DepartureDate and clearing the flag.
type HorseLocation struct {
	ID            uuid.UUID
	HorseID       uuid.UUID
	LocationID    uuid.UUID
	ArrivalDate   time.Time
	DepartureDate *time.Time
	IsCurrent     bool
	ReasonForMove string
}
