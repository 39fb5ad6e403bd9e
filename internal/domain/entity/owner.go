package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Owner represents a billed party. An owner may hold fractions of many
// horses; invoices and payments are always addressed to an owner.
type Owner struct {
	ID            uuid.UUID
	AccountNumber string
	FarmName      string
	FirstName     string
	LastName      string
	AddressLine1  string
	AddressLine2  string
	City          string
	State         string
	ZipCode       string
	Phone         string
	Email         string
	IsActive      bool
	Balance       decimal.Decimal
	CreditLimit   *decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOwner creates a new Owner entity.
func NewOwner(accountNumber, farmName, firstName, lastName string) *Owner {
	now := time.Now().UTC()
	return &Owner{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		FarmName:      farmName,
		FirstName:     firstName,
		LastName:      lastName,
		IsActive:      true,
		Balance:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DisplayName returns the owner's billing display name: the farm name when
// present, otherwise "First Last", falling back to the account number.
func (o *Owner) DisplayName() string {
	if o.FarmName != "" {
		return o.FarmName
	}
	personal := strings.TrimSpace(o.FirstName + " " + o.LastName)
	if personal != "" {
		return personal
	}
	return o.AccountNumber
}
