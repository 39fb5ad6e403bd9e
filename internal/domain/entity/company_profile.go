package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyProfile holds the practice's own details, printed on invoices.
// The practice keeps exactly one profile.
type CompanyProfile struct {
	ID           uuid.UUID
	CompanyName  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Phone        string
	Email        string
	Website      string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCompanyProfile creates a new CompanyProfile entity.
func NewCompanyProfile(companyName string) *CompanyProfile {
	now := time.Now().UTC()
	return &CompanyProfile{
		ID:          uuid.New(),
		CompanyName: companyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
