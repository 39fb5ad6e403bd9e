// Package user contains the staff account management use cases. All of
// these are admin-only; role enforcement happens in the middleware.
package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// UserOutput represents a user in use case outputs. The password hash never
// leaves the application layer.
type UserOutput struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Roles     []entity.Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toUserOutput(u *entity.User) *UserOutput {
	return &UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     u.Roles,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func validateRoles(roles []entity.Role) error {
	if len(roles) == 0 {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidRole,
			"at least one role is required",
			domainerror.ErrInvalidRole,
		)
	}
	for _, r := range roles {
		if !entity.ValidRole(r) {
			return domainerror.NewUserError(
				domainerror.ErrCodeInvalidRole,
				"unknown role: "+string(r),
				domainerror.ErrInvalidRole,
			)
		}
	}
	return nil
}
