package user

import (
	"context"
	"fmt"

	"github.com/equivet/backend/internal/application/adapter"
)

// ListUsersInput represents the input for listing users.
type ListUsersInput struct {
	IncludeInactive bool
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*UserOutput
}

// ListUsersUseCase lists staff accounts.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute retrieves the users, ordered by name.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	users, err := uc.userRepo.List(ctx, input.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	outputs := make([]*UserOutput, len(users))
	for i, u := range users {
		outputs[i] = toUserOutput(u)
	}
	return &ListUsersOutput{Users: outputs}, nil
}
