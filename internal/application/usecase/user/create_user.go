package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Roles    []entity.Role
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *UserOutput
}

// CreateUserUseCase handles staff account creation.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute creates the user.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	if err := validateRoles(input.Roles); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeDuplicateUserEmail,
			"email already registered",
			domainerror.ErrDuplicateUserEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, hash, input.Roles)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "userID", user.ID, "email", user.Email)

	return &CreateUserOutput{User: toUserOutput(user)}, nil
}
