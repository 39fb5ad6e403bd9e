// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/usecase/user"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
	"github.com/equivet/backend/internal/integration/entrypoint/middleware"
)

// UserController handles staff account endpoints.
type UserController struct {
	createUseCase *user.CreateUserUseCase
	listUseCase   *user.ListUsersUseCase
	updateUseCase *user.UpdateUserUseCase
	deleteUseCase *user.DeleteUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	listUseCase *user.ListUsersUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
) *UserController {
	return &UserController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /users requests.
func (u *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	roles := make([]entity.Role, len(req.Roles))
	for i, r := range req.Roles {
		roles[i] = entity.Role(r)
	}

	output, err := u.createUseCase.Execute(ctx.Request.Context(), user.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Roles:    roles,
	})
	if err != nil {
		u.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponseFromOutput(output.User))
}

// List handles GET /users requests.
func (u *UserController) List(ctx *gin.Context) {
	input := user.ListUsersInput{
		IncludeInactive: ctx.Query("include_inactive") == "true",
	}

	output, err := u.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve users",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// Update handles PATCH /users/:id requests.
func (u *UserController) Update(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := user.UpdateUserInput{
		UserID:   userID,
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.Roles != nil {
		roles := make([]entity.Role, len(req.Roles))
		for i, r := range req.Roles {
			roles[i] = entity.Role(r)
		}
		input.Roles = roles
	}

	output, err := u.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		u.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponseFromOutput(output.User))
}

// Delete handles DELETE /users/:id requests.
func (u *UserController) Delete(ctx *gin.Context) {
	requestedBy, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	if err := u.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		UserID:      userID,
		RequestedBy: requestedBy,
	}); err != nil {
		u.handleUserError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (u *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(u.getStatusCodeForUserError(userErr.Code), dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := http.StatusForbidden
		if authErr.Code != domainerror.ErrCodeForbidden {
			statusCode = http.StatusUnauthorized
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUserError maps user error codes to HTTP status codes.
func (u *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateUserEmail:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidRole,
		domainerror.ErrCodeWeakPassword:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
