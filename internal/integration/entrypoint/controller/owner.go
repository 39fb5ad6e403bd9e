// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/usecase/owner"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
)

// OwnerController handles owner endpoints.
type OwnerController struct {
	createUseCase *owner.CreateOwnerUseCase
	listUseCase   *owner.ListOwnersUseCase
	getUseCase    *owner.GetOwnerUseCase
	updateUseCase *owner.UpdateOwnerUseCase
}

// NewOwnerController creates a new owner controller instance.
func NewOwnerController(
	createUseCase *owner.CreateOwnerUseCase,
	listUseCase *owner.ListOwnersUseCase,
	getUseCase *owner.GetOwnerUseCase,
	updateUseCase *owner.UpdateOwnerUseCase,
) *OwnerController {
	return &OwnerController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /owners requests.
func (o *OwnerController) Create(ctx *gin.Context) {
	var req dto.CreateOwnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := o.createUseCase.Execute(ctx.Request.Context(), owner.CreateOwnerInput{
		AccountNumber: req.AccountNumber,
		FarmName:      req.FarmName,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Phone:         req.Phone,
		Email:         req.Email,
		CreditLimit:   req.CreditLimit,
		Notes:         req.Notes,
	})
	if err != nil {
		o.handleOwnerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOwnerResponse(output.Owner))
}

// List handles GET /owners requests.
func (o *OwnerController) List(ctx *gin.Context) {
	input := owner.ListOwnersInput{
		Search:     ctx.Query("search"),
		ActiveOnly: ctx.Query("include_inactive") != "true",
	}

	output, err := o.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve owners",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOwnerListResponse(output.Owners))
}

// Get handles GET /owners/:id requests.
func (o *OwnerController) Get(ctx *gin.Context) {
	ownerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid owner ID format",
		})
		return
	}

	output, err := o.getUseCase.Execute(ctx.Request.Context(), owner.GetOwnerInput{OwnerID: ownerID})
	if err != nil {
		o.handleOwnerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOwnerResponse(output.Owner))
}

// Update handles PATCH /owners/:id requests.
func (o *OwnerController) Update(ctx *gin.Context) {
	ownerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid owner ID format",
		})
		return
	}

	var req dto.UpdateOwnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := o.updateUseCase.Execute(ctx.Request.Context(), owner.UpdateOwnerInput{
		OwnerID:          ownerID,
		AccountNumber:    req.AccountNumber,
		FarmName:         req.FarmName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		AddressLine1:     req.AddressLine1,
		AddressLine2:     req.AddressLine2,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		Phone:            req.Phone,
		Email:            req.Email,
		IsActive:         req.IsActive,
		CreditLimit:      req.CreditLimit,
		ClearCreditLimit: req.ClearCreditLimit,
		Notes:            req.Notes,
	})
	if err != nil {
		o.handleOwnerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOwnerResponse(output.Owner))
}

// handleOwnerError handles owner errors and returns appropriate HTTP responses.
func (o *OwnerController) handleOwnerError(ctx *gin.Context, err error) {
	var ownerErr *domainerror.OwnerError
	if errors.As(err, &ownerErr) {
		ctx.JSON(o.getStatusCodeForOwnerError(ownerErr.Code), dto.ErrorResponse{
			Error: ownerErr.Message,
			Code:  string(ownerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForOwnerError maps owner error codes to HTTP status codes.
func (o *OwnerController) getStatusCodeForOwnerError(code domainerror.OwnerErrorCode) int {
	switch code {
	case domainerror.ErrCodeOwnerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateAccountNumber:
		return http.StatusConflict
	case domainerror.ErrCodeMissingOwnerName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
