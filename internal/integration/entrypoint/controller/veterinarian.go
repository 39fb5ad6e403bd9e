package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/usecase/veterinarian"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
)

// VeterinarianController handles veterinarian reference-data endpoints.
type VeterinarianController struct {
	createUseCase *veterinarian.CreateVeterinarianUseCase
	listUseCase   *veterinarian.ListVeterinariansUseCase
	getUseCase    *veterinarian.GetVeterinarianUseCase
	updateUseCase *veterinarian.UpdateVeterinarianUseCase
}

// NewVeterinarianController creates a new veterinarian controller instance.
func NewVeterinarianController(
	createUseCase *veterinarian.CreateVeterinarianUseCase,
	listUseCase *veterinarian.ListVeterinariansUseCase,
	getUseCase *veterinarian.GetVeterinarianUseCase,
	updateUseCase *veterinarian.UpdateVeterinarianUseCase,
) *VeterinarianController {
	return &VeterinarianController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /veterinarians requests.
func (v *VeterinarianController) Create(ctx *gin.Context) {
	var req dto.CreateVeterinarianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := v.createUseCase.Execute(ctx.Request.Context(), veterinarian.CreateVeterinarianInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Email:         req.Email,
	})
	if err != nil {
		v.handleVeterinarianError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVeterinarianResponse(output.Veterinarian))
}

// List handles GET /veterinarians requests.
func (v *VeterinarianController) List(ctx *gin.Context) {
	input := veterinarian.ListVeterinariansInput{
		ActiveOnly: ctx.Query("include_inactive") != "true",
	}

	output, err := v.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve veterinarians",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVeterinarianListResponse(output.Veterinarians))
}

// Get handles GET /veterinarians/:id requests.
func (v *VeterinarianController) Get(ctx *gin.Context) {
	vetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid veterinarian ID format",
		})
		return
	}

	output, err := v.getUseCase.Execute(ctx.Request.Context(), veterinarian.GetVeterinarianInput{
		VeterinarianID: vetID,
	})
	if err != nil {
		v.handleVeterinarianError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVeterinarianResponse(output.Veterinarian))
}

// Update handles PATCH /veterinarians/:id requests.
func (v *VeterinarianController) Update(ctx *gin.Context) {
	vetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid veterinarian ID format",
		})
		return
	}

	var req dto.UpdateVeterinarianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := v.updateUseCase.Execute(ctx.Request.Context(), veterinarian.UpdateVeterinarianInput{
		VeterinarianID: vetID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		LicenseNumber:  req.LicenseNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		IsActive:       req.IsActive,
	})
	if err != nil {
		v.handleVeterinarianError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVeterinarianResponse(output.Veterinarian))
}

// handleVeterinarianError handles veterinarian errors and returns appropriate HTTP responses.
func (v *VeterinarianController) handleVeterinarianError(ctx *gin.Context, err error) {
	var vetErr *domainerror.VeterinarianError
	if errors.As(err, &vetErr) {
		ctx.JSON(v.getStatusCodeForVeterinarianError(vetErr.Code), dto.ErrorResponse{
			Error: vetErr.Message,
			Code:  string(vetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForVeterinarianError maps veterinarian error codes to HTTP status codes.
func (v *VeterinarianController) getStatusCodeForVeterinarianError(code domainerror.VeterinarianErrorCode) int {
	switch code {
	case domainerror.ErrCodeVeterinarianNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateLicenseNumber:
		return http.StatusConflict
	case domainerror.ErrCodeMissingVeterinarianName,
		domainerror.ErrCodeInvalidVeterinarianEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
