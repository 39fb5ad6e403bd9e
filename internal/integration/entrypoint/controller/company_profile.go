package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/equivet/backend/internal/application/usecase/companyprofile"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
)

// CompanyProfileController handles practice profile endpoints.
type CompanyProfileController struct {
	getUseCase    *companyprofile.GetCompanyProfileUseCase
	updateUseCase *companyprofile.UpdateCompanyProfileUseCase
}

// NewCompanyProfileController creates a new company profile controller instance.
func NewCompanyProfileController(
	getUseCase *companyprofile.GetCompanyProfileUseCase,
	updateUseCase *companyprofile.UpdateCompanyProfileUseCase,
) *CompanyProfileController {
	return &CompanyProfileController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /company-profile requests.
func (c *CompanyProfileController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCompanyProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyProfileResponse(output.Profile))
}

// Update handles PUT /company-profile requests.
func (c *CompanyProfileController) Update(ctx *gin.Context) {
	var req dto.UpdateCompanyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), companyprofile.UpdateCompanyProfileInput{
		CompanyName:  req.CompanyName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Notes:        req.Notes,
	})
	if err != nil {
		c.handleCompanyProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyProfileResponse(output.Profile))
}

// handleCompanyProfileError handles profile errors and returns appropriate HTTP responses.
func (c *CompanyProfileController) handleCompanyProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.CompanyProfileError
	if errors.As(err, &profileErr) {
		ctx.JSON(c.getStatusCodeForCompanyProfileError(profileErr.Code), dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCompanyProfileError maps profile error codes to HTTP status codes.
func (c *CompanyProfileController) getStatusCodeForCompanyProfileError(code domainerror.CompanyProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeCompanyProfileNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingCompanyName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
