// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/usecase/chargecode"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
)

// ChargeCodeController handles charge code catalog endpoints.
type ChargeCodeController struct {
	createUseCase *chargecode.CreateChargeCodeUseCase
	listUseCase   *chargecode.ListChargeCodesUseCase
	updateUseCase *chargecode.UpdateChargeCodeUseCase
}

// NewChargeCodeController creates a new charge code controller instance.
func NewChargeCodeController(
	createUseCase *chargecode.CreateChargeCodeUseCase,
	listUseCase *chargecode.ListChargeCodesUseCase,
	updateUseCase *chargecode.UpdateChargeCodeUseCase,
) *ChargeCodeController {
	return &ChargeCodeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /charge-codes requests.
func (c *ChargeCodeController) Create(ctx *gin.Context) {
	var req dto.CreateChargeCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), chargecode.CreateChargeCodeInput{
		Code:           req.Code,
		AlternateCode:  req.AlternateCode,
		Description:    req.Description,
		Category:       req.Category,
		StandardCharge: req.StandardCharge,
		Taxable:        req.Taxable,
	})
	if err != nil {
		c.handleChargeCodeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToChargeCodeResponse(output.ChargeCode))
}

// List handles GET /charge-codes requests.
func (c *ChargeCodeController) List(ctx *gin.Context) {
	input := chargecode.ListChargeCodesInput{
		ActiveOnly: ctx.Query("include_inactive") != "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve charge codes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChargeCodeListResponse(output.ChargeCodes))
}

// Update handles PATCH /charge-codes/:id requests.
// Catalog changes only affect future charge lines.
func (c *ChargeCodeController) Update(ctx *gin.Context) {
	chargeCodeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid charge code ID format",
		})
		return
	}

	var req dto.UpdateChargeCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), chargecode.UpdateChargeCodeInput{
		ChargeCodeID:   chargeCodeID,
		Code:           req.Code,
		AlternateCode:  req.AlternateCode,
		Description:    req.Description,
		Category:       req.Category,
		StandardCharge: req.StandardCharge,
		Taxable:        req.Taxable,
		IsActive:       req.IsActive,
	})
	if err != nil {
		c.handleChargeCodeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChargeCodeResponse(output.ChargeCode))
}

// handleChargeCodeError handles charge code errors and returns appropriate HTTP responses.
func (c *ChargeCodeController) handleChargeCodeError(ctx *gin.Context, err error) {
	var codeErr *domainerror.ChargeCodeError
	if errors.As(err, &codeErr) {
		ctx.JSON(c.getStatusCodeForChargeCodeError(codeErr.Code), dto.ErrorResponse{
			Error: codeErr.Message,
			Code:  string(codeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForChargeCodeError maps charge code error codes to HTTP status codes.
func (c *ChargeCodeController) getStatusCodeForChargeCodeError(code domainerror.ChargeCodeErrorCode) int {
	switch code {
	case domainerror.ErrCodeChargeCodeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateChargeCode:
		return http.StatusConflict
	case domainerror.ErrCodeMissingChargeCode,
		domainerror.ErrCodeNegativeCharge,
		domainerror.ErrCodeChargeCodeInactive:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
