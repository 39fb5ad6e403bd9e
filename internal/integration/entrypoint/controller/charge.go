// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/usecase/billing"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
	"github.com/equivet/backend/internal/integration/entrypoint/middleware"
)

// ChargeController handles charge transaction endpoints.
type ChargeController struct {
	addBatchUseCase    *billing.AddChargeBatchUseCase
	listPendingUseCase *billing.ListPendingTransactionsUseCase
	updateUseCase      *billing.UpdateTransactionUseCase
	deleteUseCase      *billing.DeleteTransactionUseCase
}

// NewChargeController creates a new charge controller instance.
func NewChargeController(
	addBatchUseCase *billing.AddChargeBatchUseCase,
	listPendingUseCase *billing.ListPendingTransactionsUseCase,
	updateUseCase *billing.UpdateTransactionUseCase,
	deleteUseCase *billing.DeleteTransactionUseCase,
) *ChargeController {
	return &ChargeController{
		addBatchUseCase:    addBatchUseCase,
		listPendingUseCase: listPendingUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// AddBatch handles POST /horses/:id/charges requests.
func (c *ChargeController) AddBatch(ctx *gin.Context) {
	administeredBy, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	var req dto.AddChargeBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid owner ID format",
		})
		return
	}

	serviceDate, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid service date format, expected YYYY-MM-DD",
		})
		return
	}

	input := billing.AddChargeBatchInput{
		HorseID:          horseID,
		OwnerID:          ownerID,
		ServiceDate:      serviceDate,
		AdministeredByID: administeredBy,
	}
	if req.BillingDate != "" {
		billingDate, err := time.Parse("2006-01-02", req.BillingDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid billing date format, expected YYYY-MM-DD",
			})
			return
		}
		input.BillingDate = &billingDate
	}

	items := make([]billing.ChargeItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = billing.ChargeItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Taxable:     item.Taxable,
			Notes:       item.Notes,
		}
		if item.ChargeCodeID != nil {
			chargeCodeID, err := uuid.Parse(*item.ChargeCodeID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid charge code ID format",
				})
				return
			}
			items[i].ChargeCodeID = &chargeCodeID
		}
	}
	input.Items = items

	output, err := c.addBatchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionListResponse(output.Transactions))
}

// ListPending handles GET /horses/:id/charges/pending requests.
func (c *ChargeController) ListPending(ctx *gin.Context) {
	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	output, err := c.listPendingUseCase.Execute(ctx.Request.Context(), billing.ListPendingTransactionsInput{
		HorseID: horseID,
	})
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	response := dto.PendingChargesResponse{
		Transactions:    dto.ToTransactionListResponse(output.Transactions).Transactions,
		Subtotal:        output.Subtotal,
		TaxableSubtotal: output.TaxableSubtotal,
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /charges/:id requests. Only pending charges can change.
func (c *ChargeController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := billing.UpdateTransactionInput{
		TransactionID:   transactionID,
		Description:     req.Description,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		Taxable:         req.Taxable,
		ClearChargeCode: req.ClearChargeCode,
		Notes:           req.Notes,
	}
	if req.ServiceDate != nil {
		serviceDate, err := time.Parse("2006-01-02", *req.ServiceDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid service date format, expected YYYY-MM-DD",
			})
			return
		}
		input.ServiceDate = &serviceDate
	}
	if req.BillingDate != nil {
		billingDate, err := time.Parse("2006-01-02", *req.BillingDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid billing date format, expected YYYY-MM-DD",
			})
			return
		}
		input.BillingDate = &billingDate
	}
	if req.ChargeCodeID != nil {
		chargeCodeID, err := uuid.Parse(*req.ChargeCodeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid charge code ID format",
			})
			return
		}
		input.ChargeCodeID = &chargeCodeID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /charges/:id requests. Only pending charges can be removed.
func (c *ChargeController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), billing.DeleteTransactionInput{
		TransactionID: transactionID,
	}); err != nil {
		handleBillingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
