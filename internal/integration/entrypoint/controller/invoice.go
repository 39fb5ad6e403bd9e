// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/application/usecase/billing"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
)

// InvoiceController handles invoice endpoints.
type InvoiceController struct {
	generateUseCase      *billing.GenerateInvoicesUseCase
	listUseCase          *billing.ListInvoicesUseCase
	getUseCase           *billing.GetInvoiceUseCase
	recordPaymentUseCase *billing.RecordPaymentUseCase
	voidUseCase          *billing.VoidInvoiceUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	generateUseCase *billing.GenerateInvoicesUseCase,
	listUseCase *billing.ListInvoicesUseCase,
	getUseCase *billing.GetInvoiceUseCase,
	recordPaymentUseCase *billing.RecordPaymentUseCase,
	voidUseCase *billing.VoidInvoiceUseCase,
) *InvoiceController {
	return &InvoiceController{
		generateUseCase:      generateUseCase,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
		voidUseCase:          voidUseCase,
	}
}

// Generate handles POST /horses/:id/invoices requests.
// One invoice per owner is produced from the horse's pending charges.
func (i *InvoiceController) Generate(ctx *gin.Context) {
	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	var req dto.GenerateInvoicesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := billing.GenerateInvoicesInput{
		HorseID:   horseID,
		TaxRate:   req.TaxRate,
		ManualTax: req.ManualTax,
		Discount:  req.Discount,
		Notes:     req.Notes,
	}

	if len(req.TransactionIDs) > 0 {
		ids := make([]uuid.UUID, len(req.TransactionIDs))
		for j, raw := range req.TransactionIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid transaction ID format",
				})
				return
			}
			ids[j] = id
		}
		input.TransactionIDs = ids
	}

	if req.InvoiceDate != "" {
		invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid invoice date format, expected YYYY-MM-DD",
			})
			return
		}
		input.InvoiceDate = invoiceDate
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format, expected YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := i.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceListResponse(output.Invoices))
}

// List handles GET /invoices requests.
func (i *InvoiceController) List(ctx *gin.Context) {
	var filter adapter.InvoiceFilter

	if ownerIDStr := ctx.Query("owner_id"); ownerIDStr != "" {
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid owner ID format",
			})
			return
		}
		filter.OwnerID = &ownerID
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.InvoiceStatus(statusStr)
		filter.Status = &status
	}

	output, err := i.listUseCase.Execute(ctx.Request.Context(), billing.ListInvoicesInput{Filter: filter})
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output.Invoices))
}

// Get handles GET /invoices/:id requests.
func (i *InvoiceController) Get(ctx *gin.Context) {
	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := i.getUseCase.Execute(ctx.Request.Context(), billing.GetInvoiceInput{InvoiceID: invoiceID})
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// RecordPayment handles POST /payments requests. Payments without an invoice
// are applied to the owner's account balance.
func (i *InvoiceController) RecordPayment(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
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

	input := billing.RecordPaymentInput{
		OwnerID:   ownerID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		Notes:     req.Notes,
	}
	if req.InvoiceID != nil {
		invoiceID, err := uuid.Parse(*req.InvoiceID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid invoice ID format",
			})
			return
		}
		input.InvoiceID = &invoiceID
	}
	if req.PaymentDate != "" {
		paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format, expected YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = paymentDate
	}

	output, err := i.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	response := dto.PaymentResponse{PaymentID: output.PaymentID.String()}
	if output.Invoice != nil {
		invoice := dto.ToInvoiceResponse(output.Invoice)
		response.Invoice = &invoice
	}
	ctx.JSON(http.StatusCreated, response)
}

// Void handles POST /invoices/:id/void requests. Voiding releases the
// invoice's charges back to pending.
func (i *InvoiceController) Void(ctx *gin.Context) {
	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := i.voidUseCase.Execute(ctx.Request.Context(), billing.VoidInvoiceInput{InvoiceID: invoiceID})
	if err != nil {
		handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// handleBillingError handles billing errors and returns appropriate HTTP responses.
func handleBillingError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillingError
	if errors.As(err, &billErr) {
		ctx.JSON(getStatusCodeForBillingError(billErr.Code), dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	var horseErr *domainerror.HorseError
	if errors.As(err, &horseErr) {
		statusCode := http.StatusBadRequest
		if horseErr.Code == domainerror.ErrCodeHorseNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: horseErr.Message,
			Code:  string(horseErr.Code),
		})
		return
	}

	var ownerErr *domainerror.OwnerError
	if errors.As(err, &ownerErr) {
		statusCode := http.StatusBadRequest
		if ownerErr.Code == domainerror.ErrCodeOwnerNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ownerErr.Message,
			Code:  string(ownerErr.Code),
		})
		return
	}

	var codeErr *domainerror.ChargeCodeError
	if errors.As(err, &codeErr) {
		statusCode := http.StatusBadRequest
		if codeErr.Code == domainerror.ErrCodeChargeCodeNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: codeErr.Message,
			Code:  string(codeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBillingError maps billing error codes to HTTP status codes.
func getStatusCodeForBillingError(code domainerror.BillingErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAlreadyInvoiced,
		domainerror.ErrCodeInvoiceNotVoidable,
		domainerror.ErrCodeConcurrentModification:
		return http.StatusConflict
	case domainerror.ErrCodeNoOwner,
		domainerror.ErrCodeInvalidOwnership,
		domainerror.ErrCodeInvalidBatch,
		domainerror.ErrCodePaymentExceedsBalance,
		domainerror.ErrCodeInvoiceVoid:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeEmptyChargeBatch,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidUnitPrice,
		domainerror.ErrCodeInvalidServiceDate,
		domainerror.ErrCodeMissingDescription,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeInvalidTaxInput,
		domainerror.ErrCodeInvalidDiscount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
