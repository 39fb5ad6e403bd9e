// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/usecase/horse"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
)

// HorseController handles horse endpoints.
type HorseController struct {
	createUseCase         *horse.CreateHorseUseCase
	searchUseCase         *horse.SearchHorsesUseCase
	getUseCase            *horse.GetHorseUseCase
	updateUseCase         *horse.UpdateHorseUseCase
	deleteUseCase         *horse.DeleteHorseUseCase
	setOwnersUseCase      *horse.SetOwnersUseCase
	assignLocationUseCase *horse.AssignLocationUseCase
}

// NewHorseController creates a new horse controller instance.
func NewHorseController(
	createUseCase *horse.CreateHorseUseCase,
	searchUseCase *horse.SearchHorsesUseCase,
	getUseCase *horse.GetHorseUseCase,
	updateUseCase *horse.UpdateHorseUseCase,
	deleteUseCase *horse.DeleteHorseUseCase,
	setOwnersUseCase *horse.SetOwnersUseCase,
	assignLocationUseCase *horse.AssignLocationUseCase,
) *HorseController {
	return &HorseController{
		createUseCase:         createUseCase,
		searchUseCase:         searchUseCase,
		getUseCase:            getUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		setOwnersUseCase:      setOwnersUseCase,
		assignLocationUseCase: assignLocationUseCase,
	}
}

// Create handles POST /horses requests.
func (h *HorseController) Create(ctx *gin.Context) {
	var req dto.CreateHorseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	owners, err := parseOwnershipAssignments(req.Owners)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid owner ID format",
		})
		return
	}

	input := horse.CreateHorseInput{
		Name:               req.Name,
		AccountNumber:      req.AccountNumber,
		Breed:              req.Breed,
		Color:              req.Color,
		Sex:                req.Sex,
		RegistrationNumber: req.RegistrationNumber,
		MicrochipID:        req.MicrochipID,
		Notes:              req.Notes,
		Owners:             owners,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date of birth format, expected YYYY-MM-DD",
			})
			return
		}
		input.DateOfBirth = &dob
	}

	output, err := h.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		h.handleHorseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHorseResponse(output.Horse))
}

// List handles GET /horses requests.
func (h *HorseController) List(ctx *gin.Context) {
	input := horse.SearchHorsesInput{
		Search:     ctx.Query("search"),
		ActiveOnly: ctx.Query("include_inactive") != "true",
	}

	output, err := h.searchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve horses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHorseListResponse(output.Horses))
}

// Get handles GET /horses/:id requests.
func (h *HorseController) Get(ctx *gin.Context) {
	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	output, err := h.getUseCase.Execute(ctx.Request.Context(), horse.GetHorseInput{HorseID: horseID})
	if err != nil {
		h.handleHorseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHorseResponse(output.Horse))
}

// Update handles PATCH /horses/:id requests.
func (h *HorseController) Update(ctx *gin.Context) {
	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	var req dto.UpdateHorseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := horse.UpdateHorseInput{
		HorseID:            horseID,
		Name:               req.Name,
		AccountNumber:      req.AccountNumber,
		Breed:              req.Breed,
		Color:              req.Color,
		Sex:                req.Sex,
		RegistrationNumber: req.RegistrationNumber,
		MicrochipID:        req.MicrochipID,
		IsActive:           req.IsActive,
		Notes:              req.Notes,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date of birth format, expected YYYY-MM-DD",
			})
			return
		}
		input.DateOfBirth = &dob
	}

	output, err := h.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		h.handleHorseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHorseResponse(output.Horse))
}

// Delete handles DELETE /horses/:id requests.
// A horse with billing history is deactivated rather than removed.
func (h *HorseController) Delete(ctx *gin.Context) {
	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	output, err := h.deleteUseCase.Execute(ctx.Request.Context(), horse.DeleteHorseInput{HorseID: horseID})
	if err != nil {
		h.handleHorseError(ctx, err)
		return
	}

	if output.Deactivated {
		ctx.JSON(http.StatusOK, dto.MessageResponse{
			Message: "Horse has billing records and was deactivated instead of deleted",
		})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SetOwners handles PUT /horses/:id/owners requests.
func (h *HorseController) SetOwners(ctx *gin.Context) {
	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	var req dto.SetOwnersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	owners, err := parseOwnershipAssignments(req.Owners)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid owner ID format",
		})
		return
	}

	output, err := h.setOwnersUseCase.Execute(ctx.Request.Context(), horse.SetOwnersInput{
		HorseID: horseID,
		Owners:  owners,
	})
	if err != nil {
		h.handleHorseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHorseResponse(output.Horse))
}

// AssignLocation handles POST /horses/:id/location requests.
func (h *HorseController) AssignLocation(ctx *gin.Context) {
	horseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid horse ID format",
		})
		return
	}

	var req dto.AssignLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid location ID format",
		})
		return
	}

	output, err := h.assignLocationUseCase.Execute(ctx.Request.Context(), horse.AssignLocationInput{
		HorseID:       horseID,
		LocationID:    locationID,
		ReasonForMove: req.ReasonForMove,
	})
	if err != nil {
		h.handleHorseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AssignLocationResponse{
		LocationEntryID: output.LocationEntryID.String(),
		LocationID:      output.LocationID.String(),
		ArrivalDate:     output.ArrivalDate,
	})
}

// parseOwnershipAssignments converts request ownership entries to use case input.
func parseOwnershipAssignments(entries []dto.OwnershipAssignmentRequest) ([]horse.OwnershipAssignment, error) {
	owners := make([]horse.OwnershipAssignment, len(entries))
	for i, e := range entries {
		ownerID, err := uuid.Parse(e.OwnerID)
		if err != nil {
			return nil, err
		}
		owners[i] = horse.OwnershipAssignment{
			OwnerID:    ownerID,
			Percentage: e.Percentage,
		}
	}
	return owners, nil
}

// handleHorseError handles horse errors and returns appropriate HTTP responses.
func (h *HorseController) handleHorseError(ctx *gin.Context, err error) {
	var horseErr *domainerror.HorseError
	if errors.As(err, &horseErr) {
		ctx.JSON(h.getStatusCodeForHorseError(horseErr.Code), dto.ErrorResponse{
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

	var locErr *domainerror.LocationError
	if errors.As(err, &locErr) {
		statusCode := http.StatusBadRequest
		if locErr.Code == domainerror.ErrCodeLocationNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: locErr.Message,
			Code:  string(locErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHorseError maps horse error codes to HTTP status codes.
func (h *HorseController) getStatusCodeForHorseError(code domainerror.HorseErrorCode) int {
	switch code {
	case domainerror.ErrCodeHorseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeHorseHasBillingRecords:
		return http.StatusConflict
	case domainerror.ErrCodeMissingHorseName,
		domainerror.ErrCodeDuplicateHorseOwner,
		domainerror.ErrCodeInvalidPercentage:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
