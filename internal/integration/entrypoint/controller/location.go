// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/usecase/location"
	domainerror "github.com/equivet/backend/internal/domain/error"
	"github.com/equivet/backend/internal/integration/entrypoint/dto"
)

// LocationController handles location endpoints.
type LocationController struct {
	createUseCase *location.CreateLocationUseCase
	listUseCase   *location.ListLocationsUseCase
	updateUseCase *location.UpdateLocationUseCase
	deleteUseCase *location.DeleteLocationUseCase
}

// NewLocationController creates a new location controller instance.
func NewLocationController(
	createUseCase *location.CreateLocationUseCase,
	listUseCase *location.ListLocationsUseCase,
	updateUseCase *location.UpdateLocationUseCase,
	deleteUseCase *location.DeleteLocationUseCase,
) *LocationController {
	return &LocationController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /locations requests.
func (l *LocationController) Create(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := l.createUseCase.Execute(ctx.Request.Context(), location.CreateLocationInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		l.handleLocationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLocationResponse(output.Location))
}

// List handles GET /locations requests.
func (l *LocationController) List(ctx *gin.Context) {
	input := location.ListLocationsInput{
		ActiveOnly: ctx.Query("include_inactive") != "true",
	}

	output, err := l.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve locations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationListResponse(output.Locations))
}

// Update handles PATCH /locations/:id requests.
func (l *LocationController) Update(ctx *gin.Context) {
	locationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid location ID format",
		})
		return
	}

	var req dto.UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := l.updateUseCase.Execute(ctx.Request.Context(), location.UpdateLocationInput{
		LocationID:  locationID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		l.handleLocationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationResponse(output.Location))
}

// Delete handles DELETE /locations/:id requests.
func (l *LocationController) Delete(ctx *gin.Context) {
	locationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid location ID format",
		})
		return
	}

	if err := l.deleteUseCase.Execute(ctx.Request.Context(), location.DeleteLocationInput{
		LocationID: locationID,
	}); err != nil {
		l.handleLocationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleLocationError handles location errors and returns appropriate HTTP responses.
func (l *LocationController) handleLocationError(ctx *gin.Context, err error) {
	var locErr *domainerror.LocationError
	if errors.As(err, &locErr) {
		ctx.JSON(l.getStatusCodeForLocationError(locErr.Code), dto.ErrorResponse{
			Error: locErr.Message,
			Code:  string(locErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLocationError maps location error codes to HTTP status codes.
func (l *LocationController) getStatusCodeForLocationError(code domainerror.LocationErrorCode) int {
	switch code {
	case domainerror.ErrCodeLocationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateLocationName,
		domainerror.ErrCodeLocationInUse:
		return http.StatusConflict
	case domainerror.ErrCodeMissingLocationName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
