// Package location contains the location management use cases.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/application/adapter"
	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// LocationOutput represents a location in use case outputs.
type LocationOutput struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toLocationOutput(l *entity.Location) *LocationOutput {
	return &LocationOutput{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// CreateLocationInput represents the input for location creation.
type CreateLocationInput struct {
	Name        string
	Description string
}

// CreateLocationOutput represents the output of location creation.
type CreateLocationOutput struct {
	Location *LocationOutput
}

// CreateLocationUseCase handles location creation.
type CreateLocationUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewCreateLocationUseCase creates a new CreateLocationUseCase instance.
func NewCreateLocationUseCase(locationRepo adapter.LocationRepository) *CreateLocationUseCase {
	return &CreateLocationUseCase{locationRepo: locationRepo}
}

// Execute creates the location. Names are unique.
func (uc *CreateLocationUseCase) Execute(ctx context.Context, input CreateLocationInput) (*CreateLocationOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewLocationError(
			domainerror.ErrCodeMissingLocationName,
			"location name is required",
			nil,
		)
	}

	taken, err := uc.locationRepo.ExistsByName(ctx, input.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check location name: %w", err)
	}
	if taken {
		return nil, domainerror.NewLocationError(
			domainerror.ErrCodeDuplicateLocationName,
			"location name already in use",
			domainerror.ErrDuplicateLocationName,
		)
	}

	location := entity.NewLocation(input.Name, input.Description)
	if err := uc.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	slog.Info("Location created", "locationID", location.ID, "name", location.Name)

	return &CreateLocationOutput{Location: toLocationOutput(location)}, nil
}

// UpdateLocationInput represents the input for updating a location. Nil
// pointers leave the stored value untouched.
type UpdateLocationInput struct {
	LocationID  uuid.UUID
	Name        *string
	Description *string
	IsActive    *bool
}

// UpdateLocationOutput represents the output of updating a location.
type UpdateLocationOutput struct {
	Location *LocationOutput
}

// UpdateLocationUseCase handles location updates.
type UpdateLocationUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewUpdateLocationUseCase creates a new UpdateLocationUseCase instance.
func NewUpdateLocationUseCase(locationRepo adapter.LocationRepository) *UpdateLocationUseCase {
	return &UpdateLocationUseCase{locationRepo: locationRepo}
}

// Execute applies the update.
func (uc *UpdateLocationUseCase) Execute(ctx context.Context, input UpdateLocationInput) (*UpdateLocationOutput, error) {
	location, err := uc.locationRepo.FindByID(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLocationNotFound) {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeLocationNotFound,
				"location not found",
				domainerror.ErrLocationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	if input.Name != nil && *input.Name != location.Name {
		if *input.Name == "" {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeMissingLocationName,
				"location name is required",
				nil,
			)
		}
		taken, err := uc.locationRepo.ExistsByName(ctx, *input.Name, &location.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check location name: %w", err)
		}
		if taken {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeDuplicateLocationName,
				"location name already in use",
				domainerror.ErrDuplicateLocationName,
			)
		}
		location.Name = *input.Name
	}
	if input.Description != nil {
		location.Description = *input.Description
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}
	location.UpdatedAt = time.Now().UTC()

	if err := uc.locationRepo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return &UpdateLocationOutput{Location: toLocationOutput(location)}, nil
}

// ListLocationsInput represents the input for listing locations.
type ListLocationsInput struct {
	ActiveOnly bool
}

// ListLocationsOutput represents the output of listing locations.
type ListLocationsOutput struct {
	Locations []*LocationOutput
}

// ListLocationsUseCase lists locations.
type ListLocationsUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewListLocationsUseCase creates a new ListLocationsUseCase instance.
func NewListLocationsUseCase(locationRepo adapter.LocationRepository) *ListLocationsUseCase {
	return &ListLocationsUseCase{locationRepo: locationRepo}
}

// Execute retrieves the locations, ordered by name.
func (uc *ListLocationsUseCase) Execute(ctx context.Context, input ListLocationsInput) (*ListLocationsOutput, error) {
	locations, err := uc.locationRepo.List(ctx, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	outputs := make([]*LocationOutput, len(locations))
	for i, l := range locations {
		outputs[i] = toLocationOutput(l)
	}
	return &ListLocationsOutput{Locations: outputs}, nil
}

// DeleteLocationInput represents the input for deleting a location.
type DeleteLocationInput struct {
	LocationID uuid.UUID
}

// DeleteLocationUseCase handles location deletion.
type DeleteLocationUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewDeleteLocationUseCase creates a new DeleteLocationUseCase instance.
func NewDeleteLocationUseCase(locationRepo adapter.LocationRepository) *DeleteLocationUseCase {
	return &DeleteLocationUseCase{locationRepo: locationRepo}
}

// Execute deletes the location. Deletion is blocked while any horse's
// current location entry points here.
func (uc *DeleteLocationUseCase) Execute(ctx context.Context, input DeleteLocationInput) error {
	if _, err := uc.locationRepo.FindByID(ctx, input.LocationID); err != nil {
		if errors.Is(err, domainerror.ErrLocationNotFound) {
			return domainerror.NewLocationError(
				domainerror.ErrCodeLocationNotFound,
				"location not found",
				domainerror.ErrLocationNotFound,
			)
		}
		return fmt.Errorf("failed to find location: %w", err)
	}

	count, err := uc.locationRepo.CountCurrentHorses(ctx, input.LocationID)
	if err != nil {
		return fmt.Errorf("failed to count housed horses: %w", err)
	}
	if count > 0 {
		return domainerror.NewLocationError(
			domainerror.ErrCodeLocationInUse,
			fmt.Sprintf("location currently houses %d horses", count),
			domainerror.ErrLocationInUse,
		)
	}

	if err := uc.locationRepo.Delete(ctx, input.LocationID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	slog.Info("Location deleted", "locationID", input.LocationID)
	return nil
}
