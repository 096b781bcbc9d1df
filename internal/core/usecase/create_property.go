package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, actor domain.Claims, draft domain.PropertyDraft) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"user_id":  actor.UserID,
	})

	ucLogger.Info("Use case started", nil)

	if actor.Role != domain.RoleSeller && actor.Role != domain.RoleAgent {
		ucLogger.Warn("Create rejected: role may not manage listings", port.Fields{"role": actor.Role})
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	property := propertyFromDraft(draft)
	property.ID = uuid.New()
	property.UserID = actor.UserID
	property.CreatedAt = now
	property.UpdatedAt = now
	if property.Status == "" {
		property.Status = domain.StatusActive
	}

	photos := photosFromURLs(property.ID, draft.PhotoURLs)

	if err := uc.storage.Create(ctx, property, photos); err != nil {
		ucLogger.Error("Storage failed to create property", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID})
	return property, nil
}

// propertyFromDraft copies the mutable listing fields out of a validated
// draft.
func propertyFromDraft(draft domain.PropertyDraft) *domain.Property {
	return &domain.Property{
		Title:            draft.Title,
		Description:      draft.Description,
		PropertyType:     draft.PropertyType,
		Status:           draft.Status,
		Country:          draft.Country,
		Region:           draft.Region,
		City:             draft.City,
		Address:          draft.Address,
		Latitude:         draft.Latitude,
		Longitude:        draft.Longitude,
		Price:            draft.Price,
		Bedrooms:         draft.Bedrooms,
		Bathrooms:        draft.Bathrooms,
		SquareFootage:    draft.SquareFootage,
		LandSize:         draft.LandSize,
		YearBuilt:        draft.YearBuilt,
		NaturalFeatures:  draft.NaturalFeatures,
		OutdoorAmenities: draft.OutdoorAmenities,
		IsFeatured:       draft.IsFeatured,
	}
}

// photosFromURLs builds photo rows in display order; the first url becomes
// the primary photo.
func photosFromURLs(propertyID uuid.UUID, urls []string) []domain.PropertyPhoto {
	photos := make([]domain.PropertyPhoto, 0, len(urls))
	for i, url := range urls {
		photos = append(photos, domain.PropertyPhoto{
			ID:         uuid.New(),
			PropertyID: propertyID,
			URL:        url,
			IsPrimary:  i == 0,
			SortOrder:  i,
		})
	}
	return photos
}
