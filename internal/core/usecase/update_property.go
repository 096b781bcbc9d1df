package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/constants"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
	events  port.EventPublisherPort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort, events port.EventPublisherPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage, events: events}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, actor domain.Claims, propertyID uuid.UUID, draft domain.PropertyDraft) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"user_id":     actor.UserID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.storage.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage failed to load property", err, nil)
		return nil, err
	}
	if existing.UserID != actor.UserID {
		ucLogger.Warn("Update rejected: actor does not own the listing", port.Fields{"owner_id": existing.UserID})
		return nil, domain.ErrForbidden
	}

	previousStatus := existing.Status

	property := propertyFromDraft(draft)
	property.ID = existing.ID
	property.UserID = existing.UserID
	property.ViewCount = existing.ViewCount
	property.InquiryCount = existing.InquiryCount
	property.FavoriteCount = existing.FavoriteCount
	property.CreatedAt = existing.CreatedAt
	property.UpdatedAt = time.Now().UTC()
	if property.Status == "" {
		property.Status = previousStatus
	}

	photos := photosFromURLs(property.ID, draft.PhotoURLs)

	if err := uc.storage.Update(ctx, property, photos); err != nil {
		ucLogger.Error("Storage failed to update property", err, nil)
		return nil, err
	}

	// No transition restrictions on the status lattice; a change is still
	// worth announcing to downstream consumers.
	if property.Status != previousStatus {
		event := map[string]interface{}{
			"property_id": property.ID,
			"old_status":  previousStatus,
			"new_status":  property.Status,
			"changed_at":  property.UpdatedAt,
		}
		if err := uc.events.Publish(ctx, constants.RoutingKeyPropertyStatusChanged, event); err != nil {
			ucLogger.Warn("Failed to publish status change event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
