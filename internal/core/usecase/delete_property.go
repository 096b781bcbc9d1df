package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, actor domain.Claims, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"user_id":     actor.UserID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.storage.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage failed to load property", err, nil)
		return err
	}
	if existing.UserID != actor.UserID {
		ucLogger.Warn("Delete rejected: actor does not own the listing", port.Fields{"owner_id": existing.UserID})
		return domain.ErrForbidden
	}

	if err := uc.storage.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Storage failed to delete property", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
