package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type AddFavoriteUseCase struct {
	favoriteRepo port.FavoriteRepositoryPort
	storage      port.PropertyStoragePort
}

func NewAddFavoriteUseCase(favoriteRepo port.FavoriteRepositoryPort, storage port.PropertyStoragePort) *AddFavoriteUseCase {
	return &AddFavoriteUseCase{favoriteRepo: favoriteRepo, storage: storage}
}

func (uc *AddFavoriteUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddFavorite",
		"user_id":     userID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	// Ensure the listing exists before saving; the repo call itself is
	// idempotent.
	if _, err := uc.storage.GetByID(ctx, propertyID); err != nil {
		ucLogger.Error("Storage failed to load property", err, nil)
		return err
	}

	if err := uc.favoriteRepo.Add(ctx, userID, propertyID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
