package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type RemoveFavoriteUseCase struct {
	favoriteRepo port.FavoriteRepositoryPort
}

func NewRemoveFavoriteUseCase(favoriteRepo port.FavoriteRepositoryPort) *RemoveFavoriteUseCase {
	return &RemoveFavoriteUseCase{favoriteRepo: favoriteRepo}
}

func (uc *RemoveFavoriteUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveFavorite",
		"user_id":     userID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.favoriteRepo.Remove(ctx, userID, propertyID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
