package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type GetFavoriteIDsUseCase struct {
	favoriteRepo port.FavoriteRepositoryPort
}

func NewGetFavoriteIDsUseCase(favoriteRepo port.FavoriteRepositoryPort) *GetFavoriteIDsUseCase {
	return &GetFavoriteIDsUseCase{favoriteRepo: favoriteRepo}
}

func (uc *GetFavoriteIDsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFavoriteIDs",
		"user_id":  userID,
	})

	ids, err := uc.favoriteRepo.ListIDs(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	return ids, nil
}
