package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type GetFavoritesUseCase struct {
	favoriteRepo port.FavoriteRepositoryPort
}

func NewGetFavoritesUseCase(favoriteRepo port.FavoriteRepositoryPort) *GetFavoritesUseCase {
	return &GetFavoritesUseCase{favoriteRepo: favoriteRepo}
}

func (uc *GetFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFavorites",
		"user_id":  userID,
		"limit":    limit,
		"offset":   offset,
	})

	result, err := uc.favoriteRepo.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Properties),
	})
	return result, nil
}
