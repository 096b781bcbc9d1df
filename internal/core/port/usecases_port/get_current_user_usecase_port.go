package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type GetCurrentUserUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}
