package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type RemoveFavoriteUseCase interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID) error
}
