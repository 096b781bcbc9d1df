package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type GetNotificationsUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedNotifications, error)
}
