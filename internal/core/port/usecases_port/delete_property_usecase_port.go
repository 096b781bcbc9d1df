package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, actor domain.Claims, propertyID uuid.UUID) error
}
