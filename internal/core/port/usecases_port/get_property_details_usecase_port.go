package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	// viewerID is nil for anonymous visitors; the view is recorded either
	// way.
	Execute(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) (*domain.PropertyDetails, error)
}
