package usecases_port

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, actor domain.Claims, draft domain.PropertyDraft) (*domain.Property, error)
}
