package usecases_port

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult, error)
}
