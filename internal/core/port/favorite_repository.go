package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// FavoriteRepositoryPort is the contract for the favorites storage adapter.
// Add and Remove are idempotent and keep the property's favorite_count in
// step.
type FavoriteRepositoryPort interface {
	Add(ctx context.Context, userID, propertyID uuid.UUID) error
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedResult, error)
	ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
