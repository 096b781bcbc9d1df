package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// DashboardRepositoryPort computes identity-scoped rollups. Every query is
// bound to userID; cross-tenant rows must never leak into the counts.
type DashboardRepositoryPort interface {
	BuyerStats(ctx context.Context, userID uuid.UUID) (*domain.BuyerStats, error)
	SellerStats(ctx context.Context, userID uuid.UUID) (*domain.SellerStats, error)
}
