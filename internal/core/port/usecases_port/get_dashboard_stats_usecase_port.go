package usecases_port

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type GetDashboardStatsUseCase interface {
	// claims is nil for unauthenticated requests; the use case must fail
	// with domain.ErrUnauthenticated before touching storage.
	Execute(ctx context.Context, claims *domain.Claims) (*domain.DashboardStats, error)
}
