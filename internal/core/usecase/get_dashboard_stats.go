package usecase

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type GetDashboardStatsUseCase struct {
	dashboardRepo port.DashboardRepositoryPort
}

func NewGetDashboardStatsUseCase(dashboardRepo port.DashboardRepositoryPort) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{dashboardRepo: dashboardRepo}
}

// Execute returns the role-dependent rollup for the authenticated identity.
// A missing identity fails before any storage access.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, claims *domain.Claims) (*domain.DashboardStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	if claims == nil {
		logger.Warn("Dashboard stats requested without identity", port.Fields{"use_case": "GetDashboardStats"})
		return nil, domain.ErrUnauthenticated
	}

	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDashboardStats",
		"user_id":  claims.UserID,
		"role":     claims.Role,
	})
	ucLogger.Info("Use case started", nil)

	stats := &domain.DashboardStats{Role: claims.Role}

	switch claims.Role {
	case domain.RoleSeller, domain.RoleAgent:
		seller, err := uc.dashboardRepo.SellerStats(ctx, claims.UserID)
		if err != nil {
			ucLogger.Error("Repository failed to compute seller stats", err, nil)
			return nil, err
		}
		stats.Seller = seller
	default:
		buyer, err := uc.dashboardRepo.BuyerStats(ctx, claims.UserID)
		if err != nil {
			ucLogger.Error("Repository failed to compute buyer stats", err, nil)
			return nil, err
		}
		stats.Buyer = buyer
	}

	ucLogger.Info("Use case finished successfully", nil)
	return stats, nil
}
