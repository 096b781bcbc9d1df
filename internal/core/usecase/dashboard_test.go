package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

func TestGetDashboardStatsRequiresIdentity(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := NewGetDashboardStatsUseCase(repo)

	_, err := uc.Execute(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Zero(t, repo.buyerCalls)
	assert.Zero(t, repo.sellerCalls)
}

func TestGetDashboardStatsByRole(t *testing.T) {
	tests := []struct {
		role       string
		wantSeller bool
	}{
		{domain.RoleBuyer, false},
		{domain.RoleSeller, true},
		{domain.RoleAgent, true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			repo := &fakeDashboardRepo{
				buyerStats:  &domain.BuyerStats{TotalFavorites: 4},
				sellerStats: &domain.SellerStats{TotalProperties: 3, ActiveListings: 2, PendingInquiries: 2},
			}
			uc := NewGetDashboardStatsUseCase(repo)

			stats, err := uc.Execute(context.Background(), &domain.Claims{UserID: uuid.New(), Role: tt.role})

			require.NoError(t, err)
			assert.Equal(t, tt.role, stats.Role)
			if tt.wantSeller {
				require.NotNil(t, stats.Seller)
				assert.Nil(t, stats.Buyer)
				assert.Equal(t, 3, stats.Seller.TotalProperties)
			} else {
				require.NotNil(t, stats.Buyer)
				assert.Nil(t, stats.Seller)
				assert.Equal(t, 4, stats.Buyer.TotalFavorites)
			}
		})
	}
}
