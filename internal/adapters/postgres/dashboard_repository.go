package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// DashboardRepository computes role-scoped rollups. Every query below binds
// the acting user's id, so no cross-tenant rows can enter the counts.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) (*DashboardRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &DashboardRepository{pool: pool}, nil
}

func (r *DashboardRepository) BuyerStats(ctx context.Context, userID uuid.UUID) (*domain.BuyerStats, error) {
	stats := &domain.BuyerStats{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM favorites WHERE user_id = $1),
			(SELECT COUNT(*) FROM inquiries WHERE sender_id = $1)`
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&stats.TotalFavorites, &stats.TotalInquiriesSent); err != nil {
		return nil, fmt.Errorf("failed to compute buyer stats: %w", err)
	}

	activity, err := r.recentActivity(ctx, `
		SELECT 'favorite_added', 'Saved "' || p.title || '"', f.created_at
		FROM favorites f JOIN properties p ON p.id = f.property_id
		WHERE f.user_id = $1
		UNION ALL
		SELECT 'inquiry_sent', 'Sent an inquiry for "' || p.title || '"', i.created_at
		FROM inquiries i JOIN properties p ON p.id = i.property_id
		WHERE i.sender_id = $1
		ORDER BY 3 DESC
		LIMIT $2`, userID)
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = activity
	return stats, nil
}

func (r *DashboardRepository) SellerStats(ctx context.Context, userID uuid.UUID) (*domain.SellerStats, error) {
	stats := &domain.SellerStats{}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COALESCE(SUM(view_count), 0),
			COALESCE(SUM(favorite_count), 0)
		FROM properties
		WHERE user_id = $1`
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&stats.TotalProperties, &stats.ActiveListings, &stats.TotalViews, &stats.TotalFavorites,
	); err != nil {
		return nil, fmt.Errorf("failed to compute property stats: %w", err)
	}

	inquiryQuery := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'pending')
		FROM inquiries
		WHERE recipient_id = $1`
	if err := r.pool.QueryRow(ctx, inquiryQuery, userID).Scan(
		&stats.TotalInquiriesReceived, &stats.PendingInquiries,
	); err != nil {
		return nil, fmt.Errorf("failed to compute inquiry stats: %w", err)
	}

	activity, err := r.recentActivity(ctx, `
		SELECT 'inquiry_received', 'New inquiry for "' || p.title || '"', i.created_at
		FROM inquiries i JOIN properties p ON p.id = i.property_id
		WHERE i.recipient_id = $1
		UNION ALL
		SELECT 'property_viewed', '"' || p.title || '" was viewed', v.viewed_at
		FROM property_views v JOIN properties p ON p.id = v.property_id
		WHERE p.user_id = $1
		ORDER BY 3 DESC
		LIMIT $2`, userID)
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = activity
	return stats, nil
}

// recentActivity runs a bounded most-recent-first feed query shaped as
// (type, message, created_at).
func (r *DashboardRepository) recentActivity(ctx context.Context, query string, userID uuid.UUID) ([]domain.ActivityItem, error) {
	rows, err := r.pool.Query(ctx, query, userID, domain.RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ActivityItem, 0, domain.RecentActivityLimit)
	for rows.Next() {
		var item domain.ActivityItem
		if err := rows.Scan(&item.Type, &item.Message, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
