package domain

import "time"

// RecentActivityLimit bounds the activity feed on the dashboard.
const RecentActivityLimit = 10

// ActivityItem is one entry of the dashboard activity feed, most recent
// first.
type ActivityItem struct {
	Type      string
	Message   string
	CreatedAt time.Time
}

// BuyerStats is the dashboard projection for buyers. Recomputed per
// request, never persisted.
type BuyerStats struct {
	TotalFavorites     int
	TotalInquiriesSent int
	RecentActivity     []ActivityItem
}

// SellerStats is the dashboard projection for sellers and agents. All
// counts are scoped strictly to properties owned by the requesting user.
type SellerStats struct {
	TotalProperties        int
	ActiveListings         int
	TotalInquiriesReceived int
	PendingInquiries       int
	TotalViews             int
	TotalFavorites         int
	RecentActivity         []ActivityItem
}

// DashboardStats is the role-dependent stats payload: exactly one of the
// two projections is set.
type DashboardStats struct {
	Role   string
	Buyer  *BuyerStats
	Seller *SellerStats
}
