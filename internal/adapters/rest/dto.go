package rest

import (
	"time"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// FieldErrorResponse is one entry of a validation failure.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []FieldErrorResponse `json:"fields"`
}

// --- requests ---

type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PropertyRequest is the mutation payload shared by create and update.
type PropertyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	PropertyType string  `json:"property_type"`
	Status       *string `json:"status"`

	Price float64 `json:"price"`

	Country string  `json:"country"`
	Region  string  `json:"region"`
	City    string  `json:"city"`
	Address *string `json:"address"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	SquareFootage *float64 `json:"square_footage"`
	LandSize      *float64 `json:"land_size"`
	YearBuilt     *int     `json:"year_built"`

	NaturalFeatures  []string `json:"natural_features"`
	OutdoorAmenities []string `json:"outdoor_amenities"`

	IsFeatured *bool `json:"is_featured"`

	PhotoURLs []string `json:"photo_urls"`
}

// ToDraft converts the request body into the domain mutation payload.
func (r PropertyRequest) ToDraft() domain.PropertyDraft {
	draft := domain.PropertyDraft{
		Title:            r.Title,
		Description:      r.Description,
		PropertyType:     r.PropertyType,
		Country:          r.Country,
		Region:           r.Region,
		City:             r.City,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Price:            r.Price,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		SquareFootage:    r.SquareFootage,
		LandSize:         r.LandSize,
		YearBuilt:        r.YearBuilt,
		NaturalFeatures:  r.NaturalFeatures,
		OutdoorAmenities: r.OutdoorAmenities,
		PhotoURLs:        r.PhotoURLs,
	}
	if r.Status != nil {
		draft.Status = *r.Status
	}
	if r.Address != nil {
		draft.Address = *r.Address
	}
	if r.IsFeatured != nil {
		draft.IsFeatured = *r.IsFeatured
	}
	return draft
}

type CreateInquiryRequestBody struct {
	PropertyID string `json:"property_id"`
	Message    string `json:"message"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

type AddFavoriteRequest struct {
	PropertyID string `json:"property_id"`
}

// --- responses ---

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type OwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type PhotoResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// PropertyCardResponse is a listing row for list views.
type PropertyCardResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	PropertyType string `json:"property_type"`
	Status       string `json:"status"`

	Price float64 `json:"price"`

	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
	Address string `json:"address,omitempty"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	SquareFootage *float64 `json:"square_footage"`
	LandSize      *float64 `json:"land_size"`
	YearBuilt     *int     `json:"year_built"`

	NaturalFeatures  []string `json:"natural_features"`
	OutdoorAmenities []string `json:"outdoor_amenities"`

	IsFeatured bool `json:"is_featured"`

	ViewCount     int `json:"view_count"`
	InquiryCount  int `json:"inquiry_count"`
	FavoriteCount int `json:"favorite_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner        OwnerResponse `json:"owner"`
	PrimaryPhoto *string       `json:"primary_photo"`
}

func newPropertyFields(p domain.Property) PropertyCardResponse {
	return PropertyCardResponse{
		ID:               p.ID.String(),
		UserID:           p.UserID.String(),
		Title:            p.Title,
		Description:      p.Description,
		PropertyType:     p.PropertyType,
		Status:           p.Status,
		Price:            p.Price,
		Country:          p.Country,
		Region:           p.Region,
		City:             p.City,
		Address:          p.Address,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		SquareFootage:    p.SquareFootage,
		LandSize:         p.LandSize,
		YearBuilt:        p.YearBuilt,
		NaturalFeatures:  p.NaturalFeatures,
		OutdoorAmenities: p.OutdoorAmenities,
		IsFeatured:       p.IsFeatured,
		ViewCount:        p.ViewCount,
		InquiryCount:     p.InquiryCount,
		FavoriteCount:    p.FavoriteCount,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func NewPropertyCardResponse(card domain.PropertyCard) PropertyCardResponse {
	resp := newPropertyFields(card.Property)
	resp.Owner = OwnerResponse{
		ID:    card.Owner.ID.String(),
		Name:  card.Owner.Name,
		Email: card.Owner.Email,
		Role:  card.Owner.Role,
	}
	resp.PrimaryPhoto = card.PrimaryPhoto
	return resp
}

// PaginatedPropertiesResponse is the search and favorites list envelope.
type PaginatedPropertiesResponse struct {
	Properties []PropertyCardResponse `json:"properties"`
	TotalCount int                    `json:"total_count"`
}

func NewPaginatedPropertiesResponse(result *domain.PaginatedResult) PaginatedPropertiesResponse {
	properties := make([]PropertyCardResponse, 0, len(result.Properties))
	for _, card := range result.Properties {
		properties = append(properties, NewPropertyCardResponse(card))
	}
	return PaginatedPropertiesResponse{
		Properties: properties,
		TotalCount: result.TotalCount,
	}
}

// PropertyDetailsResponse is the single-listing view with the full photo set.
type PropertyDetailsResponse struct {
	PropertyCardResponse
	Photos []PhotoResponse `json:"photos"`
}

func NewPropertyDetailsResponse(details *domain.PropertyDetails) PropertyDetailsResponse {
	resp := PropertyDetailsResponse{
		PropertyCardResponse: newPropertyFields(details.Property),
		Photos:               make([]PhotoResponse, 0, len(details.Photos)),
	}
	resp.Owner = OwnerResponse{
		ID:    details.Owner.ID.String(),
		Name:  details.Owner.Name,
		Email: details.Owner.Email,
		Role:  details.Owner.Role,
	}
	for _, photo := range details.Photos {
		resp.Photos = append(resp.Photos, PhotoResponse{
			ID:        photo.ID.String(),
			URL:       photo.URL,
			IsPrimary: photo.IsPrimary,
			SortOrder: photo.SortOrder,
		})
		if photo.IsPrimary {
			url := photo.URL
			resp.PrimaryPhoto = &url
		}
	}
	return resp
}

type InquiryResponse struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id"`
	SenderID      string    `json:"sender_id"`
	RecipientID   string    `json:"recipient_id"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	PropertyTitle string    `json:"property_title,omitempty"`
	SenderName    string    `json:"sender_name,omitempty"`
	RecipientName string    `json:"recipient_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewInquiryResponse(inq *domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:          inq.ID.String(),
		PropertyID:  inq.PropertyID.String(),
		SenderID:    inq.SenderID.String(),
		RecipientID: inq.RecipientID.String(),
		Message:     inq.Message,
		Status:      inq.Status,
		CreatedAt:   inq.CreatedAt,
		UpdatedAt:   inq.UpdatedAt,
	}
}

type PaginatedInquiriesResponse struct {
	Inquiries  []InquiryResponse `json:"inquiries"`
	TotalCount int               `json:"total_count"`
}

func NewPaginatedInquiriesResponse(result *domain.PaginatedInquiries) PaginatedInquiriesResponse {
	inquiries := make([]InquiryResponse, 0, len(result.Inquiries))
	for _, inq := range result.Inquiries {
		resp := NewInquiryResponse(&inq.Inquiry)
		resp.PropertyTitle = inq.PropertyTitle
		resp.SenderName = inq.SenderName
		resp.RecipientName = inq.RecipientName
		inquiries = append(inquiries, resp)
	}
	return PaginatedInquiriesResponse{
		Inquiries:  inquiries,
		TotalCount: result.TotalCount,
	}
}

type NotificationResponse struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Message           string    `json:"message"`
	RelatedPropertyID *string   `json:"related_property_id"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
}

type PaginatedNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalCount    int                    `json:"total_count"`
	UnreadCount   int                    `json:"unread_count"`
}

func NewPaginatedNotificationsResponse(result *domain.PaginatedNotifications) PaginatedNotificationsResponse {
	notifications := make([]NotificationResponse, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		resp := NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.RelatedPropertyID != nil {
			id := n.RelatedPropertyID.String()
			resp.RelatedPropertyID = &id
		}
		notifications = append(notifications, resp)
	}
	return PaginatedNotificationsResponse{
		Notifications: notifications,
		TotalCount:    result.TotalCount,
		UnreadCount:   result.UnreadCount,
	}
}

type ActivityItemResponse struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type BuyerStatsResponse struct {
	TotalFavorites     int                    `json:"total_favorites"`
	TotalInquiriesSent int                    `json:"total_inquiries_sent"`
	RecentActivity     []ActivityItemResponse `json:"recent_activity"`
}

type SellerStatsResponse struct {
	TotalProperties        int                    `json:"total_properties"`
	ActiveListings         int                    `json:"active_listings"`
	TotalInquiriesReceived int                    `json:"total_inquiries_received"`
	PendingInquiries       int                    `json:"pending_inquiries"`
	TotalViews             int                    `json:"total_views"`
	TotalFavorites         int                    `json:"total_favorites"`
	RecentActivity         []ActivityItemResponse `json:"recent_activity"`
}

// DashboardStatsResponse carries exactly one of the two projections
// depending on the requester's role.
type DashboardStatsResponse struct {
	Role   string               `json:"role"`
	Buyer  *BuyerStatsResponse  `json:"buyer,omitempty"`
	Seller *SellerStatsResponse `json:"seller,omitempty"`
}

func newActivityItems(items []domain.ActivityItem) []ActivityItemResponse {
	activity := make([]ActivityItemResponse, 0, len(items))
	for _, item := range items {
		activity = append(activity, ActivityItemResponse{
			Type:      item.Type,
			Message:   item.Message,
			CreatedAt: item.CreatedAt,
		})
	}
	return activity
}

func NewDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	resp := DashboardStatsResponse{Role: stats.Role}
	if stats.Buyer != nil {
		resp.Buyer = &BuyerStatsResponse{
			TotalFavorites:     stats.Buyer.TotalFavorites,
			TotalInquiriesSent: stats.Buyer.TotalInquiriesSent,
			RecentActivity:     newActivityItems(stats.Buyer.RecentActivity),
		}
	}
	if stats.Seller != nil {
		resp.Seller = &SellerStatsResponse{
			TotalProperties:        stats.Seller.TotalProperties,
			ActiveListings:         stats.Seller.ActiveListings,
			TotalInquiriesReceived: stats.Seller.TotalInquiriesReceived,
			PendingInquiries:       stats.Seller.PendingInquiries,
			TotalViews:             stats.Seller.TotalViews,
			TotalFavorites:         stats.Seller.TotalFavorites,
			RecentActivity:         newActivityItems(stats.Seller.RecentActivity),
		}
	}
	return resp
}

type FavoriteIDsResponse struct {
	PropertyIDs []string `json:"property_ids"`
}
