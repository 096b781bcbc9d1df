package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property statuses. The lifecycle is deliberately open: any status may be
// set to any other (see DESIGN.md).
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSold      = "sold"
	StatusPending   = "pending"
	StatusWithdrawn = "withdrawn"
)

// PropertyStatuses is the closed set accepted by filters and mutations.
var PropertyStatuses = []string{StatusActive, StatusInactive, StatusSold, StatusPending, StatusWithdrawn}

// PropertyTypes is the closed set of listing categories.
var PropertyTypes = []string{"house", "apartment", "villa", "cabin", "land", "farm", "commercial"}

// Property is the full listing record as stored.
type Property struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string

	PropertyType string
	Status       string

	Country string
	Region  string
	City    string
	Address string

	Latitude  *float64
	Longitude *float64
	Geohash   string

	Price         float64
	Bedrooms      int
	Bathrooms     float64
	SquareFootage *float64
	LandSize      *float64
	YearBuilt     *int

	NaturalFeatures  []string
	OutdoorAmenities []string

	IsFeatured bool

	// Denormalized counters, mutated by view recording, inquiry creation
	// and save/unsave. The search core only reads them.
	ViewCount     int
	InquiryCount  int
	FavoriteCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PropertyPhoto is one image attached to a listing.
type PropertyPhoto struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	URL        string
	IsPrimary  bool
	SortOrder  int
}

// OwnerSummary is the public slice of the owning user attached to search
// results and details.
type OwnerSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

// PropertyCard is a listing row decorated for list views: owner summary and
// primary photo are fetched via joins, never per row in a loop.
type PropertyCard struct {
	Property
	Owner        OwnerSummary
	PrimaryPhoto *string
}

// PropertyDetails is the single-listing view.
type PropertyDetails struct {
	Property
	Owner  OwnerSummary
	Photos []PropertyPhoto
}

// IsValidStatus reports whether s belongs to the closed status set.
// Comparison is case-sensitive.
func IsValidStatus(s string) bool {
	for _, v := range PropertyStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidPropertyType reports whether t belongs to the closed type set.
func IsValidPropertyType(t string) bool {
	for _, v := range PropertyTypes {
		if v == t {
			return true
		}
	}
	return false
}
