package domain

// Pagination and sorting defaults applied by the normalizer for absent
// fields only. Explicit values, including explicit zeros, are never
// overridden.
const (
	DefaultLimit     = 20
	DefaultOffset    = 0
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = SortOrderDesc
	DefaultStatus    = StatusActive
)

// Sort keys are restricted to indexed, sortable columns.
const (
	SortByPrice         = "price"
	SortByCreatedAt     = "created_at"
	SortByViewCount     = "view_count"
	SortByTitle         = "title"
	SortBySquareFootage = "square_footage"
)

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// SortableColumns is the closed sort_by set.
var SortableColumns = []string{SortByPrice, SortByCreatedAt, SortByViewCount, SortByTitle, SortBySquareFootage}

// StatusFilterAll is the explicit escape hatch for callers that want
// listings in every status. Absent status still defaults to "active".
const StatusFilterAll = "all"

// PropertyFilter is the normalized, typed search filter set. It is built
// once per request from query-string input and immutable afterwards.
// Pointer fields are nil when the caller omitted them, in which case they
// contribute no predicate.
type PropertyFilter struct {
	Query *string

	Country *string
	Region  *string
	City    *string

	PropertyType *string
	Status       *string

	PriceMin *float64
	PriceMax *float64

	BedroomsMin  *int
	BathroomsMin *float64

	SquareFootageMin *float64
	SquareFootageMax *float64

	LandSizeMin *float64
	LandSizeMax *float64

	YearBuiltMin *int
	YearBuiltMax *int

	NaturalFeatures  *string
	OutdoorAmenities *string

	IsFeatured *bool

	Limit  int
	Offset int

	SortBy    string
	SortOrder string
}

// PaginatedResult is the standard page-plus-count search response.
// len(Properties) <= Limit; TotalCount is computed without the pagination
// window.
type PaginatedResult struct {
	Properties []PropertyCard
	TotalCount int
}
