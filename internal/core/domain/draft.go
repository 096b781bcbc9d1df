package domain

// PropertyDraft is the validated mutation payload for creating or updating
// a listing. The REST boundary validates it against the embedded JSON
// schema before the use case sees it.
type PropertyDraft struct {
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

	Price         float64
	Bedrooms      int
	Bathrooms     float64
	SquareFootage *float64
	LandSize      *float64
	YearBuilt     *int

	NaturalFeatures  []string
	OutdoorAmenities []string

	IsFeatured bool

	// PhotoURLs in display order; the first one becomes the primary photo.
	PhotoURLs []string
}
