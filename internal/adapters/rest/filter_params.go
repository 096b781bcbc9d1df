package rest

import (
	"net/url"
	"strconv"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// ParseSearchFilters normalizes raw query-string values into a typed
// PropertyFilter. Defaults apply only to absent parameters: an explicit
// offset=0 stays zero, and an absent status defaults to "active" while the
// value "all" disables the status filter entirely. Every invalid parameter
// is reported, not just the first one.
func ParseSearchFilters(values url.Values, rejectInvertedRanges bool) (domain.PropertyFilter, error) {
	verr := domain.NewValidationError()

	filter := domain.PropertyFilter{
		Limit:     domain.DefaultLimit,
		Offset:    domain.DefaultOffset,
		SortBy:    domain.DefaultSortBy,
		SortOrder: domain.DefaultSortOrder,
	}

	filter.Query = stringParam(values, "query")
	filter.Country = stringParam(values, "country")
	filter.Region = stringParam(values, "region")
	filter.City = stringParam(values, "city")
	filter.NaturalFeatures = stringParam(values, "natural_features")
	filter.OutdoorAmenities = stringParam(values, "outdoor_amenities")

	if v := stringParam(values, "property_type"); v != nil {
		if !domain.IsValidPropertyType(*v) {
			verr.Add("property_type", "unknown property type")
		} else {
			filter.PropertyType = v
		}
	}

	if v := stringParam(values, "status"); v != nil {
		if *v != domain.StatusFilterAll && !domain.IsValidStatus(*v) {
			verr.Add("status", "unknown status")
		} else {
			filter.Status = v
		}
	} else {
		status := domain.DefaultStatus
		filter.Status = &status
	}

	filter.PriceMin = floatParam(values, "price_min", verr)
	filter.PriceMax = floatParam(values, "price_max", verr)
	filter.SquareFootageMin = floatParam(values, "square_footage_min", verr)
	filter.SquareFootageMax = floatParam(values, "square_footage_max", verr)
	filter.LandSizeMin = floatParam(values, "land_size_min", verr)
	filter.LandSizeMax = floatParam(values, "land_size_max", verr)
	filter.BathroomsMin = floatParam(values, "bathrooms_min", verr)

	filter.BedroomsMin = intParam(values, "bedrooms_min", verr)
	filter.YearBuiltMin = intParam(values, "year_built_min", verr)
	filter.YearBuiltMax = intParam(values, "year_built_max", verr)

	if v := stringParam(values, "is_featured"); v != nil {
		parsed, err := strconv.ParseBool(*v)
		if err != nil {
			verr.Add("is_featured", "must be a boolean")
		} else {
			filter.IsFeatured = &parsed
		}
	}

	if v := stringParam(values, "limit"); v != nil {
		parsed, err := strconv.Atoi(*v)
		if err != nil || parsed <= 0 {
			verr.Add("limit", "must be a positive integer")
		} else {
			filter.Limit = parsed
		}
	}

	if v := stringParam(values, "offset"); v != nil {
		parsed, err := strconv.Atoi(*v)
		if err != nil || parsed < 0 {
			verr.Add("offset", "must be a non-negative integer")
		} else {
			filter.Offset = parsed
		}
	}

	if v := stringParam(values, "sort_by"); v != nil {
		if !isSortableColumn(*v) {
			verr.Add("sort_by", "unknown sort column")
		} else {
			filter.SortBy = *v
		}
	}

	if v := stringParam(values, "sort_order"); v != nil {
		if *v != domain.SortOrderAsc && *v != domain.SortOrderDesc {
			verr.Add("sort_order", "must be 'asc' or 'desc'")
		} else {
			filter.SortOrder = *v
		}
	}

	if rejectInvertedRanges {
		checkFloatRange(filter.PriceMin, filter.PriceMax, "price_min", verr)
		checkFloatRange(filter.SquareFootageMin, filter.SquareFootageMax, "square_footage_min", verr)
		checkFloatRange(filter.LandSizeMin, filter.LandSizeMax, "land_size_min", verr)
		if filter.YearBuiltMin != nil && filter.YearBuiltMax != nil && *filter.YearBuiltMin > *filter.YearBuiltMax {
			verr.Add("year_built_min", "minimum exceeds maximum")
		}
	}

	if verr.HasErrors() {
		return domain.PropertyFilter{}, verr
	}
	return filter, nil
}

// stringParam returns a pointer to the parameter value, or nil when it is
// absent or empty.
func stringParam(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func floatParam(values url.Values, key string, verr *domain.ValidationError) *float64 {
	v := stringParam(values, key)
	if v == nil {
		return nil
	}
	parsed, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		verr.Add(key, "must be a number")
		return nil
	}
	return &parsed
}

func intParam(values url.Values, key string, verr *domain.ValidationError) *int {
	v := stringParam(values, key)
	if v == nil {
		return nil
	}
	parsed, err := strconv.Atoi(*v)
	if err != nil {
		verr.Add(key, "must be an integer")
		return nil
	}
	return &parsed
}

func isSortableColumn(col string) bool {
	for _, v := range domain.SortableColumns {
		if v == col {
			return true
		}
	}
	return false
}

func checkFloatRange(min, max *float64, field string, verr *domain.ValidationError) {
	if min != nil && max != nil && *min > *max {
		verr.Add(field, "minimum exceeds maximum")
	}
}
