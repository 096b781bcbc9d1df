package rest

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

func TestParseSearchFiltersDefaults(t *testing.T) {
	filter, err := ParseSearchFilters(url.Values{}, false)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLimit, filter.Limit)
	assert.Equal(t, domain.DefaultOffset, filter.Offset)
	assert.Equal(t, domain.DefaultSortBy, filter.SortBy)
	assert.Equal(t, domain.DefaultSortOrder, filter.SortOrder)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusActive, *filter.Status)

	assert.Nil(t, filter.Query)
	assert.Nil(t, filter.Country)
	assert.Nil(t, filter.PriceMin)
	assert.Nil(t, filter.IsFeatured)
}

func TestParseSearchFiltersExplicitZeroOffsetIsPreserved(t *testing.T) {
	values := url.Values{"offset": {"0"}}

	filter, err := ParseSearchFilters(values, false)

	require.NoError(t, err)
	assert.Equal(t, 0, filter.Offset)
}

func TestParseSearchFiltersCoercion(t *testing.T) {
	values := url.Values{
		"query":       {"mountain"},
		"country":     {"Costa Rica"},
		"price_min":   {"350000"},
		"price_max":   {"450000.50"},
		"bedrooms_min": {"3"},
		"is_featured": {"true"},
		"limit":       {"5"},
		"offset":      {"10"},
		"sort_by":     {"price"},
		"sort_order":  {"asc"},
	}

	filter, err := ParseSearchFilters(values, false)

	require.NoError(t, err)
	assert.Equal(t, "mountain", *filter.Query)
	assert.Equal(t, "Costa Rica", *filter.Country)
	assert.Equal(t, 350000.0, *filter.PriceMin)
	assert.Equal(t, 450000.50, *filter.PriceMax)
	assert.Equal(t, 3, *filter.BedroomsMin)
	assert.True(t, *filter.IsFeatured)
	assert.Equal(t, 5, filter.Limit)
	assert.Equal(t, 10, filter.Offset)
	assert.Equal(t, domain.SortByPrice, filter.SortBy)
	assert.Equal(t, domain.SortOrderAsc, filter.SortOrder)
}

func TestParseSearchFiltersEmptyValuesAreAbsent(t *testing.T) {
	values := url.Values{"country": {""}, "price_min": {""}}

	filter, err := ParseSearchFilters(values, false)

	require.NoError(t, err)
	assert.Nil(t, filter.Country)
	assert.Nil(t, filter.PriceMin)
}

func TestParseSearchFiltersStatusAll(t *testing.T) {
	values := url.Values{"status": {"all"}}

	filter, err := ParseSearchFilters(values, false)

	require.NoError(t, err)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusFilterAll, *filter.Status)
}

func TestParseSearchFiltersClosedEnums(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"unknown property type", "property_type", "castle", "property_type"},
		{"unknown status", "status", "archived", "status"},
		{"case sensitive status", "status", "Active", "status"},
		{"unknown sort column", "sort_by", "bribe_amount", "sort_by"},
		{"unknown sort order", "sort_order", "sideways", "sort_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSearchFilters(url.Values{tt.key: {tt.value}}, false)

			verr, ok := domain.AsValidationError(err)
			require.True(t, ok)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestParseSearchFiltersBadCoercions(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"price_min", "cheap"},
		{"bedrooms_min", "three"},
		{"bedrooms_min", "2.5"},
		{"year_built_max", "recent"},
		{"is_featured", "yes please"},
		{"limit", "0"},
		{"limit", "-1"},
		{"offset", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			_, err := ParseSearchFilters(url.Values{tt.key: {tt.value}}, false)

			verr, ok := domain.AsValidationError(err)
			require.True(t, ok)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.key, verr.Fields[0].Field)
		})
	}
}

func TestParseSearchFiltersReportsEveryBadField(t *testing.T) {
	values := url.Values{
		"price_min":    {"abc"},
		"bedrooms_min": {"x"},
		"sort_order":   {"diagonal"},
	}

	_, err := ParseSearchFilters(values, false)

	verr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 3)

	fields := make(map[string]bool)
	for _, fe := range verr.Fields {
		fields[fe.Field] = true
	}
	assert.True(t, fields["price_min"])
	assert.True(t, fields["bedrooms_min"])
	assert.True(t, fields["sort_order"])
}

func TestParseSearchFiltersInvertedRanges(t *testing.T) {
	values := url.Values{
		"price_min": {"500000"},
		"price_max": {"100000"},
	}

	t.Run("permissive by default", func(t *testing.T) {
		filter, err := ParseSearchFilters(values, false)

		require.NoError(t, err)
		assert.Equal(t, 500000.0, *filter.PriceMin)
		assert.Equal(t, 100000.0, *filter.PriceMax)
	})

	t.Run("rejected when configured", func(t *testing.T) {
		_, err := ParseSearchFilters(values, true)

		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "price_min", verr.Fields[0].Field)
	})

	t.Run("valid range passes either way", func(t *testing.T) {
		_, err := ParseSearchFilters(url.Values{
			"price_min": {"100000"},
			"price_max": {"500000"},
		}, true)

		assert.NoError(t, err)
	})
}

func TestParseSearchFiltersYearBuiltInvertedRange(t *testing.T) {
	values := url.Values{
		"year_built_min": {"2020"},
		"year_built_max": {"1990"},
	}

	_, err := ParseSearchFilters(values, true)

	verr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "year_built_min", verr.Fields[0].Field)
}
