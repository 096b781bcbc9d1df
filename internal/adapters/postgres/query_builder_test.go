package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func TestApplyFiltersEmpty(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilter{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestApplyFiltersSingleField(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilter{Country: strPtr("Costa Rica")})

	assert.Equal(t, "WHERE p.country = $1", where)
	assert.Equal(t, []interface{}{"Costa Rica"}, args)
}

func TestApplyFiltersFreeTextSharesOnePlaceholder(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilter{Query: strPtr("ocean")})

	assert.Equal(t,
		"WHERE (p.title ILIKE $1 OR p.description ILIKE $1 OR p.city ILIKE $1 OR p.country ILIKE $1)",
		where)
	assert.Equal(t, []interface{}{"%ocean%"}, args)
}

func TestApplyFiltersCombinesIndependently(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilter{
		Country:  strPtr("Norway"),
		PriceMin: floatPtr(350000),
		PriceMax: floatPtr(450000),
	})

	assert.Equal(t, "WHERE p.country = $1 AND p.price >= $2 AND p.price <= $3", where)
	assert.Equal(t, []interface{}{"Norway", 350000.0, 450000.0}, args)
}

func TestApplyFiltersStatus(t *testing.T) {
	t.Run("explicit status becomes a predicate", func(t *testing.T) {
		where, args := applyFilters(domain.PropertyFilter{Status: strPtr(domain.StatusSold)})

		assert.Equal(t, "WHERE p.status = $1", where)
		assert.Equal(t, []interface{}{"sold"}, args)
	})

	t.Run("all disables the status predicate", func(t *testing.T) {
		where, args := applyFilters(domain.PropertyFilter{Status: strPtr(domain.StatusFilterAll)})

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}

func TestApplyFiltersRangesAreInclusive(t *testing.T) {
	where, _ := applyFilters(domain.PropertyFilter{
		YearBuiltMin: intPtr(1990),
		YearBuiltMax: intPtr(2020),
	})

	assert.Contains(t, where, "p.year_built >= $1")
	assert.Contains(t, where, "p.year_built <= $2")
}

func TestApplyFiltersOnlyMinBound(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilter{LandSizeMin: floatPtr(2.5)})

	assert.Equal(t, "WHERE p.land_size >= $1", where)
	assert.Equal(t, []interface{}{2.5}, args)
}

func TestApplyFiltersListContainment(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilter{NaturalFeatures: strPtr("waterfall")})

	assert.Equal(t, "WHERE p.natural_features ILIKE $1", where)
	assert.Equal(t, []interface{}{"%waterfall%"}, args)
}

func TestApplyFiltersArgNumberingStaysSequential(t *testing.T) {
	active := domain.StatusActive
	where, args := applyFilters(domain.PropertyFilter{
		Query:        strPtr("view"),
		Country:      strPtr("Iceland"),
		PropertyType: strPtr("cabin"),
		Status:       &active,
		PriceMax:     floatPtr(900000),
		BedroomsMin:  intPtr(2),
		IsFeatured:   boolPtr(true),
	})

	require.Len(t, args, 7)
	for i := 1; i <= 7; i++ {
		assert.Contains(t, where, "$"+string(rune('0'+i)))
	}
	// No gaps: $8 must not appear.
	assert.NotContains(t, where, "$8")
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"default descending", domain.SortByCreatedAt, domain.SortOrderDesc, "ORDER BY p.created_at DESC, p.id ASC"},
		{"price ascending", domain.SortByPrice, domain.SortOrderAsc, "ORDER BY p.price ASC, p.id ASC"},
		{"view count", domain.SortByViewCount, domain.SortOrderDesc, "ORDER BY p.view_count DESC, p.id ASC"},
		{"unknown column falls back", "sneaky", domain.SortOrderDesc, "ORDER BY p.created_at DESC, p.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.sortOrder))
		})
	}
}

func TestOrderClauseAlwaysHasTieBreak(t *testing.T) {
	for sortBy := range sortColumns {
		clause := orderClause(sortBy, domain.SortOrderAsc)
		assert.True(t, strings.HasSuffix(clause, ", p.id ASC"), clause)
	}
}
