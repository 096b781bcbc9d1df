package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// memoryPropertyStorage filters, sorts and windows an in-memory fixture set
// with the same semantics as the SQL adapter: inclusive range bounds,
// case-sensitive equality, case-insensitive substring containment, a total
// order with the id as tie-break, and a total count computed before the
// pagination window.
type memoryPropertyStorage struct {
	*fakePropertyStorage
	cards []domain.PropertyCard
}

func newMemoryPropertyStorage(cards ...domain.PropertyCard) *memoryPropertyStorage {
	return &memoryPropertyStorage{fakePropertyStorage: newFakePropertyStorage(), cards: cards}
}

func (m *memoryPropertyStorage) FindWithFilters(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult, error) {
	var matched []domain.PropertyCard
	for _, card := range m.cards {
		if cardMatches(card, filter) {
			matched = append(matched, card)
		}
	}
	sortCards(matched, filter.SortBy, filter.SortOrder)

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < total {
		end = start + filter.Limit
	}

	page := make([]domain.PropertyCard, end-start)
	copy(page, matched[start:end])
	return &domain.PaginatedResult{Properties: page, TotalCount: total}, nil
}

func cardMatches(c domain.PropertyCard, f domain.PropertyFilter) bool {
	if f.Query != nil {
		haystack := strings.ToLower(c.Title + " " + c.Description + " " + c.City + " " + c.Country)
		if !strings.Contains(haystack, strings.ToLower(*f.Query)) {
			return false
		}
	}
	if f.Country != nil && c.Country != *f.Country {
		return false
	}
	if f.Region != nil && c.Region != *f.Region {
		return false
	}
	if f.City != nil && c.City != *f.City {
		return false
	}
	if f.PropertyType != nil && c.PropertyType != *f.PropertyType {
		return false
	}
	if f.Status != nil && *f.Status != domain.StatusFilterAll && c.Status != *f.Status {
		return false
	}
	if f.PriceMin != nil && c.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && c.Price > *f.PriceMax {
		return false
	}
	if f.BedroomsMin != nil && c.Bedrooms < *f.BedroomsMin {
		return false
	}
	if f.BathroomsMin != nil && c.Bathrooms < *f.BathroomsMin {
		return false
	}
	if !floatInRange(c.SquareFootage, f.SquareFootageMin, f.SquareFootageMax) {
		return false
	}
	if !floatInRange(c.LandSize, f.LandSizeMin, f.LandSizeMax) {
		return false
	}
	if !intInRange(c.YearBuilt, f.YearBuiltMin, f.YearBuiltMax) {
		return false
	}
	if f.NaturalFeatures != nil && !listContains(c.NaturalFeatures, *f.NaturalFeatures) {
		return false
	}
	if f.OutdoorAmenities != nil && !listContains(c.OutdoorAmenities, *f.OutdoorAmenities) {
		return false
	}
	if f.IsFeatured != nil && c.IsFeatured != *f.IsFeatured {
		return false
	}
	return true
}

// A NULL column never satisfies a bound, same as in SQL.
func floatInRange(v *float64, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if v == nil {
		return false
	}
	if min != nil && *v < *min {
		return false
	}
	if max != nil && *v > *max {
		return false
	}
	return true
}

func intInRange(v *int, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}
	if v == nil {
		return false
	}
	if min != nil && *v < *min {
		return false
	}
	if max != nil && *v > *max {
		return false
	}
	return true
}

func listContains(values []string, needle string) bool {
	joined := strings.ToLower(strings.Join(values, ","))
	return strings.Contains(joined, strings.ToLower(needle))
}

func sortCards(cards []domain.PropertyCard, sortBy, sortOrder string) {
	asc := sortOrder == domain.SortOrderAsc
	sort.Slice(cards, func(i, j int) bool {
		cmp := compareCards(cards[i], cards[j], sortBy)
		if cmp != 0 {
			if asc {
				return cmp < 0
			}
			return cmp > 0
		}
		return cards[i].ID.String() < cards[j].ID.String()
	})
}

func compareCards(a, b domain.PropertyCard, sortBy string) int {
	switch sortBy {
	case domain.SortByPrice:
		return compareFloat(a.Price, b.Price)
	case domain.SortByViewCount:
		return a.ViewCount - b.ViewCount
	case domain.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case domain.SortBySquareFootage:
		return compareFloat(derefFloat(a.SquareFootage), derefFloat(b.SquareFootage))
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func searchFixture(title, country string, price float64) domain.PropertyCard {
	return domain.PropertyCard{Property: domain.Property{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Title:        title,
		PropertyType: "house",
		Status:       domain.StatusActive,
		Country:      country,
		Price:        price,
		CreatedAt:    time.Now(),
	}}
}

func defaultedFilter() domain.PropertyFilter {
	return domain.PropertyFilter{
		Limit:     domain.DefaultLimit,
		Offset:    domain.DefaultOffset,
		SortBy:    domain.DefaultSortBy,
		SortOrder: domain.DefaultSortOrder,
	}
}

func TestSearchPriceRangeReturnsOnlyBoundedRows(t *testing.T) {
	storage := newMemoryPropertyStorage(
		searchFixture("Beach shack", "Portugal", 100000),
		searchFixture("Hill farm", "Portugal", 350000),
		searchFixture("River lodge", "Portugal", 450000),
		searchFixture("Cliff villa", "Portugal", 600000),
	)
	uc := NewSearchPropertiesUseCase(storage)

	min, max := 300000.0, 500000.0
	filter := defaultedFilter()
	filter.PriceMin = &min
	filter.PriceMax = &max
	filter.SortBy = domain.SortByPrice
	filter.SortOrder = domain.SortOrderAsc

	result, err := uc.Execute(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	require.Len(t, result.Properties, 2)
	assert.Equal(t, 350000.0, result.Properties[0].Price)
	assert.Equal(t, 450000.0, result.Properties[1].Price)
}

func TestSearchSortByPriceAscending(t *testing.T) {
	storage := newMemoryPropertyStorage(
		searchFixture("Ridge house", "Chile", 500000),
		searchFixture("Valley house", "Chile", 100000),
		searchFixture("Lake house", "Chile", 300000),
	)
	uc := NewSearchPropertiesUseCase(storage)

	filter := defaultedFilter()
	filter.SortBy = domain.SortByPrice
	filter.SortOrder = domain.SortOrderAsc

	result, err := uc.Execute(context.Background(), filter)

	require.NoError(t, err)
	var prices []float64
	for _, p := range result.Properties {
		prices = append(prices, p.Price)
	}
	assert.Equal(t, []float64{100000, 300000, 500000}, prices)
}

func TestSearchCountryFilterMatchesExactlyOne(t *testing.T) {
	storage := newMemoryPropertyStorage(
		searchFixture("Jungle lot", "Costa Rica", 250000),
		searchFixture("Fjord cabin", "Norway", 300000),
		searchFixture("Alp chalet", "Switzerland", 900000),
		searchFixture("Vineyard", "Chile", 450000),
		searchFixture("Coast house", "Portugal", 380000),
	)
	uc := NewSearchPropertiesUseCase(storage)

	country := "Costa Rica"
	filter := defaultedFilter()
	filter.Country = &country

	result, err := uc.Execute(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, "Costa Rica", result.Properties[0].Country)
}

func TestSearchOmittedFieldsAddNoConstraint(t *testing.T) {
	storage := newMemoryPropertyStorage(
		searchFixture("One", "Norway", 100000),
		searchFixture("Two", "Chile", 200000),
		searchFixture("Three", "Chile", 300000),
	)
	uc := NewSearchPropertiesUseCase(storage)

	// A filter with every optional field omitted matches everything.
	result, err := uc.Execute(context.Background(), defaultedFilter())
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)

	// Adding one field must only constrain on that field.
	country := "Chile"
	filter := defaultedFilter()
	filter.Country = &country
	result, err = uc.Execute(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
}

func TestSearchPaginationCompleteness(t *testing.T) {
	cards := make([]domain.PropertyCard, 0, 7)
	for i := 0; i < 7; i++ {
		cards = append(cards, searchFixture(fmt.Sprintf("Listing %d", i), "Spain", float64(100000*(i+1))))
	}
	storage := newMemoryPropertyStorage(cards...)
	uc := NewSearchPropertiesUseCase(storage)

	const limit = 3
	seen := make(map[uuid.UUID]bool)
	for offset := 0; ; offset += limit {
		filter := defaultedFilter()
		filter.Limit = limit
		filter.Offset = offset

		result, err := uc.Execute(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, 7, result.TotalCount)
		assert.LessOrEqual(t, len(result.Properties), limit)
		for _, p := range result.Properties {
			assert.False(t, seen[p.ID], "id %s appeared on more than one page", p.ID)
			seen[p.ID] = true
		}
		if offset+limit >= result.TotalCount {
			break
		}
	}
	assert.Len(t, seen, 7)
}

func TestSearchIdenticalRequestsReturnIdenticalPages(t *testing.T) {
	// Equal sort keys force the ordering onto the id tie-break.
	cards := make([]domain.PropertyCard, 0, 5)
	for i := 0; i < 5; i++ {
		cards = append(cards, searchFixture(fmt.Sprintf("Plot %d", i), "Iceland", 200000))
	}
	storage := newMemoryPropertyStorage(cards...)
	uc := NewSearchPropertiesUseCase(storage)

	filter := defaultedFilter()
	filter.Limit = 2
	filter.Offset = 1
	filter.SortBy = domain.SortByPrice

	pageIDs := func() []uuid.UUID {
		result, err := uc.Execute(context.Background(), filter)
		require.NoError(t, err)
		ids := make([]uuid.UUID, 0, len(result.Properties))
		for _, p := range result.Properties {
			ids = append(ids, p.ID)
		}
		return ids
	}

	first := pageIDs()
	second := pageIDs()
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestSearchPaginationBoundaries(t *testing.T) {
	storage := newMemoryPropertyStorage(
		searchFixture("First", "Spain", 100000),
		searchFixture("Second", "Spain", 200000),
		searchFixture("Third", "Spain", 300000),
	)
	uc := NewSearchPropertiesUseCase(storage)

	t.Run("limit one returns at most one item", func(t *testing.T) {
		filter := defaultedFilter()
		filter.Limit = 1

		result, err := uc.Execute(context.Background(), filter)
		require.NoError(t, err)
		assert.Len(t, result.Properties, 1)
		assert.Equal(t, 3, result.TotalCount)
	})

	t.Run("offset at total count returns empty page", func(t *testing.T) {
		filter := defaultedFilter()
		filter.Offset = 3

		result, err := uc.Execute(context.Background(), filter)
		require.NoError(t, err)
		assert.Empty(t, result.Properties)
		assert.Equal(t, 3, result.TotalCount)
	})

	t.Run("offset past total count returns empty page", func(t *testing.T) {
		filter := defaultedFilter()
		filter.Offset = 10

		result, err := uc.Execute(context.Background(), filter)
		require.NoError(t, err)
		assert.Empty(t, result.Properties)
		assert.Equal(t, 3, result.TotalCount)
	})
}
