package postgres

import (
	"fmt"
	"strings"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, column string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, column, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// AddFloatRange adds inclusive bounds; a nil bound adds no constraint on
// that side.
func (qb *queryBuilder) AddFloatRange(column string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", column, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", column, *max)
	}
}

func (qb *queryBuilder) AddIntRange(column string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", column, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", column, *max)
	}
}

// build returns the WHERE clause (or "" when no predicate applies) plus the
// positional args.
func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// applyFilters maps a normalized filter set to a conjunction of independent
// column predicates. Each absent field contributes nothing, so omitting one
// never affects the others.
func applyFilters(f domain.PropertyFilter) (string, []interface{}) {
	qb := newQueryBuilder()

	// Free-text query: substring match over title, description and
	// location columns. The placeholder is shared on purpose.
	if f.Query != nil {
		cond := fmt.Sprintf(
			"(p.title ILIKE $%d OR p.description ILIKE $%d OR p.city ILIKE $%d OR p.country ILIKE $%d)",
			qb.argID, qb.argID, qb.argID, qb.argID,
		)
		qb.conditions = append(qb.conditions, cond)
		qb.args = append(qb.args, "%"+*f.Query+"%")
		qb.argID++
	}

	// Exact-match location fields, case-sensitive.
	if f.Country != nil {
		qb.addCondition("%s = $%d", "p.country", *f.Country)
	}
	if f.Region != nil {
		qb.addCondition("%s = $%d", "p.region", *f.Region)
	}
	if f.City != nil {
		qb.addCondition("%s = $%d", "p.city", *f.City)
	}

	if f.PropertyType != nil {
		qb.addCondition("%s = $%d", "p.property_type", *f.PropertyType)
	}

	// Status defaults to "active" at the normalizer; "all" is the explicit
	// escape hatch that disables the status predicate.
	if f.Status != nil && *f.Status != domain.StatusFilterAll {
		qb.addCondition("%s = $%d", "p.status", *f.Status)
	}

	qb.AddFloatRange("p.price", f.PriceMin, f.PriceMax)

	if f.BedroomsMin != nil {
		qb.addCondition("%s >= $%d", "p.bedrooms", *f.BedroomsMin)
	}
	if f.BathroomsMin != nil {
		qb.addCondition("%s >= $%d", "p.bathrooms", *f.BathroomsMin)
	}

	qb.AddFloatRange("p.square_footage", f.SquareFootageMin, f.SquareFootageMax)
	qb.AddFloatRange("p.land_size", f.LandSizeMin, f.LandSizeMax)
	qb.AddIntRange("p.year_built", f.YearBuiltMin, f.YearBuiltMax)

	// Serialized-list columns: containment via substring match.
	if f.NaturalFeatures != nil {
		qb.addCondition("%s ILIKE $%d", "p.natural_features", "%"+*f.NaturalFeatures+"%")
	}
	if f.OutdoorAmenities != nil {
		qb.addCondition("%s ILIKE $%d", "p.outdoor_amenities", "%"+*f.OutdoorAmenities+"%")
	}

	if f.IsFeatured != nil {
		qb.addCondition("%s = $%d", "p.is_featured", *f.IsFeatured)
	}

	return qb.build()
}

// sortColumns restricts sort_by to indexed columns; anything else was
// rejected by the normalizer already.
var sortColumns = map[string]string{
	domain.SortByPrice:         "p.price",
	domain.SortByCreatedAt:     "p.created_at",
	domain.SortByViewCount:     "p.view_count",
	domain.SortByTitle:         "p.title",
	domain.SortBySquareFootage: "p.square_footage",
}

// orderClause builds a total ordering: sort key plus the property id as a
// deterministic tie-break, so identical requests always return identical
// pages.
func orderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = sortColumns[domain.DefaultSortBy]
	}
	direction := "DESC"
	if sortOrder == domain.SortOrderAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, p.id ASC", column, direction)
}
