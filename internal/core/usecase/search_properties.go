package usecase

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type SearchPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewSearchPropertiesUseCase(storage port.PropertyStoragePort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{storage: storage}
}

// Execute runs a normalized filter set against storage. The filter is
// already validated by the boundary; this layer only delegates and logs.
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SearchProperties",
		"limit":      filter.Limit,
		"offset":     filter.Offset,
		"sort_by":    filter.SortBy,
		"sort_order": filter.SortOrder,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.FindWithFilters(ctx, filter)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Properties),
	})
	return result, nil
}
