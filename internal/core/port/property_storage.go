package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// PropertyStoragePort is the contract for the property storage adapter.
type PropertyStoragePort interface {
	// FindWithFilters executes a normalized filter set and returns one page
	// plus the window-independent total count.
	FindWithFilters(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult, error)

	GetByID(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error)
	GetDetails(ctx context.Context, propertyID uuid.UUID) (*domain.PropertyDetails, error)

	Create(ctx context.Context, property *domain.Property, photos []domain.PropertyPhoto) error
	Update(ctx context.Context, property *domain.Property, photos []domain.PropertyPhoto) error
	Delete(ctx context.Context, propertyID uuid.UUID) error

	// RecordView inserts a view row and bumps the denormalized view_count.
	RecordView(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) error
}
