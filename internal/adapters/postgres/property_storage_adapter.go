package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

// geohashPrecision 8 gives ~±19m cells, enough for map clustering.
const geohashPrecision = 8

// propertyCardColumns is the shared projection for list views: the full
// listing row, the owner summary and the primary photo, fetched via joins
// rather than per-row lookups.
const propertyCardColumns = `
	p.id, p.user_id, p.title, p.description, p.property_type, p.status,
	p.country, p.region, p.city, p.address, p.latitude, p.longitude, p.geohash,
	p.price, p.bedrooms, p.bathrooms, p.square_footage, p.land_size, p.year_built,
	p.natural_features, p.outdoor_amenities, p.is_featured,
	p.view_count, p.inquiry_count, p.favorite_count, p.created_at, p.updated_at,
	u.name, u.email, u.role, ph.url`

const propertyCardJoins = `
	JOIN users u ON u.id = p.user_id
	LEFT JOIN LATERAL (
		SELECT url FROM property_photos
		WHERE property_id = p.id
		ORDER BY is_primary DESC, sort_order ASC
		LIMIT 1
	) ph ON true`

type PropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPropertyStorageAdapter(pool *pgxpool.Pool) (*PropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStorageAdapter{pool: pool}, nil
}

// FindWithFilters executes the predicate, orders totally and returns one
// page plus the window-independent count. Count and page run in one
// transaction so both see the same logical snapshot.
func (a *PropertyStorageAdapter) FindWithFilters(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyStorageAdapter",
		"method":    "FindWithFilters",
		"limit":     filter.Limit,
		"offset":    filter.Offset,
	})

	whereClause, args := applyFilters(filter)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties p %s", whereClause)
	var totalCount int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count properties with filters", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count properties with filters: %w", err)
	}

	if totalCount == 0 {
		return &domain.PaginatedResult{Properties: []domain.PropertyCard{}, TotalCount: 0}, nil
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM properties p %s %s %s LIMIT $%d OFFSET $%d",
		propertyCardColumns, propertyCardJoins, whereClause,
		orderClause(filter.SortBy, filter.SortOrder),
		len(args)+1, len(args)+2,
	)
	pageArgs := append(args, filter.Limit, filter.Offset)

	rows, err := tx.Query(ctx, dataQuery, pageArgs...)
	if err != nil {
		repoLogger.Error("Failed to find properties with filters", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to find properties with filters: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.PropertyCard, 0, filter.Limit)
	for rows.Next() {
		card, err := scanPropertyCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading property rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Found properties for page", port.Fields{"count": len(cards), "total_count": totalCount})

	return &domain.PaginatedResult{
		Properties: cards,
		TotalCount: int(totalCount),
	}, nil
}

func (a *PropertyStorageAdapter) GetByID(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	query := `
		SELECT id, user_id, title, description, property_type, status,
		       country, region, city, address, latitude, longitude, geohash,
		       price, bedrooms, bathrooms, square_footage, land_size, year_built,
		       natural_features, outdoor_amenities, is_featured,
		       view_count, inquiry_count, favorite_count, created_at, updated_at
		FROM properties
		WHERE id = $1`

	p, err := scanProperty(a.pool.QueryRow(ctx, query, propertyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property by id: %w", err)
	}
	return p, nil
}

func (a *PropertyStorageAdapter) GetDetails(ctx context.Context, propertyID uuid.UUID) (*domain.PropertyDetails, error) {
	query := `
		SELECT p.id, p.user_id, p.title, p.description, p.property_type, p.status,
		       p.country, p.region, p.city, p.address, p.latitude, p.longitude, p.geohash,
		       p.price, p.bedrooms, p.bathrooms, p.square_footage, p.land_size, p.year_built,
		       p.natural_features, p.outdoor_amenities, p.is_featured,
		       p.view_count, p.inquiry_count, p.favorite_count, p.created_at, p.updated_at,
		       u.name, u.email, u.role
		FROM properties p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	row := a.pool.QueryRow(ctx, query, propertyID)

	var details domain.PropertyDetails
	var features, amenities string
	if err := row.Scan(
		&details.ID, &details.UserID, &details.Title, &details.Description,
		&details.PropertyType, &details.Status,
		&details.Country, &details.Region, &details.City, &details.Address,
		&details.Latitude, &details.Longitude, &details.Geohash,
		&details.Price, &details.Bedrooms, &details.Bathrooms,
		&details.SquareFootage, &details.LandSize, &details.YearBuilt,
		&features, &amenities, &details.IsFeatured,
		&details.ViewCount, &details.InquiryCount, &details.FavoriteCount,
		&details.CreatedAt, &details.UpdatedAt,
		&details.Owner.Name, &details.Owner.Email, &details.Owner.Role,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property details: %w", err)
	}
	details.NaturalFeatures = splitList(features)
	details.OutdoorAmenities = splitList(amenities)
	details.Owner.ID = details.UserID

	photosQuery := `
		SELECT id, property_id, url, is_primary, sort_order
		FROM property_photos
		WHERE property_id = $1
		ORDER BY sort_order ASC`
	rows, err := a.pool.Query(ctx, photosQuery, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var photo domain.PropertyPhoto
		if err := rows.Scan(&photo.ID, &photo.PropertyID, &photo.URL, &photo.IsPrimary, &photo.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		details.Photos = append(details.Photos, photo)
	}
	return &details, rows.Err()
}

func (a *PropertyStorageAdapter) Create(ctx context.Context, property *domain.Property, photos []domain.PropertyPhoto) error {
	applyGeohash(property)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO properties (
			id, user_id, title, description, property_type, status,
			country, region, city, address, latitude, longitude, geohash,
			price, bedrooms, bathrooms, square_footage, land_size, year_built,
			natural_features, outdoor_amenities, is_featured,
			view_count, inquiry_count, favorite_count, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, 0, 0, 0, $23, $24
		)`
	_, err = tx.Exec(ctx, insert,
		property.ID, property.UserID, property.Title, property.Description,
		property.PropertyType, property.Status,
		property.Country, property.Region, property.City, property.Address,
		property.Latitude, property.Longitude, property.Geohash,
		property.Price, property.Bedrooms, property.Bathrooms,
		property.SquareFootage, property.LandSize, property.YearBuilt,
		joinList(property.NaturalFeatures), joinList(property.OutdoorAmenities), property.IsFeatured,
		property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}

	if err := insertPhotos(ctx, tx, photos); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (a *PropertyStorageAdapter) Update(ctx context.Context, property *domain.Property, photos []domain.PropertyPhoto) error {
	applyGeohash(property)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	update := `
		UPDATE properties SET
			title = $2, description = $3, property_type = $4, status = $5,
			country = $6, region = $7, city = $8, address = $9,
			latitude = $10, longitude = $11, geohash = $12,
			price = $13, bedrooms = $14, bathrooms = $15,
			square_footage = $16, land_size = $17, year_built = $18,
			natural_features = $19, outdoor_amenities = $20, is_featured = $21,
			updated_at = $22
		WHERE id = $1`
	tag, err := tx.Exec(ctx, update,
		property.ID, property.Title, property.Description,
		property.PropertyType, property.Status,
		property.Country, property.Region, property.City, property.Address,
		property.Latitude, property.Longitude, property.Geohash,
		property.Price, property.Bedrooms, property.Bathrooms,
		property.SquareFootage, property.LandSize, property.YearBuilt,
		joinList(property.NaturalFeatures), joinList(property.OutdoorAmenities), property.IsFeatured,
		property.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Replace the photo set wholesale; the draft carries the full list.
	if _, err := tx.Exec(ctx, "DELETE FROM property_photos WHERE property_id = $1", property.ID); err != nil {
		return fmt.Errorf("failed to clear property photos: %w", err)
	}
	if err := insertPhotos(ctx, tx, photos); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (a *PropertyStorageAdapter) Delete(ctx context.Context, propertyID uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RecordView appends a view row and bumps the denormalized counter in one
// transaction.
func (a *PropertyStorageAdapter) RecordView(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"INSERT INTO property_views (id, property_id, viewer_id, viewed_at) VALUES ($1, $2, $3, now())",
		uuid.New(), propertyID, viewerID,
	); err != nil {
		return fmt.Errorf("failed to insert property view: %w", err)
	}

	if _, err := tx.Exec(ctx,
		"UPDATE properties SET view_count = view_count + 1 WHERE id = $1",
		propertyID,
	); err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	return tx.Commit(ctx)
}

func applyGeohash(property *domain.Property) {
	if property.Latitude != nil && property.Longitude != nil {
		property.Geohash = geohash.EncodeWithPrecision(*property.Latitude, *property.Longitude, geohashPrecision)
	} else {
		property.Geohash = ""
	}
}

func insertPhotos(ctx context.Context, tx pgx.Tx, photos []domain.PropertyPhoto) error {
	for _, photo := range photos {
		if _, err := tx.Exec(ctx,
			"INSERT INTO property_photos (id, property_id, url, is_primary, sort_order) VALUES ($1, $2, $3, $4, $5)",
			photo.ID, photo.PropertyID, photo.URL, photo.IsPrimary, photo.SortOrder,
		); err != nil {
			return fmt.Errorf("failed to insert property photo: %w", err)
		}
	}
	return nil
}

// scanPropertyCard reads one row in the propertyCardColumns projection.
func scanPropertyCard(row pgx.Row) (*domain.PropertyCard, error) {
	var card domain.PropertyCard
	var features, amenities string
	if err := row.Scan(
		&card.ID, &card.UserID, &card.Title, &card.Description,
		&card.PropertyType, &card.Status,
		&card.Country, &card.Region, &card.City, &card.Address,
		&card.Latitude, &card.Longitude, &card.Geohash,
		&card.Price, &card.Bedrooms, &card.Bathrooms,
		&card.SquareFootage, &card.LandSize, &card.YearBuilt,
		&features, &amenities, &card.IsFeatured,
		&card.ViewCount, &card.InquiryCount, &card.FavoriteCount,
		&card.CreatedAt, &card.UpdatedAt,
		&card.Owner.Name, &card.Owner.Email, &card.Owner.Role,
		&card.PrimaryPhoto,
	); err != nil {
		return nil, err
	}
	card.NaturalFeatures = splitList(features)
	card.OutdoorAmenities = splitList(amenities)
	card.Owner.ID = card.UserID
	return &card, nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	var features, amenities string
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description,
		&p.PropertyType, &p.Status,
		&p.Country, &p.Region, &p.City, &p.Address,
		&p.Latitude, &p.Longitude, &p.Geohash,
		&p.Price, &p.Bedrooms, &p.Bathrooms,
		&p.SquareFootage, &p.LandSize, &p.YearBuilt,
		&features, &amenities, &p.IsFeatured,
		&p.ViewCount, &p.InquiryCount, &p.FavoriteCount,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.NaturalFeatures = splitList(features)
	p.OutdoorAmenities = splitList(amenities)
	return &p, nil
}

// Lists are stored as comma-joined text so containment filters stay plain
// ILIKE predicates.
func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(serialized string) []string {
	if serialized == "" {
		return nil
	}
	return strings.Split(serialized, ",")
}
