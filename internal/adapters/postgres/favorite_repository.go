package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) (*FavoriteRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FavoriteRepository{pool: pool}, nil
}

// Add is idempotent: saving the same listing twice neither errors nor
// double-counts.
func (r *FavoriteRepository) Add(ctx context.Context, userID, propertyID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO favorites (user_id, property_id, created_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id, property_id) DO NOTHING`,
		userID, propertyID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	if tag.RowsAffected() == 1 {
		if _, err := tx.Exec(ctx,
			"UPDATE properties SET favorite_count = favorite_count + 1 WHERE id = $1",
			propertyID,
		); err != nil {
			return fmt.Errorf("failed to increment favorite count: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Remove mirrors Add: removing an absent favorite is a no-op.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND property_id = $2",
		userID, propertyID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	if tag.RowsAffected() == 1 {
		if _, err := tx.Exec(ctx,
			"UPDATE properties SET favorite_count = GREATEST(favorite_count - 1, 0) WHERE id = $1",
			propertyID,
		); err != nil {
			return fmt.Errorf("failed to decrement favorite count: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// ListForUser returns the saved listings decorated exactly like search
// results, newest save first.
func (r *FavoriteRepository) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int64
	if err := tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM favorites WHERE user_id = $1", userID,
	).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM favorites f
		JOIN properties p ON p.id = f.property_id
		%s
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, p.id ASC
		LIMIT $2 OFFSET $3`, propertyCardColumns, propertyCardJoins)

	rows, err := tx.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.PropertyCard, 0, limit)
	for rows.Next() {
		card, err := scanPropertyCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading favorite rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.PaginatedResult{
		Properties: cards,
		TotalCount: int(totalCount),
	}, nil
}

func (r *FavoriteRepository) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT property_id FROM favorites WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
