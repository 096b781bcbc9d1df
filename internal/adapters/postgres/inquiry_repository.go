package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) (*InquiryRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &InquiryRepository{pool: pool}, nil
}

// Create inserts the inquiry and bumps the listing's inquiry_count in the
// same transaction.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO inquiries (id, property_id, sender_id, recipient_id, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.Exec(ctx, insert,
		inquiry.ID, inquiry.PropertyID, inquiry.SenderID, inquiry.RecipientID,
		inquiry.Message, inquiry.Status, inquiry.CreatedAt, inquiry.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}

	if _, err := tx.Exec(ctx,
		"UPDATE properties SET inquiry_count = inquiry_count + 1 WHERE id = $1",
		inquiry.PropertyID,
	); err != nil {
		return fmt.Errorf("failed to increment inquiry count: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *InquiryRepository) GetByID(ctx context.Context, inquiryID uuid.UUID) (*domain.Inquiry, error) {
	query := `
		SELECT id, property_id, sender_id, recipient_id, message, status, created_at, updated_at
		FROM inquiries
		WHERE id = $1`

	var inquiry domain.Inquiry
	err := r.pool.QueryRow(ctx, query, inquiryID).Scan(
		&inquiry.ID, &inquiry.PropertyID, &inquiry.SenderID, &inquiry.RecipientID,
		&inquiry.Message, &inquiry.Status, &inquiry.CreatedAt, &inquiry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry by id: %w", err)
	}
	return &inquiry, nil
}

func (r *InquiryRepository) ListSent(ctx context.Context, senderID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error) {
	return r.list(ctx, "i.sender_id", senderID, limit, offset)
}

func (r *InquiryRepository) ListReceived(ctx context.Context, recipientID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error) {
	return r.list(ctx, "i.recipient_id", recipientID, limit, offset)
}

// list pages inquiries for one side of the conversation, newest first with
// the id as tie-break.
func (r *InquiryRepository) list(ctx context.Context, scopeColumn string, userID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inquiries i WHERE %s = $1", scopeColumn)
	var totalCount int64
	if err := tx.QueryRow(ctx, countQuery, userID).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT i.id, i.property_id, i.sender_id, i.recipient_id, i.message, i.status,
		       i.created_at, i.updated_at, p.title, s.name, rc.name
		FROM inquiries i
		JOIN properties p ON p.id = i.property_id
		JOIN users s ON s.id = i.sender_id
		JOIN users rc ON rc.id = i.recipient_id
		WHERE %s = $1
		ORDER BY i.created_at DESC, i.id ASC
		LIMIT $2 OFFSET $3`, scopeColumn)

	rows, err := tx.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]domain.InquiryWithProperty, 0, limit)
	for rows.Next() {
		var item domain.InquiryWithProperty
		if err := rows.Scan(
			&item.ID, &item.PropertyID, &item.SenderID, &item.RecipientID,
			&item.Message, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&item.PropertyTitle, &item.SenderName, &item.RecipientName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		inquiries = append(inquiries, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading inquiry rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.PaginatedInquiries{
		Inquiries:  inquiries,
		TotalCount: int(totalCount),
	}, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE inquiries SET status = $2, updated_at = now() WHERE id = $1",
		inquiryID, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
