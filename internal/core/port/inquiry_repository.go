package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// InquiryRepositoryPort is the contract for the inquiry storage adapter.
type InquiryRepositoryPort interface {
	// Create stores the inquiry and bumps the property's inquiry_count in
	// the same transaction.
	Create(ctx context.Context, inquiry *domain.Inquiry) error

	GetByID(ctx context.Context, inquiryID uuid.UUID) (*domain.Inquiry, error)
	ListSent(ctx context.Context, senderID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error)
	ListReceived(ctx context.Context, recipientID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error)
	UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status string) error
}
