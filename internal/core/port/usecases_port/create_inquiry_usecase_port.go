package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type CreateInquiryUseCase interface {
	Execute(ctx context.Context, senderID, propertyID uuid.UUID, message string) (*domain.Inquiry, error)
}
