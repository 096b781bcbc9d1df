package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type UpdateInquiryStatusUseCase interface {
	Execute(ctx context.Context, actorID, inquiryID uuid.UUID, status string) error
}
