package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type MarkNotificationReadUseCase interface {
	Execute(ctx context.Context, userID, notificationID uuid.UUID) error
}
