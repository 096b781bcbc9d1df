package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// NotificationRepositoryPort is the contract for the notification storage
// adapter. MarkRead must only touch rows owned by userID.
type NotificationRepositoryPort interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedNotifications, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
