package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type GetNotificationsUseCase struct {
	notificationRepo port.NotificationRepositoryPort
}

func NewGetNotificationsUseCase(notificationRepo port.NotificationRepositoryPort) *GetNotificationsUseCase {
	return &GetNotificationsUseCase{notificationRepo: notificationRepo}
}

func (uc *GetNotificationsUseCase) Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedNotifications, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetNotifications",
		"user_id":  userID,
		"limit":    limit,
		"offset":   offset,
	})

	result, err := uc.notificationRepo.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":  result.TotalCount,
		"unread_count": result.UnreadCount,
	})
	return result, nil
}
