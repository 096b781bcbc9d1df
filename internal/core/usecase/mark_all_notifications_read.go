package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type MarkAllNotificationsReadUseCase struct {
	notificationRepo port.NotificationRepositoryPort
}

func NewMarkAllNotificationsReadUseCase(notificationRepo port.NotificationRepositoryPort) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{notificationRepo: notificationRepo}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "MarkAllNotificationsRead",
		"user_id":  userID,
	})

	if err := uc.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
