package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type MarkNotificationReadUseCase struct {
	notificationRepo port.NotificationRepositoryPort
}

func NewMarkNotificationReadUseCase(notificationRepo port.NotificationRepositoryPort) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{notificationRepo: notificationRepo}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, userID, notificationID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "MarkNotificationRead",
		"user_id":         userID,
		"notification_id": notificationID,
	})

	// The repository only touches rows owned by userID, so another user's
	// notification id yields ErrNotFound rather than a silent update.
	if err := uc.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
