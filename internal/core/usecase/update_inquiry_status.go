package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type UpdateInquiryStatusUseCase struct {
	inquiryRepo      port.InquiryRepositoryPort
	notificationRepo port.NotificationRepositoryPort
}

func NewUpdateInquiryStatusUseCase(inquiryRepo port.InquiryRepositoryPort, notificationRepo port.NotificationRepositoryPort) *UpdateInquiryStatusUseCase {
	return &UpdateInquiryStatusUseCase{inquiryRepo: inquiryRepo, notificationRepo: notificationRepo}
}

func (uc *UpdateInquiryStatusUseCase) Execute(ctx context.Context, actorID, inquiryID uuid.UUID, status string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateInquiryStatus",
		"actor_id":   actorID,
		"inquiry_id": inquiryID,
		"status":     status,
	})

	ucLogger.Info("Use case started", nil)

	if !domain.IsValidInquiryStatus(status) {
		ve := domain.NewValidationError()
		ve.Add("status", fmt.Sprintf("must be one of %v", domain.InquiryStatuses))
		ucLogger.Warn("Update rejected: unknown inquiry status", nil)
		return ve
	}

	inquiry, err := uc.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		ucLogger.Error("Repository failed to load inquiry", err, nil)
		return err
	}
	if inquiry.RecipientID != actorID {
		ucLogger.Warn("Update rejected: actor is not the recipient", nil)
		return domain.ErrForbidden
	}

	if err := uc.inquiryRepo.UpdateStatus(ctx, inquiryID, status); err != nil {
		ucLogger.Error("Repository failed to update inquiry status", err, nil)
		return err
	}

	// Let the sender know their inquiry got a reply.
	if status == domain.InquiryReplied && inquiry.Status != domain.InquiryReplied {
		notification := &domain.Notification{
			ID:                uuid.New(),
			UserID:            inquiry.SenderID,
			Type:              domain.NotificationInquiryReplied,
			Message:           "Your inquiry received a reply",
			RelatedPropertyID: &inquiry.PropertyID,
			CreatedAt:         time.Now().UTC(),
		}
		if err := uc.notificationRepo.Create(ctx, notification); err != nil {
			ucLogger.Warn("Failed to create reply notification", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
