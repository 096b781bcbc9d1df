package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/constants"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type CreateInquiryUseCase struct {
	inquiryRepo      port.InquiryRepositoryPort
	storage          port.PropertyStoragePort
	notificationRepo port.NotificationRepositoryPort
	events           port.EventPublisherPort
}

func NewCreateInquiryUseCase(
	inquiryRepo port.InquiryRepositoryPort,
	storage port.PropertyStoragePort,
	notificationRepo port.NotificationRepositoryPort,
	events port.EventPublisherPort,
) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		inquiryRepo:      inquiryRepo,
		storage:          storage,
		notificationRepo: notificationRepo,
		events:           events,
	}
}

func (uc *CreateInquiryUseCase) Execute(ctx context.Context, senderID, propertyID uuid.UUID, message string) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateInquiry",
		"sender_id":   senderID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.storage.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage failed to load property", err, nil)
		return nil, err
	}
	if property.UserID == senderID {
		ucLogger.Warn("Inquiry rejected: sender owns the listing", nil)
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	inquiry := &domain.Inquiry{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		SenderID:    senderID,
		RecipientID: property.UserID,
		Message:     message,
		Status:      domain.InquiryPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		ucLogger.Error("Repository failed to create inquiry", err, nil)
		return nil, err
	}

	// Notification and event delivery must not fail the inquiry itself.
	notification := &domain.Notification{
		ID:                uuid.New(),
		UserID:            property.UserID,
		Type:              domain.NotificationInquiryReceived,
		Message:           fmt.Sprintf("New inquiry for %q", property.Title),
		RelatedPropertyID: &property.ID,
		CreatedAt:         now,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		ucLogger.Warn("Failed to create notification for inquiry", port.Fields{"error": err.Error()})
	}

	event := map[string]interface{}{
		"inquiry_id":   inquiry.ID,
		"property_id":  propertyID,
		"sender_id":    senderID,
		"recipient_id": property.UserID,
		"created_at":   now,
	}
	if err := uc.events.Publish(ctx, constants.RoutingKeyInquiryCreated, event); err != nil {
		ucLogger.Warn("Failed to publish inquiry created event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"inquiry_id": inquiry.ID})
	return inquiry, nil
}
