package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyDetailsUseCase(storage port.PropertyStoragePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{storage: storage}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) (*domain.PropertyDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	details, err := uc.storage.GetDetails(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	// View recording is a side effect; a failure must not break the read.
	if err := uc.storage.RecordView(ctx, propertyID, viewerID); err != nil {
		ucLogger.Warn("Failed to record property view", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return details, nil
}
