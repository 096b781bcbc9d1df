package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type GetSentInquiriesUseCase struct {
	inquiryRepo port.InquiryRepositoryPort
}

func NewGetSentInquiriesUseCase(inquiryRepo port.InquiryRepositoryPort) *GetSentInquiriesUseCase {
	return &GetSentInquiriesUseCase{inquiryRepo: inquiryRepo}
}

func (uc *GetSentInquiriesUseCase) Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetSentInquiries",
		"user_id":  userID,
		"limit":    limit,
		"offset":   offset,
	})

	result, err := uc.inquiryRepo.ListSent(ctx, userID, limit, offset)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": result.TotalCount})
	return result, nil
}
