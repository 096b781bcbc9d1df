package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

type GetCurrentUserUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetCurrentUserUseCase(userRepo port.UserRepositoryPort) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetCurrentUser",
		"user_id":  userID,
	})

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository failed to find user by id", err, nil)
		return nil, err
	}
	if user == nil {
		ucLogger.Warn("User from a valid token no longer exists", nil)
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
