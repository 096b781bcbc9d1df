package usecases_port

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type LoginUserUseCase interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}
