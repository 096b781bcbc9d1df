package usecases_port

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, email, password, name, role, phone string) (*domain.User, string, error)
}
