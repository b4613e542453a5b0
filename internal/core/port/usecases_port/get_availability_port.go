package usecases_port

import (
	"availability-service/internal/core/domain"
	"context"
)

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, query domain.AvailabilityQuery) ([]domain.AvailabilityResult, error)
}
