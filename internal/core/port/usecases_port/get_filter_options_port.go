package usecases_port

import (
	"availability-service/internal/core/domain"
	"context"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}
