package usecases_port

import (
	"availability-service/internal/core/domain"
	"context"
)

type GetDatasetStatsUseCase interface {
	Execute(ctx context.Context) (*domain.DatasetStats, error)
}
