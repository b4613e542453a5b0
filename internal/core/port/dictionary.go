package port

import (
	"availability-service/internal/core/domain"
	"context"
)

// DictionaryPort - справочники для виджетов дашборда.
type DictionaryPort interface {
	GetUniqueNeighbourhoods(ctx context.Context) ([]string, error)
	GetUniquePropertyTypes(ctx context.Context) ([]string, error)
	GetMaxAccommodates(ctx context.Context) (int, error)

	GetDatasetStats(ctx context.Context) (*domain.DatasetStats, error)
}
