package usecase

import (
	"availability-service/internal/contextkeys"
	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
	"context"
)

type GetDatasetStatsUseCase struct {
	dictionaries port.DictionaryPort
}

func NewGetDatasetStatsUseCase(dictionaries port.DictionaryPort) *GetDatasetStatsUseCase {
	return &GetDatasetStatsUseCase{dictionaries: dictionaries}
}

// Execute возвращает сводку по датасету: количество объявлений и границы
// календаря. Дашборд использует границы, чтобы ограничить date picker.
func (uc *GetDatasetStatsUseCase) Execute(ctx context.Context) (*domain.DatasetStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDatasetStats",
	})

	ucLogger.Info("Use case started", nil)

	stats, err := uc.dictionaries.GetDatasetStats(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"listings":         stats.ListingCount,
		"calendar_entries": stats.Coverage.EntryCount,
	})

	return stats, nil
}
