package usecase

import (
	"availability-service/internal/contextkeys"
	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
	"context"
)

type GetFilterOptionsUseCase struct {
	dictionaries port.DictionaryPort
}

func NewGetFilterOptionsUseCase(dictionaries port.DictionaryPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{dictionaries: dictionaries}
}

// Execute собирает справочники для виджетов дашборда.
// Не возвращаем ошибку, если не удалось получить один из справочников -
// виджет просто останется пустым, остальные продолжат работать.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})

	ucLogger.Info("Use case started", nil)

	options := &domain.FilterOptions{}

	neighbourhoods, err := uc.dictionaries.GetUniqueNeighbourhoods(ctx)
	if err != nil {
		ucLogger.Error("Failed to get unique neighbourhoods", err, nil)
	} else {
		options.Neighbourhoods = neighbourhoods
	}

	propertyTypes, err := uc.dictionaries.GetUniquePropertyTypes(ctx)
	if err != nil {
		ucLogger.Error("Failed to get unique property types", err, nil)
	} else {
		options.PropertyTypes = propertyTypes
	}

	maxAccommodates, err := uc.dictionaries.GetMaxAccommodates(ctx)
	if err != nil {
		ucLogger.Error("Failed to get max accommodates", err, nil)
	} else {
		options.MaxAccommodates = maxAccommodates
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"neighbourhoods": len(options.Neighbourhoods),
		"property_types": len(options.PropertyTypes),
	})

	return options, nil
}
