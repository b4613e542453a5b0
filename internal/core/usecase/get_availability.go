package usecase

import (
	"availability-service/internal/contextkeys"
	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
	"context"
	"sort"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 7

// GetAvailabilityUseCase - движок запросов доступности.
// Отвечает на вопрос: какие объявления можно забронировать с даты D
// на N ночей для P человек, и сколько это стоит на человека в сутки.
type GetAvailabilityUseCase struct {
	storage port.DatasetStoragePort
}

func NewGetAvailabilityUseCase(storage port.DatasetStoragePort) *GetAvailabilityUseCase {
	return &GetAvailabilityUseCase{storage: storage}
}

// Execute выполняет запрос в четыре стадии:
//  1. отбор по допустимой длине брони на дату заезда (min/max nights);
//  2. отбор по вместимости;
//  3. проверка всего окна [start, start+nDays-1]: каждый день должен быть
//     доступен, цены суммируются; один недоступный или отсутствующий день
//     выбрасывает объявление целиком;
//  4. расчет цены на человека в сутки и сборка итоговой строки.
//
// Вместо жестко зашитых "смотрим на день вперед" берем якорные записи на
// дату заезда и раскрываем окно каждого кандидата через хранилище - длина
// брони может быть любой без изменения кода.
//
// Все граничные случаи (nDays <= 0, дата вне календаря, нет кандидатов)
// дают пустой результат, а не ошибку.
func (uc *GetAvailabilityUseCase) Execute(ctx context.Context, query domain.AvailabilityQuery) ([]domain.AvailabilityResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "GetAvailability",
		"start_of_stay": domain.Day(query.StartOfStay).Format("2006-01-02"),
		"n_days":        query.NDays,
		"n_people":      query.NPeople,
	})

	ucLogger.Info("Use case started", nil)

	results := []domain.AvailabilityResult{}

	if query.NDays < 1 || query.NPeople < 1 {
		ucLogger.Warn("Non-positive stay length or party size, returning empty result", nil)
		return results, nil
	}

	start, end := query.Window()

	// Стадия 1: якорные записи календаря на дату заезда + политика длины брони.
	anchors, err := uc.storage.EntriesByStartDate(ctx, start)
	if err != nil {
		ucLogger.Error("Storage returned an error for start date entries", err, nil)
		return nil, err
	}

	candidates := make([]domain.CalendarEntry, 0, len(anchors))
	for _, entry := range anchors {
		if entry.MinimumNights <= query.NDays && query.NDays <= entry.MaximumNights {
			candidates = append(candidates, entry)
		}
	}

	ucLogger.Debug("Stay-length filter applied", port.Fields{
		"anchors":    len(anchors),
		"candidates": len(candidates),
	})

	for _, candidate := range candidates {
		listing, err := uc.storage.ListingByID(ctx, candidate.ListingID)
		if err == domain.ErrListingNotFound {
			// запись календаря без объявления - битая ссылка в датасете
			ucLogger.Warn("Calendar entry references unknown listing, skipping", port.Fields{
				"listing_id": candidate.ListingID,
			})
			continue
		}
		if err != nil {
			ucLogger.Error("Storage returned an error for listing lookup", err, nil)
			return nil, err
		}

		// Стадия 2: вместимость.
		if listing.Accommodates < query.NPeople {
			continue
		}

		// Стадия 3: полное окно. Ровно NDays записей, все доступны.
		window, err := uc.storage.EntriesInWindow(ctx, listing.ID, start, end)
		if err != nil {
			ucLogger.Error("Storage returned an error for window scan", err, nil)
			return nil, err
		}
		if len(window) != query.NDays {
			// дыра в календаре или окно вышло за границы данных
			continue
		}

		valid := true
		totalPrice := 0.0
		for _, day := range window {
			if !day.Available {
				valid = false
				break
			}
			totalPrice += day.Price
		}
		if !valid {
			continue
		}

		// Стадия 4: производная цена + присоединение атрибутов объявления.
		results = append(results, domain.AvailabilityResult{
			ListingID:         listing.ID,
			Name:              listing.Name,
			Neighbourhood:     listing.Neighbourhood,
			PropertyType:      listing.PropertyType,
			Accommodates:      listing.Accommodates,
			Latitude:          listing.Latitude,
			Longitude:         listing.Longitude,
			Geohash:           geohash.EncodeWithPrecision(listing.Latitude, listing.Longitude, geohashPrecision),
			Rating:            listing.Rating,
			TotalPrice:        totalPrice,
			PricePerDayPerson: totalPrice / float64(query.NDays*query.NPeople),
		})
	}

	// Порядок не задан исходной логикой, сортируем по ID для воспроизводимости.
	sort.Slice(results, func(i, j int) bool {
		return results[i].ListingID < results[j].ListingID
	})

	ucLogger.Info("Use case finished successfully", port.Fields{
		"results": len(results),
	})

	return results, nil
}
