package memstore

import (
	"context"
	"sort"
	"time"

	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
)

// DatasetStore - неизменяемое in-memory хранилище двух таблиц.
// Все индексы строятся один раз в NewDatasetStore, после этого
// структура только читается, поэтому блокировки не нужны и запросы
// могут идти конкурентно.
//
// Индексы:
//   - listings по id + стабильный срез, отсортированный по id;
//   - записи календаря по дате (якоря для fan-out сканирования);
//   - записи календаря по (listing_id, date) для выборки окна.
type DatasetStore struct {
	listingsByID map[int64]domain.Listing
	listings     []domain.Listing // отсортированы по ID

	entriesByDate    map[time.Time][]domain.CalendarEntry
	entriesByListing map[int64]map[time.Time]domain.CalendarEntry

	coverage domain.CalendarCoverage

	neighbourhoods  []string
	propertyTypes   []string
	maxAccommodates int
}

// NewDatasetStore строит хранилище из результата работы загрузчиков.
// Дубликат по (listing_id, date) - ошибка данных: побеждает последняя
// запись, логируется предупреждение.
func NewDatasetStore(listings []domain.Listing, entries []domain.CalendarEntry, logger port.LoggerPort) *DatasetStore {
	storeLogger := logger.WithFields(port.Fields{"component": "dataset_store"})

	s := &DatasetStore{
		listingsByID:     make(map[int64]domain.Listing, len(listings)),
		entriesByDate:    make(map[time.Time][]domain.CalendarEntry),
		entriesByListing: make(map[int64]map[time.Time]domain.CalendarEntry),
	}

	for _, listing := range listings {
		s.listingsByID[listing.ID] = listing
		if listing.Accommodates > s.maxAccommodates {
			s.maxAccommodates = listing.Accommodates
		}
	}

	s.listings = make([]domain.Listing, 0, len(s.listingsByID))
	for _, listing := range s.listingsByID {
		s.listings = append(s.listings, listing)
	}
	sort.Slice(s.listings, func(i, j int) bool { return s.listings[i].ID < s.listings[j].ID })

	duplicates := 0
	for _, entry := range entries {
		entry.Date = domain.Day(entry.Date)

		byDate, ok := s.entriesByListing[entry.ListingID]
		if !ok {
			byDate = make(map[time.Time]domain.CalendarEntry)
			s.entriesByListing[entry.ListingID] = byDate
		}
		if _, exists := byDate[entry.Date]; exists {
			duplicates++
		}
		byDate[entry.Date] = entry

		if s.coverage.EntryCount == 0 || entry.Date.Before(s.coverage.FirstDate) {
			s.coverage.FirstDate = entry.Date
		}
		if s.coverage.EntryCount == 0 || entry.Date.After(s.coverage.LastDate) {
			s.coverage.LastDate = entry.Date
		}
		s.coverage.EntryCount++
	}
	if duplicates > 0 {
		storeLogger.Warn("Duplicate (listing_id, date) calendar rows, last one wins", port.Fields{
			"duplicates": duplicates,
		})
		s.coverage.EntryCount -= duplicates
	}

	// Индекс по дате собираем из дедуплицированных записей.
	for _, byDate := range s.entriesByListing {
		for _, entry := range byDate {
			s.entriesByDate[entry.Date] = append(s.entriesByDate[entry.Date], entry)
		}
	}
	for date := range s.entriesByDate {
		dayEntries := s.entriesByDate[date]
		sort.Slice(dayEntries, func(i, j int) bool { return dayEntries[i].ListingID < dayEntries[j].ListingID })
	}

	s.buildDictionaries()

	storeLogger.Info("Dataset store built", port.Fields{
		"listings":         len(s.listings),
		"calendar_entries": s.coverage.EntryCount,
		"calendar_days":    len(s.entriesByDate),
	})

	return s
}

func (s *DatasetStore) buildDictionaries() {
	neighbourhoodSet := make(map[string]bool)
	propertyTypeSet := make(map[string]bool)
	for _, listing := range s.listings {
		if listing.Neighbourhood != "" {
			neighbourhoodSet[listing.Neighbourhood] = true
		}
		if listing.PropertyType != "" {
			propertyTypeSet[listing.PropertyType] = true
		}
	}

	for name := range neighbourhoodSet {
		s.neighbourhoods = append(s.neighbourhoods, name)
	}
	sort.Strings(s.neighbourhoods)

	for name := range propertyTypeSet {
		s.propertyTypes = append(s.propertyTypes, name)
	}
	sort.Strings(s.propertyTypes)
}

// --- DatasetStoragePort ---

func (s *DatasetStore) ListingByID(ctx context.Context, listingID int64) (*domain.Listing, error) {
	listing, ok := s.listingsByID[listingID]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &listing, nil
}

func (s *DatasetStore) Listings(ctx context.Context) ([]domain.Listing, error) {
	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

func (s *DatasetStore) EntriesByStartDate(ctx context.Context, date time.Time) ([]domain.CalendarEntry, error) {
	dayEntries := s.entriesByDate[domain.Day(date)]
	out := make([]domain.CalendarEntry, len(dayEntries))
	copy(out, dayEntries)
	return out, nil
}

func (s *DatasetStore) EntriesInWindow(ctx context.Context, listingID int64, start, end time.Time) ([]domain.CalendarEntry, error) {
	byDate, ok := s.entriesByListing[listingID]
	if !ok {
		return nil, nil
	}

	var window []domain.CalendarEntry
	for day := domain.Day(start); !day.After(domain.Day(end)); day = day.AddDate(0, 0, 1) {
		if entry, exists := byDate[day]; exists {
			window = append(window, entry)
		}
		// отсутствующий день просто не попадает в срез,
		// неполное окно отбрасывает вызывающая сторона
	}
	return window, nil
}

func (s *DatasetStore) ListingCalendarSummary(ctx context.Context, listingID int64) (entries, daysAvailable int, first, last time.Time, err error) {
	byDate, ok := s.entriesByListing[listingID]
	if !ok {
		return 0, 0, time.Time{}, time.Time{}, nil
	}

	for _, entry := range byDate {
		if entries == 0 || entry.Date.Before(first) {
			first = entry.Date
		}
		if entries == 0 || entry.Date.After(last) {
			last = entry.Date
		}
		entries++
		if entry.Available {
			daysAvailable++
		}
	}
	return entries, daysAvailable, first, last, nil
}

func (s *DatasetStore) Coverage(ctx context.Context) (domain.CalendarCoverage, error) {
	return s.coverage, nil
}

// --- DictionaryPort ---

func (s *DatasetStore) GetUniqueNeighbourhoods(ctx context.Context) ([]string, error) {
	out := make([]string, len(s.neighbourhoods))
	copy(out, s.neighbourhoods)
	return out, nil
}

func (s *DatasetStore) GetUniquePropertyTypes(ctx context.Context) ([]string, error) {
	out := make([]string, len(s.propertyTypes))
	copy(out, s.propertyTypes)
	return out, nil
}

func (s *DatasetStore) GetMaxAccommodates(ctx context.Context) (int, error) {
	return s.maxAccommodates, nil
}

func (s *DatasetStore) GetDatasetStats(ctx context.Context) (*domain.DatasetStats, error) {
	return &domain.DatasetStats{
		ListingCount: len(s.listings),
		Coverage:     s.coverage,
	}, nil
}
