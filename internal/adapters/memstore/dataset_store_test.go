package memstore

import (
	"context"
	"testing"
	"time"

	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
)

type nopLogger struct{}

func (n *nopLogger) Info(msg string, fields port.Fields)             {}
func (n *nopLogger) Warn(msg string, fields port.Fields)             {}
func (n *nopLogger) Error(msg string, err error, fields port.Fields) {}
func (n *nopLogger) Debug(msg string, fields port.Fields)            {}
func (n *nopLogger) WithFields(fields port.Fields) port.LoggerPort   { return n }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(listingID int64, date time.Time, available bool, price float64) domain.CalendarEntry {
	return domain.CalendarEntry{
		ListingID:     listingID,
		Date:          date,
		Available:     available,
		Price:         price,
		MinimumNights: 1,
		MaximumNights: 30,
	}
}

func buildTestStore() *DatasetStore {
	listings := []domain.Listing{
		{ID: 2, Name: "B", Neighbourhood: "Mitte", PropertyType: "Apartment", Accommodates: 4},
		{ID: 1, Name: "A", Neighbourhood: "Kreuzberg", PropertyType: "Loft", Accommodates: 2},
	}
	entries := []domain.CalendarEntry{
		entry(1, day(2025, time.July, 1), true, 80),
		entry(1, day(2025, time.July, 2), false, 80),
		entry(2, day(2025, time.July, 1), true, 120),
		entry(2, day(2025, time.July, 2), true, 120),
		entry(2, day(2025, time.July, 4), true, 130), // дыра 3 июля
	}
	return NewDatasetStore(listings, entries, &nopLogger{})
}

func TestListingByID(t *testing.T) {
	store := buildTestStore()

	listing, err := store.ListingByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listing.Name != "A" {
		t.Errorf("expected listing A, got %q", listing.Name)
	}

	if _, err := store.ListingByID(context.Background(), 42); err != domain.ErrListingNotFound {
		t.Errorf("expected ErrListingNotFound, got %v", err)
	}
}

func TestListingsSortedByID(t *testing.T) {
	store := buildTestStore()

	listings, err := store.Listings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 || listings[0].ID != 1 || listings[1].ID != 2 {
		t.Fatalf("expected listings sorted by id, got %+v", listings)
	}
}

func TestEntriesByStartDate(t *testing.T) {
	store := buildTestStore()

	entries, err := store.EntriesByStartDate(context.Background(), day(2025, time.July, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 anchors on July 1, got %d", len(entries))
	}
	if entries[0].ListingID != 1 || entries[1].ListingID != 2 {
		t.Errorf("expected anchors sorted by listing id, got %+v", entries)
	}

	// дата вне календаря - пусто, не ошибка
	empty, err := store.EntriesByStartDate(context.Background(), day(2026, time.January, 1))
	if err != nil || len(empty) != 0 {
		t.Errorf("expected empty result outside coverage, got %v, %v", empty, err)
	}
}

// Дыра в календаре не попадает в окно: вызывающая сторона видит
// срез короче запрошенного диапазона.
func TestEntriesInWindowWithGap(t *testing.T) {
	store := buildTestStore()

	window, err := store.EntriesInWindow(context.Background(), 2, day(2025, time.July, 1), day(2025, time.July, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(window) != 3 {
		t.Fatalf("expected 3 entries (July 3 missing), got %d", len(window))
	}
	for i := 1; i < len(window); i++ {
		if !window[i-1].Date.Before(window[i].Date) {
			t.Errorf("window entries are not sorted by date: %+v", window)
		}
	}
}

func TestEntriesInWindowUnknownListing(t *testing.T) {
	store := buildTestStore()

	window, err := store.EntriesInWindow(context.Background(), 42, day(2025, time.July, 1), day(2025, time.July, 2))
	if err != nil || len(window) != 0 {
		t.Errorf("expected empty window for unknown listing, got %v, %v", window, err)
	}
}

// Дубль по (listing_id, date) - побеждает последняя запись,
// счетчик покрытия не задваивается.
func TestDuplicateCalendarRowLastWins(t *testing.T) {
	listings := []domain.Listing{{ID: 1, Name: "A", Accommodates: 2}}
	entries := []domain.CalendarEntry{
		entry(1, day(2025, time.July, 1), true, 100),
		entry(1, day(2025, time.July, 1), false, 150),
	}
	store := NewDatasetStore(listings, entries, &nopLogger{})

	window, err := store.EntriesInWindow(context.Background(), 1, day(2025, time.July, 1), day(2025, time.July, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(window) != 1 || window[0].Available || window[0].Price != 150 {
		t.Fatalf("expected last duplicate to win, got %+v", window)
	}

	coverage, _ := store.Coverage(context.Background())
	if coverage.EntryCount != 1 {
		t.Errorf("expected deduplicated entry count 1, got %d", coverage.EntryCount)
	}
}

func TestCoverage(t *testing.T) {
	store := buildTestStore()

	coverage, err := store.Coverage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !coverage.FirstDate.Equal(day(2025, time.July, 1)) || !coverage.LastDate.Equal(day(2025, time.July, 4)) {
		t.Errorf("unexpected coverage bounds: %+v", coverage)
	}
	if coverage.EntryCount != 5 {
		t.Errorf("expected 5 entries, got %d", coverage.EntryCount)
	}
}

func TestDictionaries(t *testing.T) {
	store := buildTestStore()

	neighbourhoods, err := store.GetUniqueNeighbourhoods(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(neighbourhoods) != 2 || neighbourhoods[0] != "Kreuzberg" || neighbourhoods[1] != "Mitte" {
		t.Errorf("unexpected neighbourhoods: %v", neighbourhoods)
	}

	propertyTypes, err := store.GetUniquePropertyTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(propertyTypes) != 2 || propertyTypes[0] != "Apartment" || propertyTypes[1] != "Loft" {
		t.Errorf("unexpected property types: %v", propertyTypes)
	}

	maxAccommodates, err := store.GetMaxAccommodates(context.Background())
	if err != nil || maxAccommodates != 4 {
		t.Errorf("expected max accommodates 4, got %d, %v", maxAccommodates, err)
	}
}

func TestListingCalendarSummary(t *testing.T) {
	store := buildTestStore()

	entries, daysAvailable, first, last, err := store.ListingCalendarSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries != 2 || daysAvailable != 1 {
		t.Errorf("expected 2 entries / 1 available, got %d / %d", entries, daysAvailable)
	}
	if !first.Equal(day(2025, time.July, 1)) || !last.Equal(day(2025, time.July, 2)) {
		t.Errorf("unexpected summary bounds: %v .. %v", first, last)
	}
}

func TestGetDatasetStats(t *testing.T) {
	store := buildTestStore()

	stats, err := store.GetDatasetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ListingCount != 2 || stats.Coverage.EntryCount != 5 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
