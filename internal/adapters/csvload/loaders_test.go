package csvload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"availability-service/internal/core/port"
)

type nopLogger struct{}

func (n *nopLogger) Info(msg string, fields port.Fields)             {}
func (n *nopLogger) Warn(msg string, fields port.Fields)             {}
func (n *nopLogger) Error(msg string, err error, fields port.Fields) {}
func (n *nopLogger) Debug(msg string, fields port.Fields)            {}
func (n *nopLogger) WithFields(fields port.Fields) port.LoggerPort   { return n }

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

const listingsCSV = `id,name,neighbourhood,property_type,accommodates,bedrooms,bathrooms,latitude,longitude,review_scores_rating,review_scores_accuracy,review_scores_cleanliness,review_scores_checkin,review_scores_communication,review_scores_location,review_scores_value
100,Cozy flat,downtown,Apartment,4,2,1,52.52,13.405,4.8,4.9,4.7,4.8,4.9,4.6,4.5
101,Big house,SUBURBS,House,8,4,2.5,52.48,13.35,,,,,,,
oops,Broken row,downtown,Apartment,2,1,1,52.5,13.4,,,,,,,
100,Duplicate id,downtown,Apartment,2,1,1,52.5,13.4,,,,,,,
`

func TestListingsLoaderLoad(t *testing.T) {
	path := writeTempCSV(t, "listings.csv", listingsCSV)

	loader := NewListingsLoader(&nopLogger{})
	listings, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// битая строка и дубль id пропущены
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}

	first := listings[0]
	if first.ID != 100 || first.Name != "Cozy flat" || first.Accommodates != 4 {
		t.Errorf("unexpected first listing: %+v", first)
	}
	// регистр района нормализован
	if first.Neighbourhood != "Downtown" {
		t.Errorf("expected neighbourhood Downtown, got %q", first.Neighbourhood)
	}
	if first.Rating == nil || *first.Rating != 4.8 {
		t.Errorf("expected rating 4.8, got %v", first.Rating)
	}
	if first.ReviewScores.Cleanliness == nil || *first.ReviewScores.Cleanliness != 4.7 {
		t.Errorf("expected cleanliness 4.7, got %v", first.ReviewScores.Cleanliness)
	}

	second := listings[1]
	if second.Neighbourhood != "Suburbs" {
		t.Errorf("expected neighbourhood Suburbs, got %q", second.Neighbourhood)
	}
	// у объявления без отзывов рейтинг отсутствует
	if second.Rating != nil {
		t.Errorf("expected nil rating, got %v", *second.Rating)
	}
	if second.Bathrooms != 2.5 {
		t.Errorf("expected 2.5 bathrooms, got %v", second.Bathrooms)
	}
}

func TestListingsLoaderMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "listings.csv", "id,name\n1,test\n")

	loader := NewListingsLoader(&nopLogger{})
	if _, err := loader.Load(path); err == nil {
		t.Fatal("expected error for missing required columns")
	}
}

const calendarCSV = `listing_id,date,available,price,minimum_nights,maximum_nights
100,2025-11-01,t,"$100.00",2,7
100,2025-11-02,t,"$120.00",2,7
100,2025-11-03,f,"$110.00",2,7
100,bad-date,t,"$100.00",2,7
100,2025-11-04,t,"$100.00",9,3
`

func TestCalendarLoaderLoad(t *testing.T) {
	path := writeTempCSV(t, "calendar.csv", calendarCSV)

	loader := NewCalendarLoader(&nopLogger{})
	entries, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// строка с кривой датой и строка с min > max пропущены
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.ListingID != 100 || !first.Available || first.Price != 100 {
		t.Errorf("unexpected first entry: %+v", first)
	}
	want := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, first.Date)
	}
	if first.MinimumNights != 2 || first.MaximumNights != 7 {
		t.Errorf("unexpected night bounds: %+v", first)
	}

	if entries[2].Available {
		t.Error("expected third entry to be unavailable")
	}
}

func TestCalendarLoaderMissingFile(t *testing.T) {
	loader := NewCalendarLoader(&nopLogger{})
	if _, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
