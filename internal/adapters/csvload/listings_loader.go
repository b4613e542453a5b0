package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser приводит названия районов к единому регистру, иначе
// "Downtown" и "downtown" разъезжаются по разным пунктам в словарях виджетов.
var titleCaser = cases.Title(language.English)

// ListingsLoader читает listings.csv в доменные структуры.
// Колонки ищутся по заголовку, порядок в файле не важен.
type ListingsLoader struct {
	logger port.LoggerPort
}

func NewListingsLoader(logger port.LoggerPort) *ListingsLoader {
	return &ListingsLoader{logger: logger.WithFields(port.Fields{"component": "listings_loader"})}
}

// Load читает весь файл. Битые строки пропускаются с предупреждением,
// загрузка продолжается.
func (l *ListingsLoader) Load(path string) ([]domain.Listing, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listings file: %w", err)
	}
	defer file.Close()

	listings, skipped, err := l.parse(file)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Listings loaded", port.Fields{
		"path":    path,
		"loaded":  len(listings),
		"skipped": skipped,
	})
	return listings, nil
}

func (l *ListingsLoader) parse(r io.Reader) ([]domain.Listing, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // проверяем длину строк сами

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read listings header: %w", err)
	}
	cols := indexColumns(header)

	for _, required := range []string{"id", "name", "accommodates", "latitude", "longitude"} {
		if _, ok := cols[required]; !ok {
			return nil, 0, fmt.Errorf("listings file is missing required column %q", required)
		}
	}

	var listings []domain.Listing
	seen := make(map[int64]bool)
	skipped := 0

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read listings row %d: %w", line, err)
		}

		listing, err := l.parseRow(cols, record)
		if err != nil {
			l.logger.Warn("Skipping malformed listings row", port.Fields{"line": line, "reason": err.Error()})
			skipped++
			continue
		}

		// id уникален по инварианту; дубль в файле - ошибка данных
		if seen[listing.ID] {
			l.logger.Warn("Skipping duplicate listing id", port.Fields{"line": line, "listing_id": listing.ID})
			skipped++
			continue
		}
		seen[listing.ID] = true

		listings = append(listings, listing)
	}

	return listings, skipped, nil
}

func (l *ListingsLoader) parseRow(cols map[string]int, record []string) (domain.Listing, error) {
	id, err := parseInt64(field(cols, record, "id"))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("bad id: %w", err)
	}

	accommodates, err := strconv.Atoi(field(cols, record, "accommodates"))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("bad accommodates: %w", err)
	}
	if accommodates < 1 {
		return domain.Listing{}, fmt.Errorf("accommodates must be >= 1, got %d", accommodates)
	}

	latitude, err := strconv.ParseFloat(field(cols, record, "latitude"), 64)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("bad latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(field(cols, record, "longitude"), 64)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("bad longitude: %w", err)
	}

	return domain.Listing{
		ID:            id,
		Name:          strings.TrimSpace(field(cols, record, "name")),
		Neighbourhood: titleCaser.String(strings.TrimSpace(field(cols, record, "neighbourhood"))),
		PropertyType:  strings.TrimSpace(field(cols, record, "property_type")),
		Accommodates:  accommodates,
		Bedrooms:      parseFloatOrZero(field(cols, record, "bedrooms")),
		Bathrooms:     parseFloatOrZero(field(cols, record, "bathrooms")),
		Latitude:      latitude,
		Longitude:     longitude,
		Rating:        parseOptionalFloat(field(cols, record, "review_scores_rating")),
		ReviewScores: domain.ReviewScores{
			Accuracy:      parseOptionalFloat(field(cols, record, "review_scores_accuracy")),
			Cleanliness:   parseOptionalFloat(field(cols, record, "review_scores_cleanliness")),
			Checkin:       parseOptionalFloat(field(cols, record, "review_scores_checkin")),
			Communication: parseOptionalFloat(field(cols, record, "review_scores_communication")),
			Location:      parseOptionalFloat(field(cols, record, "review_scores_location")),
			Value:         parseOptionalFloat(field(cols, record, "review_scores_value")),
		},
	}, nil
}

// indexColumns строит отображение имени колонки в ее позицию.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// field достает значение колонки, пустая строка если колонки нет.
func field(cols map[string]int, record []string, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseOptionalFloat - nil для пустых и нечисловых значений.
// У объявлений без отзывов рейтинги в датасете пустые.
func parseOptionalFloat(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &v
}
