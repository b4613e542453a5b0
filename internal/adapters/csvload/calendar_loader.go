package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
)

const dateLayout = "2006-01-02"

// CalendarLoader читает calendar.csv: по одной строке на пару
// (объявление, день).
type CalendarLoader struct {
	logger port.LoggerPort
}

func NewCalendarLoader(logger port.LoggerPort) *CalendarLoader {
	return &CalendarLoader{logger: logger.WithFields(port.Fields{"component": "calendar_loader"})}
}

func (l *CalendarLoader) Load(path string) ([]domain.CalendarEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	entries, skipped, err := l.parse(file)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Calendar loaded", port.Fields{
		"path":    path,
		"loaded":  len(entries),
		"skipped": skipped,
	})
	return entries, nil
}

func (l *CalendarLoader) parse(r io.Reader) ([]domain.CalendarEntry, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read calendar header: %w", err)
	}
	cols := indexColumns(header)

	for _, required := range []string{"listing_id", "date", "available", "price", "minimum_nights", "maximum_nights"} {
		if _, ok := cols[required]; !ok {
			return nil, 0, fmt.Errorf("calendar file is missing required column %q", required)
		}
	}

	var entries []domain.CalendarEntry
	skipped := 0

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read calendar row %d: %w", line, err)
		}

		entry, err := l.parseRow(cols, record)
		if err != nil {
			l.logger.Warn("Skipping malformed calendar row", port.Fields{"line": line, "reason": err.Error()})
			skipped++
			continue
		}

		entries = append(entries, entry)
	}

	return entries, skipped, nil
}

func (l *CalendarLoader) parseRow(cols map[string]int, record []string) (domain.CalendarEntry, error) {
	listingID, err := parseInt64(field(cols, record, "listing_id"))
	if err != nil {
		return domain.CalendarEntry{}, fmt.Errorf("bad listing_id: %w", err)
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(field(cols, record, "date")))
	if err != nil {
		return domain.CalendarEntry{}, fmt.Errorf("bad date: %w", err)
	}

	available, err := parseAvailable(field(cols, record, "available"))
	if err != nil {
		return domain.CalendarEntry{}, err
	}

	price, err := ParsePrice(field(cols, record, "price"))
	if err != nil {
		return domain.CalendarEntry{}, err
	}

	minNights, err := strconv.Atoi(strings.TrimSpace(field(cols, record, "minimum_nights")))
	if err != nil {
		return domain.CalendarEntry{}, fmt.Errorf("bad minimum_nights: %w", err)
	}
	maxNights, err := strconv.Atoi(strings.TrimSpace(field(cols, record, "maximum_nights")))
	if err != nil {
		return domain.CalendarEntry{}, fmt.Errorf("bad maximum_nights: %w", err)
	}
	if minNights > maxNights {
		return domain.CalendarEntry{}, fmt.Errorf("minimum_nights %d > maximum_nights %d", minNights, maxNights)
	}

	return domain.CalendarEntry{
		ListingID:     listingID,
		Date:          domain.Day(date),
		Available:     available,
		Price:         price,
		MinimumNights: minNights,
		MaximumNights: maxNights,
	}, nil
}

// parseAvailable понимает формат датасета: "t"/"f", плюс обычные булевы строки.
func parseAvailable(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "t", "true", "1":
		return true, nil
	case "f", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("unparseable available flag %q", raw)
}
