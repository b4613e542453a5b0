package csvload

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Цены в calendar.csv приходят в валютном формате: "$1,234.00".
// Нормализация изолирована здесь, движок запросов видит только float64.
var priceRegex = regexp.MustCompile(`\$?([\d,]+(?:\.\d{1,2})?)`)

// ParsePrice извлекает числовое значение из валютной строки.
func ParsePrice(raw string) (float64, error) {
	matches := priceRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if len(matches) < 2 {
		return 0, fmt.Errorf("unparseable price %q", raw)
	}

	cleaned := strings.ReplaceAll(matches[1], ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", raw, err)
	}
	return value, nil
}
