package domain

import "time"

// CalendarEntry - доступность и цена одного объявления на один день.
// На пару (ListingID, Date) существует не более одной записи.
type CalendarEntry struct {
	ListingID int64
	Date      time.Time // нормализована к полуночи UTC
	Available bool
	Price     float64 // цена за ночь, уже без валютного форматирования

	// Ограничения на длину брони, действующие для заездов в этот день.
	// MinimumNights <= MaximumNights.
	MinimumNights int
	MaximumNights int
}

// CalendarCoverage - границы загруженного календаря.
type CalendarCoverage struct {
	FirstDate  time.Time
	LastDate   time.Time
	EntryCount int
}

// Day обрезает время до полуночи UTC. Все даты календаря и запросов
// приводятся через эту функцию, иначе ключи по датам не совпадут.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
