package domain

import "time"

// AvailabilityQuery - параметры одного запроса доступности.
// Не сохраняется, живет только в рамках запроса.
type AvailabilityQuery struct {
	StartOfStay time.Time
	NDays       int
	NPeople     int
}

// Window возвращает закрытый диапазон дат [StartOfStay, StartOfStay+NDays-1].
func (q AvailabilityQuery) Window() (time.Time, time.Time) {
	start := Day(q.StartOfStay)
	return start, start.AddDate(0, 0, q.NDays-1)
}

// AvailabilityResult - одно подходящее объявление с производной ценой.
type AvailabilityResult struct {
	ListingID    int64
	Name         string
	Neighbourhood string
	PropertyType string
	Accommodates int

	Latitude  float64
	Longitude float64
	Geohash   string // для группировки маркеров на карте

	Rating *float64

	TotalPrice        float64 // сумма посуточных цен за все NDays
	PricePerDayPerson float64 // TotalPrice / (NDays * NPeople)
}

// ListingDetailsView - карточка объявления вместе со сводкой по его календарю.
type ListingDetailsView struct {
	Listing Listing

	CalendarEntries int
	DaysAvailable   int
	FirstDate       time.Time
	LastDate        time.Time
}

// FilterOptions - словари для виджетов дашборда.
type FilterOptions struct {
	Neighbourhoods  []string
	PropertyTypes   []string
	MaxAccommodates int
}

// DatasetStats - сводка по загруженному датасету.
type DatasetStats struct {
	ListingCount int
	Coverage     CalendarCoverage
}
