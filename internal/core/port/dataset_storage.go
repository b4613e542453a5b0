package port

import (
	"availability-service/internal/core/domain"
	"context"
	"time"
)

// DatasetStoragePort - контракт доступа к загруженным таблицам
// listings и calendar. Реализация обязана быть неизменяемой после
// построения: движок запросов читает из нее конкурентно без блокировок.
type DatasetStoragePort interface {
	// ListingByID возвращает domain.ErrListingNotFound, если объявления нет.
	ListingByID(ctx context.Context, listingID int64) (*domain.Listing, error)
	Listings(ctx context.Context) ([]domain.Listing, error)

	// EntriesByStartDate - все записи календаря на конкретную дату,
	// по одной на объявление. Это "якоря" для fan-out сканирования окна.
	EntriesByStartDate(ctx context.Context, date time.Time) ([]domain.CalendarEntry, error)

	// EntriesInWindow - записи календаря объявления в закрытом диапазоне
	// [start, end], отсортированные по дате. Пропущенные дни просто
	// отсутствуют в срезе, их детектирует вызывающая сторона по длине.
	EntriesInWindow(ctx context.Context, listingID int64, start, end time.Time) ([]domain.CalendarEntry, error)

	// ListingCalendarSummary - сводка по календарю одного объявления.
	ListingCalendarSummary(ctx context.Context, listingID int64) (entries, daysAvailable int, first, last time.Time, err error)

	Coverage(ctx context.Context) (domain.CalendarCoverage, error)
}
