package usecase

import (
	"availability-service/internal/contextkeys"
	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
	"context"
)

type GetListingDetailsUseCase struct {
	storage port.DatasetStoragePort
}

func NewGetListingDetailsUseCase(storage port.DatasetStoragePort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{storage: storage}
}

// Execute возвращает карточку объявления вместе со сводкой по его календарю.
func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, listingID int64) (*domain.ListingDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	listing, err := uc.storage.ListingByID(ctx, listingID)
	if err != nil {
		if err == domain.ErrListingNotFound {
			ucLogger.Warn("Listing not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	entries, daysAvailable, first, last, err := uc.storage.ListingCalendarSummary(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error for calendar summary", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)

	return &domain.ListingDetailsView{
		Listing:         *listing,
		CalendarEntries: entries,
		DaysAvailable:   daysAvailable,
		FirstDate:       first,
		LastDate:        last,
	}, nil
}
