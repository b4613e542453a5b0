package usecases_port

import (
	"availability-service/internal/core/domain"
	"context"
)

type GetListingDetailsUseCase interface {
	Execute(ctx context.Context, listingID int64) (*domain.ListingDetailsView, error)
}
