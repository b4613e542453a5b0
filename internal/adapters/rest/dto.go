package rest

import (
	"fmt"

	"availability-service/internal/core/domain"
)

// AvailabilityQueryRequest - тело POST /api/v1/availability.
// Валидируется по JSON-схеме availability_query.
type AvailabilityQueryRequest struct {
	StartDate string `json:"start_date"`
	NDays     int    `json:"n_days"`
	NPeople   int    `json:"n_people"`
}

// AvailabilityResultResponse - строка результата для дашборда.
// Label и Geohash нужны рендереру карты, остальное - гистограмме и таблице.
type AvailabilityResultResponse struct {
	ListingID     int64    `json:"listing_id"`
	Name          string   `json:"name"`
	Neighbourhood string   `json:"neighbourhood"`
	PropertyType  string   `json:"property_type"`
	Accommodates  int      `json:"accommodates"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Geohash       string   `json:"geohash"`
	Rating        *float64 `json:"rating"`

	TotalPrice        float64 `json:"total_price"`
	PricePerDayPerson float64 `json:"price_per_day_person"`
	Label             string  `json:"label"`
}

type AvailabilityResponse struct {
	Results []AvailabilityResultResponse `json:"results"`
	Total   int                          `json:"total"`
}

type ReviewScoresResponse struct {
	Accuracy      *float64 `json:"accuracy"`
	Cleanliness   *float64 `json:"cleanliness"`
	Checkin       *float64 `json:"checkin"`
	Communication *float64 `json:"communication"`
	Location      *float64 `json:"location"`
	Value         *float64 `json:"value"`
}

// ListingDetailsResponse - карточка объявления со сводкой календаря.
type ListingDetailsResponse struct {
	ListingID     int64                `json:"listing_id"`
	Name          string               `json:"name"`
	Neighbourhood string               `json:"neighbourhood"`
	PropertyType  string               `json:"property_type"`
	Accommodates  int                  `json:"accommodates"`
	Bedrooms      float64              `json:"bedrooms"`
	Bathrooms     float64              `json:"bathrooms"`
	Latitude      float64              `json:"latitude"`
	Longitude     float64              `json:"longitude"`
	Rating        *float64             `json:"rating"`
	ReviewScores  ReviewScoresResponse `json:"review_scores"`

	CalendarEntries int    `json:"calendar_entries"`
	DaysAvailable   int    `json:"days_available"`
	FirstDate       string `json:"first_date,omitempty"`
	LastDate        string `json:"last_date,omitempty"`
}

type FilterOptionsResponse struct {
	Neighbourhoods  []string `json:"neighbourhoods"`
	PropertyTypes   []string `json:"property_types"`
	MaxAccommodates int      `json:"max_accommodates"`
}

type DatasetStatsResponse struct {
	ListingCount    int    `json:"listing_count"`
	CalendarEntries int    `json:"calendar_entries"`
	FirstDate       string `json:"first_date,omitempty"`
	LastDate        string `json:"last_date,omitempty"`
}

func toAvailabilityResponse(results []domain.AvailabilityResult) AvailabilityResponse {
	out := make([]AvailabilityResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, AvailabilityResultResponse{
			ListingID:         r.ListingID,
			Name:              r.Name,
			Neighbourhood:     r.Neighbourhood,
			PropertyType:      r.PropertyType,
			Accommodates:      r.Accommodates,
			Latitude:          r.Latitude,
			Longitude:         r.Longitude,
			Geohash:           r.Geohash,
			Rating:            r.Rating,
			TotalPrice:        r.TotalPrice,
			PricePerDayPerson: r.PricePerDayPerson,
			Label:             fmt.Sprintf("%s ($%.2f per person per day)", r.Name, r.PricePerDayPerson),
		})
	}
	return AvailabilityResponse{Results: out, Total: len(out)}
}

func toListingDetailsResponse(view *domain.ListingDetailsView) ListingDetailsResponse {
	resp := ListingDetailsResponse{
		ListingID:     view.Listing.ID,
		Name:          view.Listing.Name,
		Neighbourhood: view.Listing.Neighbourhood,
		PropertyType:  view.Listing.PropertyType,
		Accommodates:  view.Listing.Accommodates,
		Bedrooms:      view.Listing.Bedrooms,
		Bathrooms:     view.Listing.Bathrooms,
		Latitude:      view.Listing.Latitude,
		Longitude:     view.Listing.Longitude,
		Rating:        view.Listing.Rating,
		ReviewScores: ReviewScoresResponse{
			Accuracy:      view.Listing.ReviewScores.Accuracy,
			Cleanliness:   view.Listing.ReviewScores.Cleanliness,
			Checkin:       view.Listing.ReviewScores.Checkin,
			Communication: view.Listing.ReviewScores.Communication,
			Location:      view.Listing.ReviewScores.Location,
			Value:         view.Listing.ReviewScores.Value,
		},
		CalendarEntries: view.CalendarEntries,
		DaysAvailable:   view.DaysAvailable,
	}
	if view.CalendarEntries > 0 {
		resp.FirstDate = view.FirstDate.Format(dateLayout)
		resp.LastDate = view.LastDate.Format(dateLayout)
	}
	return resp
}

func toDatasetStatsResponse(stats *domain.DatasetStats) DatasetStatsResponse {
	resp := DatasetStatsResponse{
		ListingCount:    stats.ListingCount,
		CalendarEntries: stats.Coverage.EntryCount,
	}
	if stats.Coverage.EntryCount > 0 {
		resp.FirstDate = stats.Coverage.FirstDate.Format(dateLayout)
		resp.LastDate = stats.Coverage.LastDate.Format(dateLayout)
	}
	return resp
}
