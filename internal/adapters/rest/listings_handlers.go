package rest

import (
	"net/http"

	"availability-service/internal/contextkeys"
	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
	"availability-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingsHandler struct {
	getListingDetailsUC usecases_port.GetListingDetailsUseCase
}

func NewListingsHandler(getListingDetailsUC usecases_port.GetListingDetailsUseCase) *ListingsHandler {
	return &ListingsHandler{getListingDetailsUC: getListingDetailsUC}
}

// GetListingDetails обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingsHandler) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingID, err := parseIntParam(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "listingID must be an integer")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetListingDetails",
		"listing_id": listingID,
	})
	handlerLogger.Debug("Processing listing details request", nil)

	view, err := h.getListingDetailsUC.Execute(r.Context(), int64(listingID))
	if err == domain.ErrListingNotFound {
		WriteJSONError(w, http.StatusNotFound, "listing not found")
		return
	}
	if err != nil {
		handlerLogger.Error("Use case returned an error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingDetailsResponse(view))
}
