package rest

import (
	"net/http"

	"availability-service/internal/contextkeys"
	"availability-service/internal/core/port"
	"availability-service/internal/core/port/usecases_port"
)

type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	getDatasetStatsUC  usecases_port.GetDatasetStatsUseCase
}

func NewFilterHandler(getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	getDatasetStatsUC usecases_port.GetDatasetStatsUseCase) *FilterHandler {
	return &FilterHandler{
		getFilterOptionsUC: getFilterOptionsUC,
		getDatasetStatsUC:  getDatasetStatsUC,
	}
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "GetFilterOptions"})
	handlerLogger.Debug("Processing filter options request", nil)

	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case returned an error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, FilterOptionsResponse{
		Neighbourhoods:  options.Neighbourhoods,
		PropertyTypes:   options.PropertyTypes,
		MaxAccommodates: options.MaxAccommodates,
	})
}

// GetDatasetStats обрабатывает GET /api/v1/stats
func (h *FilterHandler) GetDatasetStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "GetDatasetStats"})
	handlerLogger.Debug("Processing dataset stats request", nil)

	stats, err := h.getDatasetStatsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case returned an error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, toDatasetStatsResponse(stats))
}
