package rest

import (
	"io"
	"net/http"

	"availability-service/internal/contextkeys"
	"availability-service/internal/contracts"
	"availability-service/internal/core/domain"
	"availability-service/internal/core/port"
	"availability-service/internal/core/port/usecases_port"

	"encoding/json"
	"time"
)

type AvailabilityHandler struct {
	getAvailabilityUC usecases_port.GetAvailabilityUseCase
}

func NewAvailabilityHandler(getAvailabilityUC usecases_port.GetAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{getAvailabilityUC: getAvailabilityUC}
}

// GetAvailability обрабатывает GET /api/v1/availability
// Параметры: startDate=YYYY-MM-DD, nDays, nPeople.
// Синтаксически битые параметры - 400; пустой результат - нормальный 200.
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()

	startDate, err := parseDateParam(query.Get("startDate"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "startDate must be a date in YYYY-MM-DD format")
		return
	}

	nDays, err := parseIntParam(query.Get("nDays"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "nDays must be an integer")
		return
	}

	nPeople, err := parseIntParam(query.Get("nPeople"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "nPeople must be an integer")
		return
	}

	h.execute(w, r, logger, domain.AvailabilityQuery{
		StartOfStay: startDate,
		NDays:       nDays,
		NPeople:     nPeople,
	})
}

// PostAvailability обрабатывает POST /api/v1/availability
// Тело запроса проверяется по JSON-схеме до десериализации в DTO.
func (h *AvailabilityHandler) PostAvailability(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := contracts.Validate("availability_query", body); err != nil {
		logger.Warn("Availability request failed schema validation", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "request does not match the availability_query contract: "+err.Error())
		return
	}

	var req AvailabilityQueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "failed to decode request body")
		return
	}

	// формат даты уже проверен схемой
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "start_date must be a date in YYYY-MM-DD format")
		return
	}

	h.execute(w, r, logger, domain.AvailabilityQuery{
		StartOfStay: startDate,
		NDays:       req.NDays,
		NPeople:     req.NPeople,
	})
}

func (h *AvailabilityHandler) execute(w http.ResponseWriter, r *http.Request, logger port.LoggerPort, query domain.AvailabilityQuery) {
	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "GetAvailability",
		"n_days":   query.NDays,
		"n_people": query.NPeople,
	})
	handlerLogger.Debug("Processing availability request", nil)

	results, err := h.getAvailabilityUC.Execute(r.Context(), query)
	if err != nil {
		handlerLogger.Error("Use case returned an error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, toAvailabilityResponse(results))
}
