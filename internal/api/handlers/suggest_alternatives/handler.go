package suggest_alternatives

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	suggestAlternatives "github.com/m04kA/SMC-SchedulingService/internal/usecase/suggest_alternatives"
)

const (
	msgMissingDate      = "дата обязательна"
	msgMissingTime      = "время обязательно"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDaysAhead = "некорректный горизонт поиска"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase SuggestAlternativesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestAlternativesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/alternatives
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM),
// daysAhead (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /alternatives - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /alternatives - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	daysAhead := 0
	if daysAheadStr := r.URL.Query().Get("daysAhead"); daysAheadStr != "" {
		parsed, err := strconv.Atoi(daysAheadStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /alternatives - Invalid daysAhead: %s", daysAheadStr)
			handlers.RespondBadRequest(w, msgInvalidDaysAhead)
			return
		}
		daysAhead = parsed
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, timeStr, daysAhead)
	if err != nil {
		h.logger.Warn("GET /alternatives - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestAlternatives.ErrInvalidInput):
			h.logger.Warn("GET /alternatives - Invalid input: date=%s, time=%s, error=%v", dateStr, timeStr, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /alternatives - Failed to suggest alternatives: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /alternatives - Suggested successfully: date=%s, time=%s, alternatives_count=%d",
		dateStr, timeStr, len(result.Alternatives))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
