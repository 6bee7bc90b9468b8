package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_availability"
)

const (
	msgMissingDate    = "дата обязательна"
	msgMissingTime    = "время обязательно"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /availability - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: date=%s, time=%s, error=%v", dateStr, timeStr, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to check availability: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Checked successfully: date=%s, time=%s, bookable=%t",
		dateStr, timeStr, result.Bookable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
