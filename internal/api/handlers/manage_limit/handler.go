package manage_limit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные данные запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/schedule/limit
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetLimitSetting(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/limit - Failed to get limit setting: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/limit - Retrieved successfully: enabled=%t, limit=%d",
		result.Enabled, result.DailyBookingLimitPerUser)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSet PUT /api/v1/schedule/limit
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var req models.SetBookingLimitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/limit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetLimitSetting(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/limit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("PUT /schedule/limit - Failed to set limit: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/limit - Set successfully: enabled=%t, limit=%d",
		result.Enabled, result.DailyBookingLimitPerUser)
	handlers.RespondJSON(w, http.StatusOK, result)
}
