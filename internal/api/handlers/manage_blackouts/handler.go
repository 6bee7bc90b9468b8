package manage_blackouts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBlackoutID  = "некорректный ID блэкаута"
	msgNotFound           = "блэкаут не найден"
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

// HandleList GET /api/v1/schedule/blackouts
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlackouts(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/blackouts - Failed to list blackouts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/blackouts - Listed successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/schedule/blackouts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /schedule/blackouts - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateBlackout(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/blackouts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /schedule/blackouts - Failed to create blackout: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/blackouts - Created successfully: blackout_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/v1/schedule/blackouts/{blackoutId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blackoutIDStr := vars["blackoutId"]

	blackoutID, err := strconv.ParseInt(blackoutIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/blackouts/{id} - Invalid blackout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	if err := h.service.DeleteBlackout(r.Context(), blackoutID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlackoutNotFound):
			h.logger.Warn("DELETE /schedule/blackouts/{id} - Blackout not found: blackout_id=%d", blackoutID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /schedule/blackouts/{id} - Failed to delete blackout: blackout_id=%d, error=%v",
				blackoutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/blackouts/{id} - Deleted successfully: blackout_id=%d", blackoutID)
	w.WriteHeader(http.StatusNoContent)
}
