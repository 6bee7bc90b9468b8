package manage_staff_unavailability

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
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRecordID    = "некорректный ID отметки недоступности"
	msgStaffNotFound      = "сотрудник не найден"
	msgRecordNotFound     = "отметка недоступности не найдена"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// HandleList GET /api/v1/staff/{staffId}/unavailability
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ListStaffUnavailability(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/unavailability - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id}/unavailability - Failed to list: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/unavailability - Listed successfully: staff_id=%d, count=%d",
		staffID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/staff/{staffId}/unavailability
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	var req CreateUnavailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/unavailability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/unavailability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateStaffUnavailability(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/unavailability - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /staff/{id}/unavailability - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /staff/{id}/unavailability - Failed to create: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/unavailability - Created successfully: record_id=%d, staff_id=%d",
		result.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/v1/staff/unavailability/{recordId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordIDStr := vars["recordId"]

	recordID, err := strconv.ParseInt(recordIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff/unavailability/{id} - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	if err := h.service.DeleteStaffUnavailability(r.Context(), recordID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnavailabilityNotFound):
			h.logger.Warn("DELETE /staff/unavailability/{id} - Record not found: record_id=%d", recordID)
			handlers.RespondNotFound(w, msgRecordNotFound)

		default:
			h.logger.Error("DELETE /staff/unavailability/{id} - Failed to delete: record_id=%d, error=%v",
				recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/unavailability/{id} - Deleted successfully: record_id=%d", recordID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseStaffID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	staffIDStr := vars["staffId"]

	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("staff unavailability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return 0, false
	}

	return staffID, true
}
