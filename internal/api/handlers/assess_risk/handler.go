package assess_risk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	assessRisk "github.com/m04kA/SMC-SchedulingService/internal/usecase/assess_risk"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
)

type Handler struct {
	useCase AssessRiskUseCase
	logger  Logger
}

func NewHandler(useCase AssessRiskUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/risk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/risk - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assessRisk.Request{AppointmentID: appointmentID})
	if err != nil {
		switch {
		case errors.Is(err, assessRisk.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id}/risk - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, assessRisk.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{id}/risk - Invalid input: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("GET /appointments/{id}/risk - Failed to assess risk: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id}/risk - Risk assessed successfully: appointment_id=%d, level=%s, score=%d",
		appointmentID, result.Level, result.Score)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(appointmentID, result))
}
