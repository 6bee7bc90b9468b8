package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDailyLimitReached  = "достигнут дневной лимит записей"
	msgDateBlackedOut     = "дата заблокирована для записи"
	msgClosedDay          = "бизнес закрыт в выбранную дату"
	msgOutsideHours       = "время вне рабочих часов"
	msgCapacityFull       = "выбранный временной слот заполнен"
	msgInvalidRequest     = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDailyLimitReached):
			h.logger.Warn("POST /appointments - Daily limit reached: customer_id=%d, date=%s", customerID, req.Date)
			handlers.RespondConflict(w, msgDailyLimitReached)

		case errors.Is(err, createBooking.ErrCapacityFull):
			h.logger.Warn("POST /appointments - Capacity full: customer_id=%d, date=%s, time=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgCapacityFull)

		case errors.Is(err, createBooking.ErrDateBlackedOut):
			h.logger.Warn("POST /appointments - Date blacked out: customer_id=%d, date=%s", customerID, req.Date)
			handlers.RespondBadRequest(w, msgDateBlackedOut)

		case errors.Is(err, createBooking.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: customer_id=%d, date=%s", customerID, req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: customer_id=%d, date=%s, time=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, customer_id=%d",
		result.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
