package recommend_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	recommendStaff "github.com/m04kA/SMC-SchedulingService/internal/usecase/recommend_staff"
)

const (
	msgMissingDate       = "дата обязательна"
	msgMissingTime       = "время обязательно"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidRequest    = "некорректные параметры запроса"
)

type Handler struct {
	useCase RecommendStaffUseCase
	logger  Logger
}

func NewHandler(useCase RecommendStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/recommendations/staff
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM),
// serviceId (optional), customerId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /recommendations/staff - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /recommendations/staff - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	serviceID, err := parseOptionalID(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /recommendations/staff - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	customerID, err := parseOptionalID(r, "customerId")
	if err != nil {
		h.logger.Warn("GET /recommendations/staff - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, timeStr, serviceID, customerID)
	if err != nil {
		h.logger.Warn("GET /recommendations/staff - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, recommendStaff.ErrInvalidInput):
			h.logger.Warn("GET /recommendations/staff - Invalid input: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /recommendations/staff - Failed to recommend staff: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /recommendations/staff - Recommended successfully: date=%s, time=%s, staff_count=%d",
		dateStr, timeStr, len(result.Recommendations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}

// parseOptionalID извлекает опциональный положительный ID из query
func parseOptionalID(r *http.Request, name string) (*int64, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errors.New("id must be positive")
	}

	return &id, nil
}
