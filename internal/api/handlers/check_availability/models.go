package check_availability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Bookable bool            `json:"bookable"`
	Reason   *ReasonResponse `json:"reason,omitempty"`
}

// ReasonResponse причина недоступности слота
type ReasonResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *checkAvailability.Request, resp *checkAvailability.Response) *AvailabilityResponse {
	response := &AvailabilityResponse{
		Date:     req.Date.Format(domain.DateFormat),
		Time:     req.Time.String(),
		Bookable: resp.Bookable,
	}

	if resp.Reason != nil {
		response.Reason = &ReasonResponse{
			Kind:    string(resp.Reason.Kind),
			Message: resp.Reason.Message,
		}
	}

	return response
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date: date,
		Time: types.TimeString(timeStr),
	}, nil
}
