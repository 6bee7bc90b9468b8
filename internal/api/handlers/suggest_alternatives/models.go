package suggest_alternatives

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	suggestAlternatives "github.com/m04kA/SMC-SchedulingService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AlternativesResponse HTTP response model
type AlternativesResponse struct {
	PreferredDate string                `json:"preferredDate"`
	PreferredTime string                `json:"preferredTime"`
	Alternatives  []AlternativeResponse `json:"alternatives"`
}

// AlternativeResponse один альтернативный слот
type AlternativeResponse struct {
	Date              string `json:"date"`
	Time              string `json:"time"`
	AvailableCapacity int    `json:"availableCapacity"`
	Description       string `json:"description"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *suggestAlternatives.Request, resp *suggestAlternatives.Response) *AlternativesResponse {
	alternatives := make([]AlternativeResponse, len(resp.Alternatives))
	for i, alt := range resp.Alternatives {
		alternatives[i] = AlternativeResponse{
			Date:              alt.Date.Format(domain.DateFormat),
			Time:              alt.Time.String(),
			AvailableCapacity: alt.AvailableCapacity,
			Description:       alt.Description,
		}
	}

	return &AlternativesResponse{
		PreferredDate: req.PreferredDate.Format(domain.DateFormat),
		PreferredTime: req.PreferredTime.String(),
		Alternatives:  alternatives,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr string, daysAhead int) (*suggestAlternatives.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &suggestAlternatives.Request{
		PreferredDate: date,
		PreferredTime: types.TimeString(timeStr),
		DaysAhead:     daysAhead,
	}, nil
}
