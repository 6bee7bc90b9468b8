package manage_blackouts

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// CreateBlackoutRequest HTTP request model: дата в формате YYYY-MM-DD
type CreateBlackoutRequest struct {
	Date      *string  `json:"date,omitempty"`
	Recurring bool     `json:"recurring"`
	Weekdays  []string `json:"weekdays,omitempty"`
	StartTime *string  `json:"startTime,omitempty"`
	EndTime   *string  `json:"endTime,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlackoutRequest) ToServiceRequest() (*models.CreateBlackoutRequest, error) {
	req := &models.CreateBlackoutRequest{
		Recurring: r.Recurring,
		Weekdays:  r.Weekdays,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reason:    r.Reason,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
