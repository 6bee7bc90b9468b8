package manage_staff_unavailability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// CreateUnavailabilityRequest HTTP request model: дата в формате YYYY-MM-DD
type CreateUnavailabilityRequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateUnavailabilityRequest) ToServiceRequest(staffID int64) (*models.CreateUnavailabilityRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateUnavailabilityRequest{
		StaffID: staffID,
		Date:    date,
		Reason:  r.Reason,
	}, nil
}
