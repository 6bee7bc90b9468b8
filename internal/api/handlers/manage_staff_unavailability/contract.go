package manage_staff_unavailability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListStaffUnavailability(ctx context.Context, staffID int64) (*models.UnavailabilityListResponse, error)
	CreateStaffUnavailability(ctx context.Context, req *models.CreateUnavailabilityRequest) (*models.UnavailabilityResponse, error)
	DeleteStaffUnavailability(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
