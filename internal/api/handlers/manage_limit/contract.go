package manage_limit

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetLimitSetting(ctx context.Context) (*models.BookingLimitResponse, error)
	SetLimitSetting(ctx context.Context, req *models.SetBookingLimitRequest) (*models.BookingLimitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
