package get_schedule_config

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlackouts(ctx context.Context) (*models.BlackoutListResponse, error)
	ListBuckets(ctx context.Context) (*models.CapacityBucketListResponse, error)
	GetLimitSetting(ctx context.Context) (*models.BookingLimitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
