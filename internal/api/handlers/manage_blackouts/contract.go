package manage_blackouts

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlackouts(ctx context.Context) (*models.BlackoutListResponse, error)
	CreateBlackout(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error)
	DeleteBlackout(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
