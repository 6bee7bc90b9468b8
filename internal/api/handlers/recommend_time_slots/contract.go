package recommend_time_slots

import (
	"context"

	recommendTimeSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/recommend_time_slots"
)

type RecommendTimeSlotsUseCase interface {
	Execute(ctx context.Context, req *recommendTimeSlots.Request) (*recommendTimeSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
