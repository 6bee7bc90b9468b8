package check_booking_limit

import (
	"context"

	checkBookingLimit "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_booking_limit"
)

type CheckBookingLimitUseCase interface {
	Execute(ctx context.Context, req *checkBookingLimit.Request) (*checkBookingLimit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
