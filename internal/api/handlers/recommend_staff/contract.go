package recommend_staff

import (
	"context"

	recommendStaff "github.com/m04kA/SMC-SchedulingService/internal/usecase/recommend_staff"
)

type RecommendStaffUseCase interface {
	Execute(ctx context.Context, req *recommendStaff.Request) (*recommendStaff.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
