package assess_risk

import (
	"context"

	assessRisk "github.com/m04kA/SMC-SchedulingService/internal/usecase/assess_risk"
)

type AssessRiskUseCase interface {
	Execute(ctx context.Context, req *assessRisk.Request) (*assessRisk.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
