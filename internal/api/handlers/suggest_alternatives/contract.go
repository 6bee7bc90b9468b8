package suggest_alternatives

import (
	"context"

	suggestAlternatives "github.com/m04kA/SMC-SchedulingService/internal/usecase/suggest_alternatives"
)

type SuggestAlternativesUseCase interface {
	Execute(ctx context.Context, req *suggestAlternatives.Request) (*suggestAlternatives.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
