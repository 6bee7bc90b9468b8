package assess_risk

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
)

// UseCase use case оценки риска отмены или неявки по записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case оценки риска
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssessRisk: appointment=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		uc.logger.Warn("AssessRisk: invalid appointment id=%d", req.AppointmentID)
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	// 2. Загружаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("AssessRisk: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("AssessRisk: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. История клиента за все время
	history, err := uc.appointmentRepo.GetCustomerHistoryStats(ctx, appt.CustomerID)
	if err != nil {
		uc.logger.Error("AssessRisk: failed to get customer history for customer=%d: %v",
			appt.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer history: %v", ErrInternal, err)
	}

	// 4. Считаем факторы и итоговый балл
	factors := collectFactors(appt, history, uc.timeProvider.Now())
	score := sumFactors(factors)
	level := domain.RiskLevelFromScore(score)

	uc.logger.Info("AssessRisk: appointment=%d, score=%d, level=%s, factors=%d",
		req.AppointmentID, score, level, len(factors))

	// 5. Рекомендации - фиксированная таблица по уровню, не по факторам
	return &Response{
		Level:           level,
		Score:           score,
		Factors:         factors,
		Recommendations: domain.RiskRecommendations[level],
	}, nil
}
