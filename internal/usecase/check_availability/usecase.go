package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase use case проверки доступности слота для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	blackoutRepo    BlackoutRepository
	capacityRepo    CapacityRepository
	closedWeekdays  domain.ClosedWeekdays
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blackoutRepo BlackoutRepository,
	capacityRepo CapacityRepository,
	closedWeekdays domain.ClosedWeekdays,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blackoutRepo:    blackoutRepo,
		capacityRepo:    capacityRepo,
		closedWeekdays:  closedWeekdays,
		logger:          logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, time=%s",
		req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем блэкауты
	blackouts, err := uc.blackoutRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to list blackouts: %v", ErrInternal, err)
	}

	// 3. Загружаем активные бакеты вместимости
	buckets, err := uc.capacityRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list capacity buckets: %v", err)
		return nil, fmt.Errorf("%w: failed to list capacity buckets: %v", ErrInternal, err)
	}

	// 4. Загружаем записи на дату (без отмененных)
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Применяем правила доступности
	bookable, reason := resolveAvailability(req.Date, req.Time, blackouts, buckets, appointments, uc.closedWeekdays)

	if bookable {
		uc.logger.Info("CheckAvailability: date=%s, time=%s is bookable",
			req.Date.Format(domain.DateFormat), req.Time)
	} else {
		uc.logger.Info("CheckAvailability: date=%s, time=%s rejected: kind=%s",
			req.Date.Format(domain.DateFormat), req.Time, reason.Kind)
	}

	return &Response{
		Bookable: bookable,
		Reason:   reason,
	}, nil
}
