package suggest_alternatives

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case подбора альтернативных слотов вместо отклоненного
type UseCase struct {
	appointmentRepo AppointmentRepository
	blackoutRepo    BlackoutRepository
	capacityRepo    CapacityRepository
	grid            domain.SlotGrid
	closedWeekdays  domain.ClosedWeekdays
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blackoutRepo BlackoutRepository,
	capacityRepo CapacityRepository,
	grid domain.SlotGrid,
	closedWeekdays domain.ClosedWeekdays,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blackoutRepo:    blackoutRepo,
		capacityRepo:    capacityRepo,
		grid:            grid,
		closedWeekdays:  closedWeekdays,
		logger:          logger,
	}
}

// Execute выполняет use case подбора альтернатив
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestAlternatives: date=%s, time=%s, daysAhead=%d",
		req.PreferredDate.Format(domain.DateFormat), req.PreferredTime, req.DaysAhead)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestAlternatives: validation failed: %v", err)
		return nil, err
	}

	daysAhead := req.DaysAhead
	if daysAhead == 0 {
		daysAhead = domain.DefaultAlternativeDaysAhead
	}

	// 2. Загружаем блэкауты и бакеты один раз на весь горизонт поиска
	blackouts, err := uc.blackoutRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SuggestAlternatives: failed to list blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to list blackouts: %v", ErrInternal, err)
	}

	buckets, err := uc.capacityRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("SuggestAlternatives: failed to list capacity buckets: %v", err)
		return nil, fmt.Errorf("%w: failed to list capacity buckets: %v", ErrInternal, err)
	}

	// 3. Перебираем дни, начиная с запрошенной даты. Первый день,
	// давший хотя бы одного кандидата, закрывает поиск.
	for offset := 0; offset <= daysAhead; offset++ {
		date := req.PreferredDate.AddDate(0, 0, offset)

		appointments, err := uc.appointmentRepo.GetByDate(ctx, date)
		if err != nil {
			uc.logger.Error("SuggestAlternatives: failed to get appointments for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// Запрошенное время исключаем только на исходной дате
		skipTime := ptr.Ptr(req.PreferredTime)
		if offset > 0 {
			skipTime = nil
		}

		candidates, err := collectDayCandidates(date, skipTime, uc.grid, blackouts, buckets, appointments, uc.closedWeekdays)
		if err != nil {
			uc.logger.Error("SuggestAlternatives: failed to collect candidates: %v", err)
			return nil, fmt.Errorf("%w: failed to collect candidates: %v", ErrInternal, err)
		}

		if len(candidates) == 0 {
			continue
		}

		// 4. Ранжируем по занятости и обрезаем до лимита
		ranked := rankCandidates(candidates, domain.MaxAlternatives)

		alternatives := make([]Alternative, 0, len(ranked))
		for _, c := range ranked {
			alternatives = append(alternatives, Alternative{
				Date:              c.date,
				Time:              c.slot,
				AvailableCapacity: c.available,
				Description:       describeOffset(offset),
			})
		}

		uc.logger.Info("SuggestAlternatives: found %d alternatives on %s",
			len(alternatives), date.Format(domain.DateFormat))

		return &Response{Alternatives: alternatives}, nil
	}

	uc.logger.Info("SuggestAlternatives: no alternatives within %d days of %s",
		daysAhead, req.PreferredDate.Format(domain.DateFormat))

	return &Response{Alternatives: []Alternative{}}, nil
}
