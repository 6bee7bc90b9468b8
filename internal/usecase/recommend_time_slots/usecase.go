package recommend_time_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase use case рекомендаций по временным слотам на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	grid            domain.SlotGrid
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	grid domain.SlotGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		grid:            grid,
		logger:          logger,
	}
}

// Execute выполняет use case рекомендаций по слотам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecommendTimeSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecommendTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем сетку слотов. Пустая сетка - пустой ответ.
	slots, err := uc.grid.Slots()
	if err != nil {
		uc.logger.Error("RecommendTimeSlots: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		uc.logger.Info("RecommendTimeSlots: slot grid is empty")
		return &Response{Slots: []SlotScore{}}, nil
	}

	// 3. Загружаем пул сотрудников. Без сотрудников каждый слот
	// недоступен, отвечаем пустым списком.
	staff, err := uc.staffRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Error("RecommendTimeSlots: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	if len(staff) == 0 {
		uc.logger.Info("RecommendTimeSlots: staff pool is empty")
		return &Response{Slots: []SlotScore{}}, nil
	}

	// 4. Отметки недоступности и записи на дату
	unavailableIDs, err := uc.staffRepo.ListUnavailableStaffIDs(ctx, req.Date)
	if err != nil {
		uc.logger.Error("RecommendTimeSlots: failed to list unavailable staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list unavailable staff: %v", ErrInternal, err)
	}
	unavailable := make(map[int64]bool, len(unavailableIDs))
	for _, id := range unavailableIDs {
		unavailable[id] = true
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("RecommendTimeSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Скоринг каждого слота сетки
	scored := make([]SlotScore, 0, len(slots))
	for _, slot := range slots {
		freeStaff := countFreeStaff(staff, unavailable, appointments, slot)
		bookings := countBookingsAt(appointments, slot)
		scored = append(scored, scoreSlot(slot, freeStaff, bookings))
	}

	// 6. Ранжируем: недоступные слоты всегда после доступных
	ranked := rankSlots(scored, domain.MaxSlotRecommendations)

	uc.logger.Info("RecommendTimeSlots: returning %d of %d slots for %s",
		len(ranked), len(scored), req.Date.Format(domain.DateFormat))

	return &Response{Slots: ranked}, nil
}
