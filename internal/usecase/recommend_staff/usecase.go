package recommend_staff

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case подбора сотрудников для кандидатной записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case подбора сотрудников
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecommendStaff: date=%s, time=%s",
		req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecommendStaff: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем пул сотрудников. Пустой пул - пустой ответ, не ошибка.
	staff, err := uc.staffRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Error("RecommendStaff: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	if len(staff) == 0 {
		uc.logger.Info("RecommendStaff: staff pool is empty")
		return &Response{Recommendations: []StaffScore{}}, nil
	}

	// 3. Отметки личной недоступности на дату
	unavailableIDs, err := uc.staffRepo.ListUnavailableStaffIDs(ctx, req.Date)
	if err != nil {
		uc.logger.Error("RecommendStaff: failed to list unavailable staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list unavailable staff: %v", ErrInternal, err)
	}
	unavailable := make(map[int64]bool, len(unavailableIDs))
	for _, id := range unavailableIDs {
		unavailable[id] = true
	}

	// 4. Все не-отмененные записи на дату: и загрузка дня, и конфликты
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("RecommendStaff: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	recentSince := uc.timeProvider.Now().AddDate(0, -domain.RecentWindowMonths, 0)

	// 5. Скоринг каждого сотрудника. Вето (личная недоступность или
	// конфликтующая запись на это же время) исключает из выдачи.
	scores := make([]StaffScore, 0, len(staff))
	for _, profile := range staff {
		if unavailable[profile.ID] {
			uc.logger.Info("RecommendStaff: staff id=%d is marked unavailable on %s",
				profile.ID, req.Date.Format(domain.DateFormat))
			continue
		}
		if hasConflictAt(appointments, profile.ID, req.Time) {
			uc.logger.Info("RecommendStaff: staff id=%d has a conflicting appointment at %s",
				profile.ID, req.Time)
			continue
		}

		stats, err := uc.gatherStats(ctx, req, profile.ID, appointments, recentSince)
		if err != nil {
			uc.logger.Error("RecommendStaff: failed to gather stats for staff id=%d: %v", profile.ID, err)
			return nil, fmt.Errorf("%w: failed to gather staff stats: %v", ErrInternal, err)
		}

		scores = append(scores, scoreStaff(profile, stats))
	}

	// 6. Ранжируем по убыванию балла; порядок входа стабилен при равенстве
	ranked := rankScores(scores, domain.MaxStaffRecommendations)

	uc.logger.Info("RecommendStaff: returning %d of %d candidates", len(ranked), len(staff))

	return &Response{Recommendations: ranked}, nil
}

// gatherStats собирает входы скоринга одного сотрудника
func (uc *UseCase) gatherStats(
	ctx context.Context,
	req *Request,
	staffID int64,
	appointments []*domain.Appointment,
	recentSince time.Time,
) (staffStats, error) {
	stats := staffStats{
		appointmentsThatDay: countAssignedThatDay(appointments, staffID),
	}

	if req.ServiceID != nil {
		count, err := uc.appointmentRepo.CountCompletedByStaffAndService(ctx, staffID, *req.ServiceID)
		if err != nil {
			return staffStats{}, err
		}
		stats.completedOfService = ptr.Ptr(count)
	}

	if req.CustomerID != nil {
		count, err := uc.appointmentRepo.CountCompletedByStaffAndCustomer(ctx, staffID, *req.CustomerID)
		if err != nil {
			return staffStats{}, err
		}
		stats.completedWithClient = ptr.Ptr(count)
	}

	allTime, err := uc.appointmentRepo.GetStaffCompletionStats(ctx, staffID)
	if err != nil {
		return staffStats{}, err
	}
	stats.allTime = allTime

	recent, err := uc.appointmentRepo.GetStaffRecentCompletionStats(ctx, staffID, recentSince)
	if err != nil {
		return staffStats{}, err
	}
	stats.recent = recent

	return stats, nil
}
