package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	limitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/limitsetting"
)

// UseCase use case создания записи на прием
type UseCase struct {
	appointmentRepo AppointmentRepository
	blackoutRepo    BlackoutRepository
	capacityRepo    CapacityRepository
	limitRepo       LimitSettingRepository
	txManager       TransactionManager
	closedWeekdays  domain.ClosedWeekdays
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blackoutRepo BlackoutRepository,
	capacityRepo CapacityRepository,
	limitRepo LimitSettingRepository,
	txManager TransactionManager,
	closedWeekdays domain.ClosedWeekdays,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blackoutRepo:    blackoutRepo,
		capacityRepo:    capacityRepo,
		limitRepo:       limitRepo,
		txManager:       txManager,
		closedWeekdays:  closedWeekdays,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка лимита, пересчет вместимости и вставка выполняются в одной
// сериализуемой транзакции: две конкурентные записи на последнее место
// не могут обе пройти проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 2. Все проверки и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Настройка дневного лимита; отсутствие - лимит выключен
		setting, err := uc.limitRepo.GetActive(txCtx)
		if err != nil && !errors.Is(err, limitRepo.ErrSettingNotFound) {
			uc.logger.Error("CreateBooking: failed to get limit setting: %v", err)
			return fmt.Errorf("%w: failed to get limit setting: %v", ErrInternal, err)
		}

		// 2.2. Проверка дневного лимита клиента
		if setting.Enabled() {
			count, err := uc.appointmentRepo.CountActiveByCustomerOnDate(txCtx, req.CustomerID, req.Date)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to count customer appointments: %v", err)
				return fmt.Errorf("%w: failed to count customer appointments: %v", ErrInternal, err)
			}
			if count >= setting.DailyBookingLimitPerUser {
				uc.logger.Warn("CreateBooking: customer=%d reached daily limit %d",
					req.CustomerID, setting.DailyBookingLimitPerUser)
				return ErrDailyLimitReached
			}
		}

		// 2.3. Блэкауты и активные бакеты
		blackouts, err := uc.blackoutRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list blackouts: %v", err)
			return fmt.Errorf("%w: failed to list blackouts: %v", ErrInternal, err)
		}

		buckets, err := uc.capacityRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list capacity buckets: %v", err)
			return fmt.Errorf("%w: failed to list capacity buckets: %v", ErrInternal, err)
		}

		// 2.4. Записи дня с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.5. Проверка доступности слота по заблокированным строкам
		if err := checkSlotAvailable(req.Date, req.StartTime, blackouts, buckets, appointments, uc.closedWeekdays); err != nil {
			uc.logger.Warn("CreateBooking: slot %s %s rejected: %v",
				req.Date.Format(domain.DateFormat), req.StartTime, err)
			return err
		}

		// 2.6. Создаем запись в статусе pending
		appt := &domain.Appointment{
			CustomerID: req.CustomerID,
			ServiceID:  req.ServiceID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			Status:     domain.StatusPending,
			Notes:      req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		ServiceID:  result.ServiceID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		Status:     string(result.Status),
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
	}, nil
}
