package check_booking_limit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	limitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/limitsetting"
)

// UseCase use case проверки дневного лимита бронирований клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	limitRepo       LimitSettingRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	limitRepo LimitSettingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		limitRepo:       limitRepo,
		logger:          logger,
	}
}

// Execute выполняет use case проверки лимита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckBookingLimit: customer=%d, date=%s",
		req.CustomerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckBookingLimit: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем активную настройку лимита. Отсутствие настройки -
	// не ошибка, лимит считается выключенным.
	setting, err := uc.limitRepo.GetActive(ctx)
	if err != nil && !errors.Is(err, limitRepo.ErrSettingNotFound) {
		uc.logger.Error("CheckBookingLimit: failed to get limit setting: %v", err)
		return nil, fmt.Errorf("%w: failed to get limit setting: %v", ErrInternal, err)
	}

	// 3. Применяем настройку как значение: решение воспроизводимо
	// по входам, без скрытого глобального состояния
	return uc.evaluate(ctx, req, setting)
}

// evaluate применяет загруженную настройку лимита к запросу
func (uc *UseCase) evaluate(ctx context.Context, req *Request, setting *domain.BookingLimitSetting) (*Response, error) {
	if !setting.Enabled() {
		uc.logger.Info("CheckBookingLimit: limit disabled for customer=%d", req.CustomerID)
		return &Response{
			LimitActive: false,
			Reached:     false,
			Remaining:   domain.UnlimitedBookings,
		}, nil
	}

	count, err := uc.appointmentRepo.CountActiveByCustomerOnDate(ctx, req.CustomerID, req.Date)
	if err != nil {
		uc.logger.Error("CheckBookingLimit: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	limit := setting.DailyBookingLimitPerUser
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	uc.logger.Info("CheckBookingLimit: customer=%d, date=%s, count=%d, limit=%d",
		req.CustomerID, req.Date.Format(domain.DateFormat), count, limit)

	return &Response{
		LimitActive: true,
		Limit:       limit,
		ActiveCount: count,
		Reached:     count >= limit,
		Remaining:   remaining,
	}, nil
}
