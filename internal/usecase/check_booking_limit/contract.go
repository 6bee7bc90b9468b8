package check_booking_limit

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// CountActiveByCustomerOnDate считает записи клиента на дату
	// со статусами pending и approved
	CountActiveByCustomerOnDate(ctx context.Context, customerID int64, date time.Time) (int, error)
}

// LimitSettingRepository интерфейс репозитория настройки лимита
type LimitSettingRepository interface {
	GetActive(ctx context.Context) (*domain.BookingLimitSetting, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
