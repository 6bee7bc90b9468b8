package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByDate получает все не-отмененные записи на дату;
	// внутри транзакции строки блокируются FOR UPDATE
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	// CountActiveByCustomerOnDate считает записи клиента на дату
	// со статусами pending и approved
	CountActiveByCustomerOnDate(ctx context.Context, customerID int64, date time.Time) (int, error)
}

// BlackoutRepository интерфейс репозитория блэкаут-дат
type BlackoutRepository interface {
	List(ctx context.Context) ([]*domain.BlackoutDate, error)
}

// CapacityRepository интерфейс репозитория бакетов вместимости
type CapacityRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlotCapacity, error)
}

// LimitSettingRepository интерфейс репозитория настройки лимита
type LimitSettingRepository interface {
	GetActive(ctx context.Context) (*domain.BookingLimitSetting, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
