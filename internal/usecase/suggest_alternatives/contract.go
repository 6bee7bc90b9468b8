package suggest_alternatives

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDate получает все не-отмененные записи на дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// BlackoutRepository интерфейс репозитория блэкаут-дат
type BlackoutRepository interface {
	List(ctx context.Context) ([]*domain.BlackoutDate, error)
}

// CapacityRepository интерфейс репозитория бакетов вместимости
type CapacityRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlotCapacity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
