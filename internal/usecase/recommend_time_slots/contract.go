package recommend_time_slots

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

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListStaff(ctx context.Context) ([]*domain.StaffProfile, error)
	ListUnavailableStaffIDs(ctx context.Context, date time.Time) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
