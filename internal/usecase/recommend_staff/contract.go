package recommend_staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDate получает все не-отмененные записи на дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	// CountCompletedByStaffAndService считает завершенные записи сотрудника по услуге
	CountCompletedByStaffAndService(ctx context.Context, staffID, serviceID int64) (int, error)
	// CountCompletedByStaffAndCustomer считает завершенные записи сотрудника с клиентом
	CountCompletedByStaffAndCustomer(ctx context.Context, staffID, customerID int64) (int, error)
	// GetStaffCompletionStats агрегаты завершаемости за все время
	GetStaffCompletionStats(ctx context.Context, staffID int64) (domain.StaffCompletionStats, error)
	// GetStaffRecentCompletionStats агрегаты по записям, созданным с момента since
	GetStaffRecentCompletionStats(ctx context.Context, staffID int64, since time.Time) (domain.StaffCompletionStats, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListStaff(ctx context.Context) ([]*domain.StaffProfile, error)
	ListUnavailableStaffIDs(ctx context.Context, date time.Time) ([]int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
