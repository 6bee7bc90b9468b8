package schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BlackoutRepository интерфейс репозитория блэкаут-дат
type BlackoutRepository interface {
	List(ctx context.Context) ([]*domain.BlackoutDate, error)
	Create(ctx context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error)
	Delete(ctx context.Context, id int64) error
}

// CapacityRepository интерфейс репозитория бакетов вместимости
type CapacityRepository interface {
	List(ctx context.Context) ([]*domain.TimeSlotCapacity, error)
	Create(ctx context.Context, bucket *domain.TimeSlotCapacity) (*domain.TimeSlotCapacity, error)
	Update(ctx context.Context, id int64, maxAppointments int, active bool) error
	Delete(ctx context.Context, id int64) error
}

// LimitSettingRepository интерфейс репозитория настройки лимита
type LimitSettingRepository interface {
	GetActive(ctx context.Context) (*domain.BookingLimitSetting, error)
	Create(ctx context.Context, limit int, isActive bool) (*domain.BookingLimitSetting, error)
	DeactivateAll(ctx context.Context) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetStaffByID(ctx context.Context, id int64) (*domain.StaffProfile, error)
	CreateUnavailability(ctx context.Context, u *domain.StaffUnavailability) (*domain.StaffUnavailability, error)
	DeleteUnavailability(ctx context.Context, id int64) error
	ListUnavailabilityByStaff(ctx context.Context, staffID int64) ([]*domain.StaffUnavailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
