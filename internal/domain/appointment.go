package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusDeclined  AppointmentStatus = "declined"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a customer appointment in the system
type Appointment struct {
	ID         int64
	CustomerID int64
	StaffID    *int64 // nil until a staff member is assigned
	ServiceID  int64
	Date       time.Time
	StartTime  types.TimeString
	Status     AppointmentStatus

	Notes           *string
	CompletedAt     *time.Time
	CompletionNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity returns true if the appointment counts against a
// capacity bucket. Only cancelled appointments free their slot.
func (a *Appointment) OccupiesCapacity() bool {
	return a.Status != StatusCancelled
}

// CountsTowardDailyLimit returns true if the appointment counts against
// the customer's daily booking limit
func (a *Appointment) CountsTowardDailyLimit() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted returns true if the appointment was carried out
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// AssignedTo returns true if the appointment is assigned to the given staff member
func (a *Appointment) AssignedTo(staffID int64) bool {
	return a.StaffID != nil && *a.StaffID == staffID
}

// CustomerAppointmentsFilter фильтр для получения записей клиента
type CustomerAppointmentsFilter struct {
	CustomerID int64              // Обязательный параметр
	Date       *time.Time         // Фильтр по дате (опционально)
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
}
