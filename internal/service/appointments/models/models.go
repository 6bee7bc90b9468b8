package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CustomerID int64   `json:"customerId"`
	Reason     *string `json:"reason,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status          string  `json:"status"`
	CompletionNotes *string `json:"completionNotes,omitempty"` // Только для статуса completed
}

// GetCustomerAppointmentsRequest запрос истории записей клиента
type GetCustomerAppointmentsRequest struct {
	CustomerID int64      `json:"customerId"`
	Date       *time.Time `json:"date,omitempty"`   // Фильтр по дате (опционально)
	Status     *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCustomerAppointmentsRequest) ToDomainFilter() (domain.CustomerAppointmentsFilter, error) {
	filter := domain.CustomerAppointmentsFilter{
		CustomerID: r.CustomerID,
		Date:       r.Date,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CompletedAt     *string `json:"completedAt,omitempty"`
	CompletionNotes *string `json:"completionNotes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              appt.ID,
		CustomerID:      appt.CustomerID,
		StaffID:         appt.StaffID,
		ServiceID:       appt.ServiceID,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		Status:          string(appt.Status),
		Notes:           appt.Notes,
		CompletionNotes: appt.CompletionNotes,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}

	if appt.CompletedAt != nil {
		completedAt := appt.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		items = append(items, *FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}
}

// ToDomainStatus конвертирует строку в domain статус с валидацией
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusApproved,
		domain.StatusDeclined,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
