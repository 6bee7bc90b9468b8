package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// allowedTransitions допустимые переходы статусов записи.
// Завершенные, отклоненные, отмененные и no_show - терминальные статусы.
var allowedTransitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.StatusPending: {
		domain.StatusApproved,
		domain.StatusDeclined,
		domain.StatusCancelled,
	},
	domain.StatusApproved: {
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	},
}

// Service сервис для работы с записями на прием
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Клиент может видеть только собственную запись.
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for customer=%d", id, customerID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to appointment id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает историю записей клиента
// с опциональными фильтрами по дате и статусу
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%d", req.CustomerID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCustomerAppointments: invalid filter for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByCustomerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: successfully fetched %d appointments for customer=%d",
		len(appointments), req.CustomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись.
// Клиент может отменить только собственную запись и только в статусах
// pending или approved. Отмена освобождает место в бакете вместимости
// и перестает учитываться дневным лимитом.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by customer=%d", id, req.CustomerID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%d to appointment id=%d", req.CustomerID, id)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update status for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// UpdateStatus переводит запись в новый статус (админская операция).
// Переходы ограничены таблицей allowedTransitions; перевод в completed
// дополнительно проставляет отметку времени и заметки о выполнении.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d, new status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !transitionAllowed(appt.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appt.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	if newStatus == domain.StatusCompleted {
		completedAt := s.timeProvider.Now()
		if err := s.appointmentRepo.Complete(ctx, id, completedAt, req.CompletionNotes); err != nil {
			s.logger.Error("UpdateStatus: failed to complete appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - failed to complete: %v", ErrInternal, err)
		}
	} else {
		if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
			s.logger.Error("UpdateStatus: failed to update status for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - failed to update status: %v", ErrInternal, err)
		}
	}

	updated, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to reload: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved to status %s", id, newStatus)
	return models.FromDomainAppointment(updated), nil
}

// transitionAllowed проверяет переход по таблице allowedTransitions
func transitionAllowed(from, to domain.AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
