package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/blackout"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/capacity"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/limitsetting"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// Service сервис управления расписанием: блэкауты, бакеты вместимости,
// дневной лимит записей и недоступность сотрудников
type Service struct {
	blackoutRepo     BlackoutRepository
	capacityRepo     CapacityRepository
	limitSettingRepo LimitSettingRepository
	staffRepo        StaffRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	blackoutRepo BlackoutRepository,
	capacityRepo CapacityRepository,
	limitSettingRepo LimitSettingRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		blackoutRepo:     blackoutRepo,
		capacityRepo:     capacityRepo,
		limitSettingRepo: limitSettingRepo,
		staffRepo:        staffRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Блэкаут-даты

// ListBlackouts возвращает все блэкаут-даты
func (s *Service) ListBlackouts(ctx context.Context) (*models.BlackoutListResponse, error) {
	s.logger.Info("ListBlackouts: fetching blackout dates")

	blackouts, err := s.blackoutRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlackouts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlackouts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlackouts: successfully fetched %d blackout dates", len(blackouts))
	return models.FromDomainBlackoutList(blackouts), nil
}

// CreateBlackout создает блэкаут-дату: либо разовую на конкретную дату,
// либо повторяющуюся по дням недели
func (s *Service) CreateBlackout(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("CreateBlackout: creating blackout (recurring=%t)", req.Recurring)

	if err := validateCreateBlackout(req); err != nil {
		s.logger.Warn("CreateBlackout: validation failed: %v", err)
		return nil, err
	}

	b, err := req.ToDomainBlackout()
	if err != nil {
		s.logger.Warn("CreateBlackout: invalid weekday: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.blackoutRepo.Create(ctx, b)
	if err != nil {
		s.logger.Error("CreateBlackout: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlackout: successfully created blackout id=%d", created.ID)
	return models.FromDomainBlackout(created), nil
}

// DeleteBlackout удаляет блэкаут-дату
func (s *Service) DeleteBlackout(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlackout: deleting blackout id=%d", id)

	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blackout.ErrBlackoutNotFound) {
			s.logger.Warn("DeleteBlackout: blackout id=%d not found", id)
			return ErrBlackoutNotFound
		}
		s.logger.Error("DeleteBlackout: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlackout: successfully deleted blackout id=%d", id)
	return nil
}

// Бакеты вместимости

// ListBuckets возвращает все бакеты вместимости, включая неактивные
func (s *Service) ListBuckets(ctx context.Context) (*models.CapacityBucketListResponse, error) {
	s.logger.Info("ListBuckets: fetching capacity buckets")

	buckets, err := s.capacityRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBuckets: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBuckets - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBuckets: successfully fetched %d capacity buckets", len(buckets))
	return models.FromDomainBucketList(buckets), nil
}

// CreateBucket создает бакет вместимости. Пара (день недели, временной
// диапазон) должна быть уникальной.
func (s *Service) CreateBucket(ctx context.Context, req *models.CreateCapacityBucketRequest) (*models.CapacityBucketResponse, error) {
	s.logger.Info("CreateBucket: creating capacity bucket %s-%s", req.StartTime, req.EndTime)

	if err := validateCreateBucket(req); err != nil {
		s.logger.Warn("CreateBucket: validation failed: %v", err)
		return nil, err
	}

	bucket, err := req.ToDomainBucket()
	if err != nil {
		s.logger.Warn("CreateBucket: invalid weekday: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.capacityRepo.Create(ctx, bucket)
	if err != nil {
		if errors.Is(err, capacity.ErrDuplicateBucket) {
			s.logger.Warn("CreateBucket: duplicate bucket %s-%s", req.StartTime, req.EndTime)
			return nil, ErrDuplicateBucket
		}
		s.logger.Error("CreateBucket: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBucket - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBucket: successfully created capacity bucket id=%d", created.ID)
	return models.FromDomainBucket(created), nil
}

// UpdateBucket изменяет лимит и активность бакета вместимости
func (s *Service) UpdateBucket(ctx context.Context, id int64, req *models.UpdateCapacityBucketRequest) error {
	s.logger.Info("UpdateBucket: updating capacity bucket id=%d", id)

	if req.MaxAppointments <= 0 {
		s.logger.Warn("UpdateBucket: invalid max appointments=%d for bucket id=%d", req.MaxAppointments, id)
		return fmt.Errorf("%w: max appointments must be positive", ErrInvalidInput)
	}

	if err := s.capacityRepo.Update(ctx, id, req.MaxAppointments, req.Active); err != nil {
		if errors.Is(err, capacity.ErrBucketNotFound) {
			s.logger.Warn("UpdateBucket: capacity bucket id=%d not found", id)
			return ErrBucketNotFound
		}
		s.logger.Error("UpdateBucket: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateBucket - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBucket: successfully updated capacity bucket id=%d", id)
	return nil
}

// DeleteBucket удаляет бакет вместимости
func (s *Service) DeleteBucket(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBucket: deleting capacity bucket id=%d", id)

	if err := s.capacityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, capacity.ErrBucketNotFound) {
			s.logger.Warn("DeleteBucket: capacity bucket id=%d not found", id)
			return ErrBucketNotFound
		}
		s.logger.Error("DeleteBucket: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBucket - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBucket: successfully deleted capacity bucket id=%d", id)
	return nil
}

// Дневной лимит записей

// GetLimitSetting возвращает текущую настройку дневного лимита.
// Отсутствие активной настройки трактуется как выключенный лимит.
func (s *Service) GetLimitSetting(ctx context.Context) (*models.BookingLimitResponse, error) {
	s.logger.Info("GetLimitSetting: fetching active booking limit setting")

	setting, err := s.limitSettingRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, limitsetting.ErrSettingNotFound) {
			s.logger.Info("GetLimitSetting: no active setting, limit is disabled")
			return models.FromDomainLimitSetting(nil), nil
		}
		s.logger.Error("GetLimitSetting: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetLimitSetting - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLimitSetting: active setting limit=%d active=%t",
		setting.DailyBookingLimitPerUser, setting.IsActive)
	return models.FromDomainLimitSetting(setting), nil
}

// SetLimitSetting устанавливает дневной лимит записей. Старые настройки
// деактивируются и создается новая запись - в одной транзакции, чтобы
// активной всегда оставалась ровно одна настройка.
func (s *Service) SetLimitSetting(ctx context.Context, req *models.SetBookingLimitRequest) (*models.BookingLimitResponse, error) {
	s.logger.Info("SetLimitSetting: setting booking limit=%d active=%t",
		req.DailyBookingLimitPerUser, req.IsActive)

	if req.DailyBookingLimitPerUser <= 0 {
		s.logger.Warn("SetLimitSetting: invalid limit=%d", req.DailyBookingLimitPerUser)
		return nil, fmt.Errorf("%w: daily booking limit must be positive", ErrInvalidInput)
	}

	var resp *models.BookingLimitResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.limitSettingRepo.DeactivateAll(ctx); err != nil {
			return fmt.Errorf("failed to deactivate old settings: %w", err)
		}

		created, err := s.limitSettingRepo.Create(ctx, req.DailyBookingLimitPerUser, req.IsActive)
		if err != nil {
			return fmt.Errorf("failed to create setting: %w", err)
		}

		resp = models.FromDomainLimitSetting(created)
		return nil
	})
	if err != nil {
		s.logger.Error("SetLimitSetting: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: SetLimitSetting - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("SetLimitSetting: successfully set booking limit=%d active=%t",
		req.DailyBookingLimitPerUser, req.IsActive)
	return resp, nil
}

// Недоступность сотрудников

// ListStaffUnavailability возвращает отметки недоступности сотрудника
func (s *Service) ListStaffUnavailability(ctx context.Context, staffID int64) (*models.UnavailabilityListResponse, error) {
	s.logger.Info("ListStaffUnavailability: fetching unavailability for staff=%d", staffID)

	if _, err := s.staffRepo.GetStaffByID(ctx, staffID); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			s.logger.Warn("ListStaffUnavailability: staff=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("ListStaffUnavailability: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListStaffUnavailability - repository error: %v", ErrInternal, err)
	}

	items, err := s.staffRepo.ListUnavailabilityByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("ListStaffUnavailability: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListStaffUnavailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStaffUnavailability: successfully fetched %d records for staff=%d", len(items), staffID)
	return models.FromDomainUnavailabilityList(items), nil
}

// CreateStaffUnavailability отмечает сотрудника недоступным на дату.
// Недоступный сотрудник исключается из рекомендаций, но бакеты
// вместимости при этом не сокращаются.
func (s *Service) CreateStaffUnavailability(ctx context.Context, req *models.CreateUnavailabilityRequest) (*models.UnavailabilityResponse, error) {
	s.logger.Info("CreateStaffUnavailability: marking staff=%d unavailable on %s",
		req.StaffID, req.Date.Format("2006-01-02"))

	if req.StaffID <= 0 {
		s.logger.Warn("CreateStaffUnavailability: invalid staff id=%d", req.StaffID)
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		s.logger.Warn("CreateStaffUnavailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := s.staffRepo.GetStaffByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			s.logger.Warn("CreateStaffUnavailability: staff=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("CreateStaffUnavailability: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: CreateStaffUnavailability - repository error: %v", ErrInternal, err)
	}

	created, err := s.staffRepo.CreateUnavailability(ctx, req.ToDomainUnavailability())
	if err != nil {
		s.logger.Error("CreateStaffUnavailability: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: CreateStaffUnavailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaffUnavailability: successfully created record id=%d for staff=%d",
		created.ID, req.StaffID)
	return models.FromDomainUnavailability(created), nil
}

// DeleteStaffUnavailability удаляет отметку недоступности сотрудника
func (s *Service) DeleteStaffUnavailability(ctx context.Context, id int64) error {
	s.logger.Info("DeleteStaffUnavailability: deleting record id=%d", id)

	if err := s.staffRepo.DeleteUnavailability(ctx, id); err != nil {
		if errors.Is(err, staff.ErrUnavailabilityNotFound) {
			s.logger.Warn("DeleteStaffUnavailability: record id=%d not found", id)
			return ErrUnavailabilityNotFound
		}
		s.logger.Error("DeleteStaffUnavailability: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStaffUnavailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteStaffUnavailability: successfully deleted record id=%d", id)
	return nil
}
