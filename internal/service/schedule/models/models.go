package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при некорректном имени дня недели
	ErrInvalidWeekday = errors.New("invalid weekday name")
)

// Request модели

// CreateBlackoutRequest запрос на создание блэкаута: либо конкретная дата,
// либо повторяющееся правило по дням недели. Отсутствие временного
// диапазона блокирует весь день.
type CreateBlackoutRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	Recurring bool       `json:"recurring"`
	Weekdays  []string   `json:"weekdays,omitempty"`
	StartTime *string    `json:"startTime,omitempty"`
	EndTime   *string    `json:"endTime,omitempty"`
	Reason    *string    `json:"reason,omitempty"`
}

// CreateCapacityBucketRequest запрос на создание бакета вместимости.
// Пустой weekday применяет бакет ко всем дням недели.
type CreateCapacityBucketRequest struct {
	Weekday         *string `json:"weekday,omitempty"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	MaxAppointments int     `json:"maxAppointments"`
	Active          bool    `json:"active"`
}

// UpdateCapacityBucketRequest запрос на изменение лимита и активности бакета
type UpdateCapacityBucketRequest struct {
	MaxAppointments int  `json:"maxAppointments"`
	Active          bool `json:"active"`
}

// SetBookingLimitRequest запрос на установку дневного лимита записей
type SetBookingLimitRequest struct {
	DailyBookingLimitPerUser int  `json:"dailyBookingLimitPerUser"`
	IsActive                 bool `json:"isActive"`
}

// CreateUnavailabilityRequest запрос на отметку недоступности сотрудника
type CreateUnavailabilityRequest struct {
	StaffID int64     `json:"staffId"`
	Date    time.Time `json:"date"`
	Reason  *string   `json:"reason,omitempty"`
}

// Response модели

// BlackoutResponse ответ с данными блэкаута
type BlackoutResponse struct {
	ID        int64    `json:"id"`
	Date      *string  `json:"date,omitempty"`
	Recurring bool     `json:"recurring"`
	Weekdays  []string `json:"weekdays,omitempty"`
	StartTime *string  `json:"startTime,omitempty"`
	EndTime   *string  `json:"endTime,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

// BlackoutListResponse ответ со списком блэкаутов
type BlackoutListResponse struct {
	Blackouts []BlackoutResponse `json:"blackouts"`
	Total     int                `json:"total"`
}

// CapacityBucketResponse ответ с данными бакета вместимости
type CapacityBucketResponse struct {
	ID              int64   `json:"id"`
	Weekday         *string `json:"weekday,omitempty"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	MaxAppointments int     `json:"maxAppointments"`
	Active          bool    `json:"active"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// CapacityBucketListResponse ответ со списком бакетов
type CapacityBucketListResponse struct {
	Buckets []CapacityBucketResponse `json:"buckets"`
	Total   int                      `json:"total"`
}

// BookingLimitResponse ответ с текущей настройкой лимита.
// Enabled учитывает и флаг активности, и положительность значения.
type BookingLimitResponse struct {
	Enabled                  bool `json:"enabled"`
	DailyBookingLimitPerUser int  `json:"dailyBookingLimitPerUser"`
}

// UnavailabilityResponse ответ с отметкой недоступности сотрудника
type UnavailabilityResponse struct {
	ID        int64   `json:"id"`
	StaffID   int64   `json:"staffId"`
	Date      string  `json:"date"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// UnavailabilityListResponse ответ со списком отметок недоступности
type UnavailabilityListResponse struct {
	Items []UnavailabilityResponse `json:"items"`
	Total int                      `json:"total"`
}

// Конвертация

// ToDomainBlackout конвертирует request в domain модель
func (r *CreateBlackoutRequest) ToDomainBlackout() (*domain.BlackoutDate, error) {
	blackout := &domain.BlackoutDate{
		Date:      r.Date,
		Recurring: r.Recurring,
		Reason:    r.Reason,
	}

	for _, name := range r.Weekdays {
		wd, err := ToDomainWeekday(name)
		if err != nil {
			return nil, err
		}
		blackout.Weekdays = append(blackout.Weekdays, wd)
	}

	if r.StartTime != nil {
		st := types.TimeString(*r.StartTime)
		blackout.StartTime = &st
	}
	if r.EndTime != nil {
		et := types.TimeString(*r.EndTime)
		blackout.EndTime = &et
	}

	return blackout, nil
}

// ToDomainBucket конвертирует request в domain модель
func (r *CreateCapacityBucketRequest) ToDomainBucket() (*domain.TimeSlotCapacity, error) {
	bucket := &domain.TimeSlotCapacity{
		StartTime:       types.TimeString(r.StartTime),
		EndTime:         types.TimeString(r.EndTime),
		MaxAppointments: r.MaxAppointments,
		Active:          r.Active,
	}

	if r.Weekday != nil {
		wd, err := ToDomainWeekday(*r.Weekday)
		if err != nil {
			return nil, err
		}
		bucket.Weekday = &wd
	}

	return bucket, nil
}

// ToDomainUnavailability конвертирует request в domain модель
func (r *CreateUnavailabilityRequest) ToDomainUnavailability() *domain.StaffUnavailability {
	return &domain.StaffUnavailability{
		StaffID: r.StaffID,
		Date:    r.Date,
		Reason:  r.Reason,
	}
}

// FromDomainBlackout конвертирует domain модель в response
func FromDomainBlackout(b *domain.BlackoutDate) *BlackoutResponse {
	resp := &BlackoutResponse{
		ID:        b.ID,
		Recurring: b.Recurring,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}

	if b.Date != nil {
		date := b.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	for _, wd := range b.Weekdays {
		resp.Weekdays = append(resp.Weekdays, strings.ToLower(wd.String()))
	}
	if b.StartTime != nil {
		st := b.StartTime.String()
		resp.StartTime = &st
	}
	if b.EndTime != nil {
		et := b.EndTime.String()
		resp.EndTime = &et
	}

	return resp
}

// FromDomainBlackoutList конвертирует список domain моделей в response
func FromDomainBlackoutList(blackouts []*domain.BlackoutDate) *BlackoutListResponse {
	items := make([]BlackoutResponse, 0, len(blackouts))
	for _, b := range blackouts {
		items = append(items, *FromDomainBlackout(b))
	}
	return &BlackoutListResponse{Blackouts: items, Total: len(items)}
}

// FromDomainBucket конвертирует domain модель в response
func FromDomainBucket(bucket *domain.TimeSlotCapacity) *CapacityBucketResponse {
	resp := &CapacityBucketResponse{
		ID:              bucket.ID,
		StartTime:       bucket.StartTime.String(),
		EndTime:         bucket.EndTime.String(),
		MaxAppointments: bucket.MaxAppointments,
		Active:          bucket.Active,
		CreatedAt:       bucket.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       bucket.UpdatedAt.Format(time.RFC3339),
	}

	if bucket.Weekday != nil {
		wd := strings.ToLower(bucket.Weekday.String())
		resp.Weekday = &wd
	}

	return resp
}

// FromDomainBucketList конвертирует список domain моделей в response
func FromDomainBucketList(buckets []*domain.TimeSlotCapacity) *CapacityBucketListResponse {
	items := make([]CapacityBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, *FromDomainBucket(bucket))
	}
	return &CapacityBucketListResponse{Buckets: items, Total: len(items)}
}

// FromDomainLimitSetting конвертирует настройку лимита в response.
// Nil-настройка означает выключенный лимит.
func FromDomainLimitSetting(setting *domain.BookingLimitSetting) *BookingLimitResponse {
	resp := &BookingLimitResponse{Enabled: setting.Enabled()}
	if setting != nil {
		resp.DailyBookingLimitPerUser = setting.DailyBookingLimitPerUser
	}
	return resp
}

// FromDomainUnavailability конвертирует domain модель в response
func FromDomainUnavailability(u *domain.StaffUnavailability) *UnavailabilityResponse {
	return &UnavailabilityResponse{
		ID:        u.ID,
		StaffID:   u.StaffID,
		Date:      u.Date.Format(domain.DateFormat),
		Reason:    u.Reason,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainUnavailabilityList конвертирует список domain моделей в response
func FromDomainUnavailabilityList(items []*domain.StaffUnavailability) *UnavailabilityListResponse {
	result := make([]UnavailabilityResponse, 0, len(items))
	for _, u := range items {
		result = append(result, *FromDomainUnavailability(u))
	}
	return &UnavailabilityListResponse{Items: result, Total: len(result)}
}

// ToDomainWeekday конвертирует имя дня недели в time.Weekday.
// Сравнение по точному имени, не по вхождению подстроки.
func ToDomainWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
	}
}
