package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/blackout"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/capacity"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/limitsetting"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBlackoutRepo struct {
	blackouts []*domain.BlackoutDate
	nextID    int64
}

func (f *fakeBlackoutRepo) List(_ context.Context) ([]*domain.BlackoutDate, error) {
	return f.blackouts, nil
}

func (f *fakeBlackoutRepo) Create(_ context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error) {
	f.nextID++
	created := *b
	created.ID = f.nextID
	f.blackouts = append(f.blackouts, &created)
	return &created, nil
}

func (f *fakeBlackoutRepo) Delete(_ context.Context, id int64) error {
	for i, b := range f.blackouts {
		if b.ID == id {
			f.blackouts = append(f.blackouts[:i], f.blackouts[i+1:]...)
			return nil
		}
	}
	return blackout.ErrBlackoutNotFound
}

type fakeCapacityRepo struct {
	buckets []*domain.TimeSlotCapacity
	nextID  int64
}

func (f *fakeCapacityRepo) List(_ context.Context) ([]*domain.TimeSlotCapacity, error) {
	return f.buckets, nil
}

func (f *fakeCapacityRepo) Create(_ context.Context, bucket *domain.TimeSlotCapacity) (*domain.TimeSlotCapacity, error) {
	for _, existing := range f.buckets {
		sameWeekday := (existing.Weekday == nil && bucket.Weekday == nil) ||
			(existing.Weekday != nil && bucket.Weekday != nil && *existing.Weekday == *bucket.Weekday)
		if sameWeekday && existing.StartTime.Equal(bucket.StartTime) && existing.EndTime.Equal(bucket.EndTime) {
			return nil, capacity.ErrDuplicateBucket
		}
	}
	f.nextID++
	created := *bucket
	created.ID = f.nextID
	f.buckets = append(f.buckets, &created)
	return &created, nil
}

func (f *fakeCapacityRepo) Update(_ context.Context, id int64, maxAppointments int, active bool) error {
	for _, bucket := range f.buckets {
		if bucket.ID == id {
			bucket.MaxAppointments = maxAppointments
			bucket.Active = active
			return nil
		}
	}
	return capacity.ErrBucketNotFound
}

func (f *fakeCapacityRepo) Delete(_ context.Context, id int64) error {
	for i, bucket := range f.buckets {
		if bucket.ID == id {
			f.buckets = append(f.buckets[:i], f.buckets[i+1:]...)
			return nil
		}
	}
	return capacity.ErrBucketNotFound
}

type fakeLimitRepo struct {
	settings []*domain.BookingLimitSetting
	nextID   int64
}

func (f *fakeLimitRepo) GetActive(_ context.Context) (*domain.BookingLimitSetting, error) {
	for i := len(f.settings) - 1; i >= 0; i-- {
		if f.settings[i].IsActive {
			return f.settings[i], nil
		}
	}
	return nil, limitsetting.ErrSettingNotFound
}

func (f *fakeLimitRepo) Create(_ context.Context, limit int, isActive bool) (*domain.BookingLimitSetting, error) {
	f.nextID++
	setting := &domain.BookingLimitSetting{
		ID:                       f.nextID,
		DailyBookingLimitPerUser: limit,
		IsActive:                 isActive,
	}
	f.settings = append(f.settings, setting)
	return setting, nil
}

func (f *fakeLimitRepo) DeactivateAll(_ context.Context) error {
	for _, setting := range f.settings {
		setting.IsActive = false
	}
	return nil
}

type fakeStaffRepo struct {
	staff          map[int64]*domain.StaffProfile
	unavailability []*domain.StaffUnavailability
	nextID         int64
}

func newFakeStaffRepo(ids ...int64) *fakeStaffRepo {
	repo := &fakeStaffRepo{staff: make(map[int64]*domain.StaffProfile)}
	for _, id := range ids {
		repo.staff[id] = &domain.StaffProfile{ID: id, Name: "staff"}
	}
	return repo
}

func (f *fakeStaffRepo) GetStaffByID(_ context.Context, id int64) (*domain.StaffProfile, error) {
	profile, ok := f.staff[id]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}
	return profile, nil
}

func (f *fakeStaffRepo) CreateUnavailability(_ context.Context, u *domain.StaffUnavailability) (*domain.StaffUnavailability, error) {
	f.nextID++
	created := *u
	created.ID = f.nextID
	f.unavailability = append(f.unavailability, &created)
	return &created, nil
}

func (f *fakeStaffRepo) DeleteUnavailability(_ context.Context, id int64) error {
	for i, u := range f.unavailability {
		if u.ID == id {
			f.unavailability = append(f.unavailability[:i], f.unavailability[i+1:]...)
			return nil
		}
	}
	return staff.ErrUnavailabilityNotFound
}

func (f *fakeStaffRepo) ListUnavailabilityByStaff(_ context.Context, staffID int64) ([]*domain.StaffUnavailability, error) {
	result := make([]*domain.StaffUnavailability, 0)
	for _, u := range f.unavailability {
		if u.StaffID == staffID {
			result = append(result, u)
		}
	}
	return result, nil
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func newTestService() (*Service, *fakeBlackoutRepo, *fakeCapacityRepo, *fakeLimitRepo, *fakeStaffRepo, *passthroughTxManager) {
	blackoutRepo := &fakeBlackoutRepo{}
	capacityRepo := &fakeCapacityRepo{}
	limitRepo := &fakeLimitRepo{}
	staffRepo := newFakeStaffRepo(1, 2)
	tx := &passthroughTxManager{}
	svc := NewService(blackoutRepo, capacityRepo, limitRepo, staffRepo, tx, nopLogger{})
	return svc, blackoutRepo, capacityRepo, limitRepo, staffRepo, tx
}

func TestCreateBlackout_Validation(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *models.CreateBlackoutRequest
	}{
		{
			name: "recurring without weekdays",
			req:  &models.CreateBlackoutRequest{Recurring: true},
		},
		{
			name: "recurring with date",
			req:  &models.CreateBlackoutRequest{Recurring: true, Weekdays: []string{"monday"}, Date: &date},
		},
		{
			name: "one-off without date",
			req:  &models.CreateBlackoutRequest{},
		},
		{
			name: "one-off with weekdays",
			req:  &models.CreateBlackoutRequest{Date: &date, Weekdays: []string{"monday"}},
		},
		{
			name: "start without end",
			req:  &models.CreateBlackoutRequest{Date: &date, StartTime: ptr.Ptr("10:00")},
		},
		{
			name: "start after end",
			req:  &models.CreateBlackoutRequest{Date: &date, StartTime: ptr.Ptr("14:00"), EndTime: ptr.Ptr("10:00")},
		},
		{
			name: "malformed time",
			req:  &models.CreateBlackoutRequest{Date: &date, StartTime: ptr.Ptr("25:00"), EndTime: ptr.Ptr("26:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBlackout(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateBlackout_Recurring(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	resp, err := svc.CreateBlackout(context.Background(), &models.CreateBlackoutRequest{
		Recurring: true,
		Weekdays:  []string{"monday", "Friday"},
		StartTime: ptr.Ptr("12:00"),
		EndTime:   ptr.Ptr("14:00"),
		Reason:    ptr.Ptr("weekly maintenance"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Recurring)
	assert.Equal(t, []string{"monday", "friday"}, resp.Weekdays)
	require.Len(t, repo.blackouts, 1)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, repo.blackouts[0].Weekdays)
}

func TestCreateBlackout_UnknownWeekday(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.CreateBlackout(context.Background(), &models.CreateBlackoutRequest{
		Recurring: true,
		Weekdays:  []string{"someday"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteBlackout_NotFound(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	err := svc.DeleteBlackout(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBlackoutNotFound)
}

func TestCreateBucket_Duplicate(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	req := &models.CreateCapacityBucketRequest{
		Weekday:         ptr.Ptr("monday"),
		StartTime:       "09:00",
		EndTime:         "12:00",
		MaxAppointments: 3,
		Active:          true,
	}

	_, err := svc.CreateBucket(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateBucket(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateBucket)
}

func TestCreateBucket_Validation(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	tests := []struct {
		name string
		req  *models.CreateCapacityBucketRequest
	}{
		{
			name: "zero max appointments",
			req:  &models.CreateCapacityBucketRequest{StartTime: "09:00", EndTime: "12:00"},
		},
		{
			name: "start after end",
			req:  &models.CreateCapacityBucketRequest{StartTime: "12:00", EndTime: "09:00", MaxAppointments: 3},
		},
		{
			name: "unknown weekday",
			req: &models.CreateCapacityBucketRequest{
				Weekday: ptr.Ptr("someday"), StartTime: "09:00", EndTime: "12:00", MaxAppointments: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBucket(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateBucket(t *testing.T) {
	svc, _, repo, _, _, _ := newTestService()

	created, err := svc.CreateBucket(context.Background(), &models.CreateCapacityBucketRequest{
		StartTime:       "09:00",
		EndTime:         "18:00",
		MaxAppointments: 3,
		Active:          true,
	})
	require.NoError(t, err)

	err = svc.UpdateBucket(context.Background(), created.ID, &models.UpdateCapacityBucketRequest{
		MaxAppointments: 5,
		Active:          false,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, repo.buckets[0].MaxAppointments)
	assert.False(t, repo.buckets[0].Active)

	err = svc.UpdateBucket(context.Background(), 99, &models.UpdateCapacityBucketRequest{MaxAppointments: 5})
	assert.ErrorIs(t, err, ErrBucketNotFound)
}

func TestGetLimitSetting_NoneMeansDisabled(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	resp, err := svc.GetLimitSetting(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.Enabled)
	assert.Equal(t, 0, resp.DailyBookingLimitPerUser)
}

func TestSetLimitSetting_KeepsSingleActive(t *testing.T) {
	svc, _, _, repo, _, tx := newTestService()

	_, err := svc.SetLimitSetting(context.Background(), &models.SetBookingLimitRequest{
		DailyBookingLimitPerUser: 3,
		IsActive:                 true,
	})
	require.NoError(t, err)

	resp, err := svc.SetLimitSetting(context.Background(), &models.SetBookingLimitRequest{
		DailyBookingLimitPerUser: 5,
		IsActive:                 true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Enabled)
	assert.Equal(t, 5, resp.DailyBookingLimitPerUser)
	assert.Equal(t, 2, tx.calls)

	active := 0
	for _, setting := range repo.settings {
		if setting.IsActive {
			active++
			assert.Equal(t, 5, setting.DailyBookingLimitPerUser)
		}
	}
	assert.Equal(t, 1, active)
}

func TestSetLimitSetting_InactiveDisablesLimit(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	resp, err := svc.SetLimitSetting(context.Background(), &models.SetBookingLimitRequest{
		DailyBookingLimitPerUser: 3,
		IsActive:                 false,
	})
	require.NoError(t, err)

	assert.False(t, resp.Enabled)
	assert.Equal(t, 3, resp.DailyBookingLimitPerUser)
}

func TestSetLimitSetting_RejectsNonPositive(t *testing.T) {
	svc, _, _, _, _, tx := newTestService()

	_, err := svc.SetLimitSetting(context.Background(), &models.SetBookingLimitRequest{
		DailyBookingLimitPerUser: 0,
		IsActive:                 true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, tx.calls)
}

func TestStaffUnavailability_Lifecycle(t *testing.T) {
	svc, _, _, _, repo, _ := newTestService()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	created, err := svc.CreateStaffUnavailability(context.Background(), &models.CreateUnavailabilityRequest{
		StaffID: 1,
		Date:    date,
		Reason:  ptr.Ptr("vacation"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", created.Date)

	list, err := svc.ListStaffUnavailability(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	err = svc.DeleteStaffUnavailability(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.unavailability)

	err = svc.DeleteStaffUnavailability(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrUnavailabilityNotFound)
}

func TestStaffUnavailability_UnknownStaff(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateStaffUnavailability(context.Background(), &models.CreateUnavailabilityRequest{
		StaffID: 99,
		Date:    date,
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = svc.ListStaffUnavailability(context.Background(), 99)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
