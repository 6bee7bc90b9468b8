package check_booking_limit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	limitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/limitsetting"
)

type fakeAppointmentRepo struct {
	count int
}

func (f *fakeAppointmentRepo) CountActiveByCustomerOnDate(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.count, nil
}

type fakeLimitRepo struct {
	setting *domain.BookingLimitSetting
}

func (f *fakeLimitRepo) GetActive(_ context.Context) (*domain.BookingLimitSetting, error) {
	if f.setting == nil {
		return nil, limitRepo.ErrSettingNotFound
	}
	return f.setting, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

func TestExecute_LimitDisabledWhenNoSetting(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{count: 99}, &fakeLimitRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: 1, Date: testDate})
	require.NoError(t, err)
	assert.False(t, resp.LimitActive)
	assert.False(t, resp.Reached)
	assert.Equal(t, domain.UnlimitedBookings, resp.Remaining)
}

func TestExecute_LimitDisabledWhenSettingInactive(t *testing.T) {
	setting := &domain.BookingLimitSetting{DailyBookingLimitPerUser: 2, IsActive: false}
	uc := NewUseCase(&fakeAppointmentRepo{count: 5}, &fakeLimitRepo{setting: setting}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: 1, Date: testDate})
	require.NoError(t, err)
	assert.False(t, resp.LimitActive)
	assert.Equal(t, domain.UnlimitedBookings, resp.Remaining)
}

func TestExecute_LimitReached(t *testing.T) {
	setting := &domain.BookingLimitSetting{DailyBookingLimitPerUser: 2, IsActive: true}

	tests := []struct {
		name          string
		count         int
		wantReached   bool
		wantRemaining int
	}{
		{name: "no appointments", count: 0, wantReached: false, wantRemaining: 2},
		{name: "one of two", count: 1, wantReached: false, wantRemaining: 1},
		{name: "limit reached", count: 2, wantReached: true, wantRemaining: 0},
		{name: "over limit stays at zero", count: 3, wantReached: true, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeAppointmentRepo{count: tt.count}, &fakeLimitRepo{setting: setting}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{CustomerID: 1, Date: testDate})
			require.NoError(t, err)
			assert.True(t, resp.LimitActive)
			assert.Equal(t, 2, resp.Limit)
			assert.Equal(t, tt.count, resp.ActiveCount)
			assert.Equal(t, tt.wantReached, resp.Reached)
			assert.Equal(t, tt.wantRemaining, resp.Remaining)
		})
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeLimitRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CustomerID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
