package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	limitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/limitsetting"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	f.appointments = append(f.appointments, appt)
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.Date.Equal(date) && appt.OccupiesCapacity() {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) CountActiveByCustomerOnDate(_ context.Context, customerID int64, date time.Time) (int, error) {
	count := 0
	for _, appt := range f.appointments {
		if appt.CustomerID == customerID && appt.Date.Equal(date) && appt.CountsTowardDailyLimit() {
			count++
		}
	}
	return count, nil
}

type fakeBlackoutRepo struct {
	blackouts []*domain.BlackoutDate
}

func (f *fakeBlackoutRepo) List(_ context.Context) ([]*domain.BlackoutDate, error) {
	return f.blackouts, nil
}

type fakeCapacityRepo struct {
	buckets []*domain.TimeSlotCapacity
}

func (f *fakeCapacityRepo) ListActive(_ context.Context) ([]*domain.TimeSlotCapacity, error) {
	return f.buckets, nil
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

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func mondayBucket(start, end string, max int) *domain.TimeSlotCapacity {
	wd := time.Monday
	return &domain.TimeSlotCapacity{
		ID:              1,
		Weekday:         &wd,
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		MaxAppointments: max,
		Active:          true,
	}
}

type env struct {
	appts  *fakeAppointmentRepo
	tx     *passthroughTxManager
	uc     *UseCase
	limits *fakeLimitRepo
}

func newEnv(buckets []*domain.TimeSlotCapacity, blackouts []*domain.BlackoutDate, setting *domain.BookingLimitSetting) *env {
	appts := &fakeAppointmentRepo{}
	tx := &passthroughTxManager{}
	limits := &fakeLimitRepo{setting: setting}
	uc := NewUseCase(
		appts,
		&fakeBlackoutRepo{blackouts: blackouts},
		&fakeCapacityRepo{buckets: buckets},
		limits,
		tx,
		domain.DefaultClosedWeekdays(),
		nopLogger{},
	)
	return &env{appts: appts, tx: tx, uc: uc, limits: limits}
}

func TestExecute_CreatesPendingAppointmentInsideTransaction(t *testing.T) {
	e := newEnv([]*domain.TimeSlotCapacity{mondayBucket("09:00", "17:00", 3)}, nil, nil)

	resp, err := e.uc.Execute(context.Background(), &Request{
		CustomerID: 1, ServiceID: 2, Date: monday, StartTime: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1, e.tx.calls)
	require.Len(t, e.appts.appointments, 1)
}

func TestExecute_FourthBookingRejectedUntilCancellation(t *testing.T) {
	e := newEnv([]*domain.TimeSlotCapacity{mondayBucket("09:00", "10:00", 3)}, nil, nil)

	for i, at := range []types.TimeString{"09:00", "09:30", "09:45"} {
		_, err := e.uc.Execute(context.Background(), &Request{
			CustomerID: int64(i + 1), ServiceID: 1, Date: monday, StartTime: at,
		})
		require.NoError(t, err)
	}

	// Четвертая запись в любой точке бакета отклоняется
	_, err := e.uc.Execute(context.Background(), &Request{
		CustomerID: 4, ServiceID: 1, Date: monday, StartTime: "09:15",
	})
	assert.ErrorIs(t, err, ErrCapacityFull)

	// Отмена одной из трех освобождает место
	e.appts.appointments[0].Status = domain.StatusCancelled
	resp, err := e.uc.Execute(context.Background(), &Request{
		CustomerID: 4, ServiceID: 1, Date: monday, StartTime: "09:15",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_DailyLimitEnforced(t *testing.T) {
	setting := &domain.BookingLimitSetting{DailyBookingLimitPerUser: 2, IsActive: true}
	e := newEnv([]*domain.TimeSlotCapacity{mondayBucket("09:00", "17:00", 10)}, nil, setting)

	for _, at := range []types.TimeString{"09:00", "09:30"} {
		_, err := e.uc.Execute(context.Background(), &Request{
			CustomerID: 1, ServiceID: 1, Date: monday, StartTime: at,
		})
		require.NoError(t, err)
	}

	_, err := e.uc.Execute(context.Background(), &Request{
		CustomerID: 1, ServiceID: 1, Date: monday, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrDailyLimitReached)

	// Другой клиент лимитом не ограничен
	_, err = e.uc.Execute(context.Background(), &Request{
		CustomerID: 2, ServiceID: 1, Date: monday, StartTime: "10:00",
	})
	assert.NoError(t, err)
}

func TestExecute_NoLimitSettingMeansUnbounded(t *testing.T) {
	e := newEnv([]*domain.TimeSlotCapacity{mondayBucket("09:00", "17:00", 10)}, nil, nil)

	for _, at := range []types.TimeString{"09:00", "09:30", "10:00", "10:30"} {
		_, err := e.uc.Execute(context.Background(), &Request{
			CustomerID: 1, ServiceID: 1, Date: monday, StartTime: at,
		})
		require.NoError(t, err)
	}
}

func TestExecute_RejectionSentinels(t *testing.T) {
	blackout := &domain.BlackoutDate{ID: 1, Date: &monday}
	saturday := monday.AddDate(0, 0, 5)

	tests := []struct {
		name      string
		blackouts []*domain.BlackoutDate
		req       *Request
		wantErr   error
	}{
		{
			name:      "blackout",
			blackouts: []*domain.BlackoutDate{blackout},
			req:       &Request{CustomerID: 1, ServiceID: 1, Date: monday, StartTime: "10:00"},
			wantErr:   ErrDateBlackedOut,
		},
		{
			name:    "closed day",
			req:     &Request{CustomerID: 1, ServiceID: 1, Date: saturday, StartTime: "10:00"},
			wantErr: ErrClosedDay,
		},
		{
			name:    "outside business hours",
			req:     &Request{CustomerID: 1, ServiceID: 1, Date: monday, StartTime: "18:00"},
			wantErr: ErrOutsideBusinessHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv([]*domain.TimeSlotCapacity{mondayBucket("09:00", "17:00", 3)}, tt.blackouts, nil)
			_, err := e.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	e := newEnv(nil, nil, nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "no customer", req: &Request{ServiceID: 1, Date: monday, StartTime: "10:00"}},
		{name: "no service", req: &Request{CustomerID: 1, Date: monday, StartTime: "10:00"}},
		{name: "no date", req: &Request{CustomerID: 1, ServiceID: 1, StartTime: "10:00"}},
		{name: "bad time", req: &Request{CustomerID: 1, ServiceID: 1, Date: monday, StartTime: "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// Транзакция не открывается при невалидном входе
			assert.Equal(t, 0, e.tx.calls)
		})
	}
}
