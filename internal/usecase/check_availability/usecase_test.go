package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monday is a fixed reference Monday used across the tests
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newUseCase(
	appointments []*domain.Appointment,
	blackouts []*domain.BlackoutDate,
	buckets []*domain.TimeSlotCapacity,
) *UseCase {
	return NewUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeBlackoutRepo{blackouts: blackouts},
		&fakeCapacityRepo{buckets: buckets},
		domain.DefaultClosedWeekdays(),
		nopLogger{},
	)
}

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

func appointmentAt(date time.Time, start string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		CustomerID: 1,
		ServiceID:  1,
		Date:       date,
		StartTime:  types.TimeString(start),
		Status:     status,
	}
}

func TestExecute_FullDayBlackoutBlocksAnyTime(t *testing.T) {
	blackout := &domain.BlackoutDate{
		ID:     1,
		Date:   &monday,
		Reason: ptr.Ptr("public holiday"),
	}
	uc := newUseCase(nil, []*domain.BlackoutDate{blackout}, []*domain.TimeSlotCapacity{
		mondayBucket("09:00", "17:00", 5),
	})

	for _, at := range []string{"09:00", "12:30", "16:30"} {
		resp, err := uc.Execute(context.Background(), &Request{Date: monday, Time: types.TimeString(at)})
		require.NoError(t, err)
		assert.False(t, resp.Bookable)
		require.NotNil(t, resp.Reason)
		assert.Equal(t, ReasonBlackout, resp.Reason.Kind)
		assert.Contains(t, resp.Reason.Message, "public holiday")
	}
}

func TestExecute_RecurringBlackoutMatchesExactWeekday(t *testing.T) {
	blackout := &domain.BlackoutDate{
		ID:        1,
		Recurring: true,
		Weekdays:  []time.Weekday{time.Monday},
	}
	uc := newUseCase(nil, []*domain.BlackoutDate{blackout}, []*domain.TimeSlotCapacity{
		mondayBucket("09:00", "17:00", 5),
	})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Time: "10:00"})
	require.NoError(t, err)
	assert.False(t, resp.Bookable)
	assert.Equal(t, ReasonBlackout, resp.Reason.Kind)
}

func TestExecute_TimeRangedBlackoutLeavesRestOfDayOpen(t *testing.T) {
	blackout := &domain.BlackoutDate{
		ID:        1,
		Date:      &monday,
		StartTime: ptr.Ptr(types.TimeString("12:00")),
		EndTime:   ptr.Ptr(types.TimeString("14:00")),
	}
	uc := newUseCase(nil, []*domain.BlackoutDate{blackout}, []*domain.TimeSlotCapacity{
		mondayBucket("09:00", "17:00", 5),
	})

	blocked, err := uc.Execute(context.Background(), &Request{Date: monday, Time: "12:00"})
	require.NoError(t, err)
	assert.False(t, blocked.Bookable)
	assert.Equal(t, ReasonBlackout, blocked.Reason.Kind)

	// Конец диапазона не включается: 14:00 уже доступно
	open, err := uc.Execute(context.Background(), &Request{Date: monday, Time: "14:00"})
	require.NoError(t, err)
	assert.True(t, open.Bookable)
}

func TestExecute_ClosedWeekdayWithoutBuckets(t *testing.T) {
	saturday := monday.AddDate(0, 0, 5)
	uc := newUseCase(nil, nil, []*domain.TimeSlotCapacity{
		mondayBucket("09:00", "17:00", 5),
	})

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday, Time: "10:00"})
	require.NoError(t, err)
	assert.False(t, resp.Bookable)
	assert.Equal(t, ReasonClosed, resp.Reason.Kind)
}

func TestExecute_ClosedWeekdayWithBucketStaysOpen(t *testing.T) {
	saturday := monday.AddDate(0, 0, 5)
	wd := time.Saturday
	bucket := &domain.TimeSlotCapacity{
		ID:              1,
		Weekday:         &wd,
		StartTime:       "10:00",
		EndTime:         "14:00",
		MaxAppointments: 2,
		Active:          true,
	}
	uc := newUseCase(nil, nil, []*domain.TimeSlotCapacity{bucket})

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday, Time: "10:30"})
	require.NoError(t, err)
	assert.True(t, resp.Bookable)
}

func TestExecute_NoBucketMeansOutsideBusinessHours(t *testing.T) {
	uc := newUseCase(nil, nil, []*domain.TimeSlotCapacity{
		mondayBucket("09:00", "12:00", 5),
	})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Time: "18:00"})
	require.NoError(t, err)
	assert.False(t, resp.Bookable)
	assert.Equal(t, ReasonDefault, resp.Reason.Kind)
}

func TestExecute_ExplicitWeekdayBucketBeatsAllWeekdaysBucket(t *testing.T) {
	// Общий бакет разрешает 5 записей, бакет понедельника только 1
	allDays := &domain.TimeSlotCapacity{
		ID:              1,
		StartTime:       "09:00",
		EndTime:         "17:00",
		MaxAppointments: 5,
		Active:          true,
	}
	mondayOnly := mondayBucket("09:00", "17:00", 1)
	mondayOnly.ID = 2

	appointments := []*domain.Appointment{
		appointmentAt(monday, "09:00", domain.StatusApproved),
	}
	uc := newUseCase(appointments, nil, []*domain.TimeSlotCapacity{allDays, mondayOnly})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Time: "10:00"})
	require.NoError(t, err)
	assert.False(t, resp.Bookable)
	assert.Equal(t, ReasonCapacity, resp.Reason.Kind)
}

func TestExecute_CapacityCountingIgnoresCancelled(t *testing.T) {
	bucket := mondayBucket("09:00", "10:00", 3)
	appointments := []*domain.Appointment{
		appointmentAt(monday, "09:00", domain.StatusApproved),
		appointmentAt(monday, "09:30", domain.StatusPending),
		appointmentAt(monday, "09:45", domain.StatusNoShow),
	}
	uc := newUseCase(appointments, nil, []*domain.TimeSlotCapacity{bucket})

	// Три не-отмененные записи заполняют бакет
	full, err := uc.Execute(context.Background(), &Request{Date: monday, Time: "09:15"})
	require.NoError(t, err)
	assert.False(t, full.Bookable)
	assert.Equal(t, ReasonCapacity, full.Reason.Kind)

	// Отмена одной из них освобождает место
	appointments[1].Status = domain.StatusCancelled
	freed, err := uc.Execute(context.Background(), &Request{Date: monday, Time: "09:15"})
	require.NoError(t, err)
	assert.True(t, freed.Bookable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero date", req: &Request{Time: "10:00"}},
		{name: "empty time", req: &Request{Date: monday}},
		{name: "malformed time", req: &Request{Date: monday, Time: "25:99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
