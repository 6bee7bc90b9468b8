package suggest_alternatives

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeAppointmentRepo struct {
	byDate map[string][]*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.byDate[date.Format(domain.DateFormat)], nil
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

var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

// narrowGrid короткая сетка, чтобы тесты перечисляли слоты явно
func narrowGrid() domain.SlotGrid {
	return domain.SlotGrid{StartTime: "09:00", EndTime: "11:00", StepMinutes: 30}
}

func allDaysBucket(start, end string, max int) *domain.TimeSlotCapacity {
	return &domain.TimeSlotCapacity{
		ID:              1,
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		MaxAppointments: max,
		Active:          true,
	}
}

func appointmentAt(date time.Time, start string) *domain.Appointment {
	return &domain.Appointment{
		CustomerID: 1,
		ServiceID:  1,
		Date:       date,
		StartTime:  types.TimeString(start),
		Status:     domain.StatusApproved,
	}
}

func newUseCase(appts *fakeAppointmentRepo, buckets []*domain.TimeSlotCapacity, blackouts []*domain.BlackoutDate) *UseCase {
	return NewUseCase(
		appts,
		&fakeBlackoutRepo{blackouts: blackouts},
		&fakeCapacityRepo{buckets: buckets},
		narrowGrid(),
		domain.DefaultClosedWeekdays(),
		nopLogger{},
	)
}

func TestExecute_SameDayAlternativesExcludePreferredTime(t *testing.T) {
	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{}}
	uc := newUseCase(appts, []*domain.TimeSlotCapacity{allDaysBucket("09:00", "17:00", 5)}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		PreferredDate: monday,
		PreferredTime: "09:30",
	})
	require.NoError(t, err)

	times := make([]types.TimeString, 0, len(resp.Alternatives))
	for _, alt := range resp.Alternatives {
		assert.Equal(t, "same day, different time", alt.Description)
		assert.Equal(t, monday, alt.Date)
		times = append(times, alt.Time)
	}
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30"}, times)
}

func TestExecute_SkipsSlotsAtOrAboveUtilizationCeiling(t *testing.T) {
	// Бакет 09:00-10:00 на 3 места с двумя записями: 2/3 > 60%.
	// Бакет 10:00-11:00 свободен.
	busy := allDaysBucket("09:00", "10:00", 3)
	free := allDaysBucket("10:00", "11:00", 3)
	free.ID = 2

	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{
		monday.Format(domain.DateFormat): {
			appointmentAt(monday, "09:00"),
			appointmentAt(monday, "09:30"),
		},
	}}
	uc := newUseCase(appts, []*domain.TimeSlotCapacity{busy, free}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		PreferredDate: monday,
		PreferredTime: "09:00",
	})
	require.NoError(t, err)

	times := make([]types.TimeString, 0, len(resp.Alternatives))
	for _, alt := range resp.Alternatives {
		times = append(times, alt.Time)
	}
	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, times)
}

func TestExecute_OrderedByUtilizationThenTime(t *testing.T) {
	// 09:00-10:00 занят на 1/4, 10:00-11:00 пуст: пустой бакет идет первым
	quarter := allDaysBucket("09:00", "10:00", 4)
	empty := allDaysBucket("10:00", "11:00", 4)
	empty.ID = 2

	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{
		monday.Format(domain.DateFormat): {appointmentAt(monday, "09:15")},
	}}
	uc := newUseCase(appts, []*domain.TimeSlotCapacity{quarter, empty}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		PreferredDate: monday,
		PreferredTime: "16:00",
	})
	require.NoError(t, err)
	require.Len(t, resp.Alternatives, 4)

	assert.Equal(t, types.TimeString("10:00"), resp.Alternatives[0].Time)
	assert.Equal(t, 4, resp.Alternatives[0].AvailableCapacity)
	assert.Equal(t, types.TimeString("10:30"), resp.Alternatives[1].Time)
	assert.Equal(t, types.TimeString("09:00"), resp.Alternatives[2].Time)
	assert.Equal(t, 3, resp.Alternatives[2].AvailableCapacity)
	assert.Equal(t, types.TimeString("09:30"), resp.Alternatives[3].Time)
}

func TestExecute_FallsBackToNextDay(t *testing.T) {
	// Понедельник полностью выкуплен, вторник свободен
	bucket := allDaysBucket("09:00", "17:00", 1)
	tuesday := monday.AddDate(0, 0, 1)

	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{
		monday.Format(domain.DateFormat): {appointmentAt(monday, "09:00")},
	}}
	uc := newUseCase(appts, []*domain.TimeSlotCapacity{bucket}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		PreferredDate: monday,
		PreferredTime: "09:00",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Alternatives)

	for _, alt := range resp.Alternatives {
		assert.Equal(t, tuesday, alt.Date)
		assert.Equal(t, "next day", alt.Description)
	}
	// На следующий день запрошенное время снова допустимо
	assert.Equal(t, types.TimeString("09:00"), resp.Alternatives[0].Time)
}

func TestExecute_CapsAtMaxAlternatives(t *testing.T) {
	wideGrid := domain.SlotGrid{StartTime: "09:00", EndTime: "17:00", StepMinutes: 30}
	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{}}
	uc := NewUseCase(
		appts,
		&fakeBlackoutRepo{},
		&fakeCapacityRepo{buckets: []*domain.TimeSlotCapacity{allDaysBucket("09:00", "17:00", 5)}},
		wideGrid,
		domain.DefaultClosedWeekdays(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PreferredDate: monday,
		PreferredTime: "09:00",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Alternatives, domain.MaxAlternatives)
}

func TestExecute_NoAlternativesWithinHorizon(t *testing.T) {
	// Блэкаут на оба дня горизонта
	blackouts := []*domain.BlackoutDate{
		{ID: 1, Recurring: true, Weekdays: []time.Weekday{time.Monday, time.Tuesday}},
	}
	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{}}
	uc := newUseCase(appts, []*domain.TimeSlotCapacity{allDaysBucket("09:00", "17:00", 5)}, blackouts)

	resp, err := uc.Execute(context.Background(), &Request{
		PreferredDate: monday,
		PreferredTime: "09:00",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Alternatives)
}
