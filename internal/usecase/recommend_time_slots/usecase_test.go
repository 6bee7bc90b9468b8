package recommend_time_slots

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

type fakeStaffRepo struct {
	staff          []*domain.StaffProfile
	unavailableIDs []int64
}

func (f *fakeStaffRepo) ListStaff(_ context.Context) ([]*domain.StaffProfile, error) {
	return f.staff, nil
}

func (f *fakeStaffRepo) ListUnavailableStaffIDs(_ context.Context, _ time.Time) ([]int64, error) {
	return f.unavailableIDs, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var wednesday = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

func staffAppointment(staffID int64, start string) *domain.Appointment {
	return &domain.Appointment{
		CustomerID: 7,
		StaffID:    ptr.Ptr(staffID),
		ServiceID:  1,
		Date:       wednesday,
		StartTime:  types.TimeString(start),
		Status:     domain.StatusApproved,
	}
}

func TestScoreSlot(t *testing.T) {
	tests := []struct {
		name           string
		slot           types.TimeString
		availableStaff int
		bookings       int
		wantScore      int
		wantAvailable  bool
	}{
		{
			// 20 (дневное окно) + 15 (пусто) + 5 (ровный час)
			name: "midday empty on the hour", slot: "11:00",
			availableStaff: 2, bookings: 0,
			wantScore: 40, wantAvailable: true,
		},
		{
			// 10 (рабочие часы) + 15 + 5
			name: "morning empty on the hour", slot: "09:00",
			availableStaff: 1, bookings: 0,
			wantScore: 30, wantAvailable: true,
		},
		{
			// 20 + 10 (не больше двух броней) + 0 (не ровный час)
			name: "midday quiet half hour", slot: "10:30",
			availableStaff: 1, bookings: 2,
			wantScore: 30, wantAvailable: true,
		},
		{
			// 10 + 0 (три брони) + 5
			name: "busy afternoon hour", slot: "15:00",
			availableStaff: 1, bookings: 3,
			wantScore: 15, wantAvailable: true,
		},
		{
			// Конец дневного окна не включается: 14:00 это уже рабочие часы
			name: "window end excluded", slot: "14:00",
			availableStaff: 1, bookings: 0,
			wantScore: 30, wantAvailable: true,
		},
		{
			name: "no free staff", slot: "11:00",
			availableStaff: 0, bookings: 0,
			wantScore: 0, wantAvailable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreSlot(tt.slot, tt.availableStaff, tt.bookings)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantAvailable, got.Available)
		})
	}
}

func TestExecute_UnavailableSlotsSortAfterAvailable(t *testing.T) {
	// Один сотрудник, занятый в 10:00: этот слот недоступен,
	// но по номинальному скорингу был бы лучшим
	grid := domain.SlotGrid{StartTime: "09:30", EndTime: "11:00", StepMinutes: 30}
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		staffAppointment(1, "10:00"),
	}}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{{ID: 1, Name: "Solo"}}}

	uc := NewUseCase(appts, staff, grid, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, types.TimeString("10:00"), last.Time)
	assert.False(t, last.Available)
	assert.Equal(t, 0, last.AvailableStaff)

	for _, slot := range resp.Slots[:len(resp.Slots)-1] {
		assert.True(t, slot.Available)
	}
}

func TestExecute_RankingAndCap(t *testing.T) {
	grid := domain.SlotGrid{StartTime: "09:00", EndTime: "17:00", StepMinutes: 30}
	appts := &fakeAppointmentRepo{}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{{ID: 1}, {ID: 2}}}

	uc := NewUseCase(appts, staff, grid, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.MaxSlotRecommendations)

	// Лучшие слоты - ровные часы дневного окна (40), в порядке сетки
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
	assert.Equal(t, 40, resp.Slots[0].Score)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[1].Time)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[2].Time)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[3].Time)
	// Затем получасовые слоты дневного окна (35)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[4].Time)
	assert.Equal(t, 35, resp.Slots[4].Score)
}

func TestExecute_EmptyStaffPoolReturnsEmptyList(t *testing.T) {
	grid := domain.DefaultSlotGrid()
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{}, grid, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StaffUnavailableForWholeDay(t *testing.T) {
	grid := domain.SlotGrid{StartTime: "09:00", EndTime: "10:00", StepMinutes: 30}
	staff := &fakeStaffRepo{
		staff:          []*domain.StaffProfile{{ID: 1}},
		unavailableIDs: []int64{1},
	}

	uc := NewUseCase(&fakeAppointmentRepo{}, staff, grid, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	for _, slot := range resp.Slots {
		assert.False(t, slot.Available)
		assert.Equal(t, 0, slot.Score)
	}
}
