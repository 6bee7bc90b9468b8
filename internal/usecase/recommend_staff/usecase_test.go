package recommend_staff

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
	byDate        []*domain.Appointment
	byService     map[int64]int
	byCustomer    map[int64]int
	allTimeStats  map[int64]domain.StaffCompletionStats
	recentStats   map[int64]domain.StaffCompletionStats
	recentSince   time.Time
	recentSinceOK bool
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.byDate, nil
}

func (f *fakeAppointmentRepo) CountCompletedByStaffAndService(_ context.Context, staffID, _ int64) (int, error) {
	return f.byService[staffID], nil
}

func (f *fakeAppointmentRepo) CountCompletedByStaffAndCustomer(_ context.Context, staffID, _ int64) (int, error) {
	return f.byCustomer[staffID], nil
}

func (f *fakeAppointmentRepo) GetStaffCompletionStats(_ context.Context, staffID int64) (domain.StaffCompletionStats, error) {
	return f.allTimeStats[staffID], nil
}

func (f *fakeAppointmentRepo) GetStaffRecentCompletionStats(_ context.Context, staffID int64, since time.Time) (domain.StaffCompletionStats, error) {
	f.recentSince = since
	f.recentSinceOK = true
	return f.recentStats[staffID], nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

func TestExecute_NewStaffScoresWorkload25Performance10(t *testing.T) {
	appts := &fakeAppointmentRepo{
		allTimeStats: map[int64]domain.StaffCompletionStats{},
		recentStats:  map[int64]domain.StaffCompletionStats{},
	}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{{ID: 1, Name: "Nina"}}}
	uc := NewUseCase(appts, staff, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday, Time: "10:00"})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)

	rec := resp.Recommendations[0]
	assert.Equal(t, domain.WorkloadScoreFree, rec.Details["workload"])
	assert.Equal(t, domain.PerformanceScoreNewStaff, rec.Details["performance"])
	assert.Equal(t, domain.RecentScoreNoData, rec.Details["recent_completion"])
	// Услуга и клиент не указаны: факторов специализации и истории нет
	assert.NotContains(t, rec.Details, "specialization")
	assert.NotContains(t, rec.Details, "customer_history")
	assert.Equal(t, 45, rec.Score)
}

func TestExecute_ConflictingAppointmentExcludesStaff(t *testing.T) {
	appts := &fakeAppointmentRepo{
		byDate:       []*domain.Appointment{staffAppointment(1, "10:00")},
		allTimeStats: map[int64]domain.StaffCompletionStats{},
		recentStats:  map[int64]domain.StaffCompletionStats{},
	}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{
		{ID: 1, Name: "Busy"},
		{ID: 2, Name: "Free"},
	}}
	uc := NewUseCase(appts, staff, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday, Time: "10:00"})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, int64(2), resp.Recommendations[0].StaffID)
}

func TestExecute_UnavailableDateExcludesStaff(t *testing.T) {
	appts := &fakeAppointmentRepo{
		allTimeStats: map[int64]domain.StaffCompletionStats{},
		recentStats:  map[int64]domain.StaffCompletionStats{},
	}
	staff := &fakeStaffRepo{
		staff:          []*domain.StaffProfile{{ID: 1, Name: "Away"}, {ID: 2, Name: "Here"}},
		unavailableIDs: []int64{1},
	}
	uc := NewUseCase(appts, staff, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday, Time: "10:00"})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, int64(2), resp.Recommendations[0].StaffID)
}

func TestExecute_RanksBySpecializationAndHistory(t *testing.T) {
	appts := &fakeAppointmentRepo{
		byService:  map[int64]int{1: 12, 2: 1},
		byCustomer: map[int64]int{1: 6, 2: 0},
		allTimeStats: map[int64]domain.StaffCompletionStats{
			1: {Completed: 19, NonCancelled: 20}, // 95% -> 20
			2: {Completed: 19, NonCancelled: 20},
		},
		recentStats: map[int64]domain.StaffCompletionStats{
			1: {Completed: 9, NonCancelled: 10}, // 90% -> 15
			2: {Completed: 9, NonCancelled: 10},
		},
	}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{
		{ID: 2, Name: "Novice"},
		{ID: 1, Name: "Expert"},
	}}
	uc := NewUseCase(appts, staff, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       wednesday,
		Time:       "10:00",
		ServiceID:  ptr.Ptr(int64(5)),
		CustomerID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 2)

	expert := resp.Recommendations[0]
	assert.Equal(t, int64(1), expert.StaffID)
	assert.Equal(t, domain.SpecializationScoreExpert, expert.Details["specialization"])
	assert.Equal(t, domain.CustomerHistoryScoreStrong, expert.Details["customer_history"])
	// 25 + 20 + 20 + 20 + 15
	assert.Equal(t, 100, expert.Score)

	novice := resp.Recommendations[1]
	assert.Equal(t, int64(2), novice.StaffID)
	assert.Equal(t, domain.SpecializationScoreNone, novice.Details["specialization"])
	// Нулевые факторы не попадают в reasons
	assert.NotContains(t, novice.Reasons, "completed 1 appointments of this service type")
}

func TestExecute_StableOrderOnTies(t *testing.T) {
	appts := &fakeAppointmentRepo{
		allTimeStats: map[int64]domain.StaffCompletionStats{},
		recentStats:  map[int64]domain.StaffCompletionStats{},
	}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{
		{ID: 3, Name: "First"},
		{ID: 1, Name: "Second"},
		{ID: 2, Name: "Third"},
	}}
	uc := NewUseCase(appts, staff, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday, Time: "10:00"})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, int64(3), resp.Recommendations[0].StaffID)
	assert.Equal(t, int64(1), resp.Recommendations[1].StaffID)
	assert.Equal(t, int64(2), resp.Recommendations[2].StaffID)
}

func TestExecute_TopThreeOnly(t *testing.T) {
	appts := &fakeAppointmentRepo{
		allTimeStats: map[int64]domain.StaffCompletionStats{},
		recentStats:  map[int64]domain.StaffCompletionStats{},
	}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
	}}
	uc := NewUseCase(appts, staff, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday, Time: "10:00"})
	require.NoError(t, err)
	assert.Len(t, resp.Recommendations, domain.MaxStaffRecommendations)
}

func TestExecute_EmptyStaffPool(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday, Time: "10:00"})
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
}

func TestExecute_RecentWindowIsThreeMonths(t *testing.T) {
	appts := &fakeAppointmentRepo{
		allTimeStats: map[int64]domain.StaffCompletionStats{},
		recentStats:  map[int64]domain.StaffCompletionStats{},
	}
	staff := &fakeStaffRepo{staff: []*domain.StaffProfile{{ID: 1}}}
	uc := NewUseCase(appts, staff, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: wednesday}

	_, err := uc.Execute(context.Background(), &Request{Date: wednesday, Time: "10:00"})
	require.NoError(t, err)
	require.True(t, appts.recentSinceOK)
	assert.Equal(t, wednesday.AddDate(0, -domain.RecentWindowMonths, 0), appts.recentSince)
}
