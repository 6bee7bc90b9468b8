package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func bucket(id int64, weekday *time.Weekday, start, end string, max int, active bool) *TimeSlotCapacity {
	return &TimeSlotCapacity{
		ID:              id,
		Weekday:         weekday,
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		MaxAppointments: max,
		Active:          active,
	}
}

func TestMatchBucket_ExplicitWeekdayWins(t *testing.T) {
	allDays := bucket(1, nil, "09:00", "17:00", 5, true)
	mondayOnly := bucket(2, ptr.Ptr(time.Monday), "09:00", "17:00", 2, true)

	// Явный бакет побеждает независимо от порядка в списке
	matched := MatchBucket([]*TimeSlotCapacity{allDays, mondayOnly}, time.Monday, "10:00")
	require.NotNil(t, matched)
	assert.Equal(t, int64(2), matched.ID)

	matched = MatchBucket([]*TimeSlotCapacity{mondayOnly, allDays}, time.Monday, "10:00")
	require.NotNil(t, matched)
	assert.Equal(t, int64(2), matched.ID)

	// В другой день недели работает общий бакет
	matched = MatchBucket([]*TimeSlotCapacity{allDays, mondayOnly}, time.Tuesday, "10:00")
	require.NotNil(t, matched)
	assert.Equal(t, int64(1), matched.ID)
}

func TestMatchBucket_HalfOpenRange(t *testing.T) {
	b := bucket(1, nil, "09:00", "12:00", 3, true)
	buckets := []*TimeSlotCapacity{b}

	assert.NotNil(t, MatchBucket(buckets, time.Monday, "09:00"))
	assert.NotNil(t, MatchBucket(buckets, time.Monday, "11:59"))
	assert.Nil(t, MatchBucket(buckets, time.Monday, "12:00"))
	assert.Nil(t, MatchBucket(buckets, time.Monday, "08:59"))
}

func TestMatchBucket_SkipsInactive(t *testing.T) {
	inactive := bucket(1, nil, "09:00", "17:00", 3, false)

	assert.Nil(t, MatchBucket([]*TimeSlotCapacity{inactive}, time.Monday, "10:00"))
	assert.False(t, HasBucketForWeekday([]*TimeSlotCapacity{inactive}, time.Monday))
}

func TestHasBucketForWeekday(t *testing.T) {
	saturdayOnly := bucket(1, ptr.Ptr(time.Saturday), "10:00", "14:00", 2, true)
	buckets := []*TimeSlotCapacity{saturdayOnly}

	assert.True(t, HasBucketForWeekday(buckets, time.Saturday))
	assert.False(t, HasBucketForWeekday(buckets, time.Sunday))
}

func TestCountInBucket_OnlyCancelledFreesSlot(t *testing.T) {
	b := bucket(1, nil, "09:00", "12:00", 3, true)

	appointments := []*Appointment{
		{StartTime: "09:00", Status: StatusPending},
		{StartTime: "10:00", Status: StatusApproved},
		{StartTime: "10:30", Status: StatusCompleted},
		{StartTime: "11:00", Status: StatusNoShow},
		{StartTime: "11:30", Status: StatusCancelled}, // освобождает место
		{StartTime: "13:00", Status: StatusPending},   // вне бакета
	}

	assert.Equal(t, 4, CountInBucket(appointments, b))
}
