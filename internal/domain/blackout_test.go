package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func timeRange(start, end string) (*types.TimeString, *types.TimeString) {
	s := types.TimeString(start)
	e := types.TimeString(end)
	return &s, &e
}

func TestBlackout_OneOffWholeDay(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	b := &BlackoutDate{Date: &date}

	assert.True(t, b.Matches(date, "09:00"))
	assert.True(t, b.Matches(date, "16:30"))
	assert.False(t, b.Matches(date.AddDate(0, 0, 1), "09:00"))
}

func TestBlackout_OneOffMatchesByCalendarDate(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	b := &BlackoutDate{Date: &date}

	// Время суток и локация не влияют на совпадение даты
	sameDay := time.Date(2025, 6, 2, 15, 45, 0, 0, time.UTC)
	assert.True(t, b.MatchesDate(sameDay))
}

func TestBlackout_RecurringWeekdays(t *testing.T) {
	b := &BlackoutDate{
		Recurring: true,
		Weekdays:  []time.Weekday{time.Monday, time.Friday},
	}

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, b.Matches(monday, "10:00"))
	assert.True(t, b.Matches(friday, "10:00"))
	assert.False(t, b.Matches(tuesday, "10:00"))
}

func TestBlackout_TimeRangeHalfOpen(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	start, end := timeRange("12:00", "14:00")
	b := &BlackoutDate{Date: &date, StartTime: start, EndTime: end}

	assert.False(t, b.Matches(date, "11:59"))
	assert.True(t, b.Matches(date, "12:00"))
	assert.True(t, b.Matches(date, "13:59"))
	// Верхняя граница не входит в диапазон
	assert.False(t, b.Matches(date, "14:00"))
}

func TestBlackout_HalfSpecifiedRangeBlocksWholeDay(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	start := types.TimeString("12:00")
	b := &BlackoutDate{Date: &date, StartTime: &start, Reason: ptr.Ptr("maintenance")}

	assert.True(t, b.AppliesToWholeDay())
	assert.True(t, b.Matches(date, "09:00"))
}
