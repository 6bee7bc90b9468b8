package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"09:60", true},
		{"9:00", true},
		{"9am", true},
		{"", true},
	}

	for _, tt := range tests {
		err := TimeString(tt.value).Validate()
		if tt.wantErr {
			assert.Error(t, err, "value=%q", tt.value)
		} else {
			assert.NoError(t, err, "value=%q", tt.value)
		}
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 2, 14, 30, 45, 0, time.UTC)

	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:15")
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("17:45")

	assert.Equal(t, 17, ts.Hour())
	assert.Equal(t, 45, ts.Minute())

	// Некорректное значение не ломает вызов
	assert.Equal(t, 0, TimeString("bad").Hour())
	assert.Equal(t, 0, TimeString("bad").Minute())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("12:00").IsAfter("11:59"))
	assert.False(t, TimeString("11:59").IsAfter("12:00"))

	assert.True(t, TimeString("10:00").Equal("10:00"))
	assert.False(t, TimeString("10:00").Equal("10:01"))

	// Некорректные значения несравнимы
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("bad"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	ts, err = TimeString("10:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), ts)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres возвращает TIME со секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:59")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
