package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "9:30", "24:00", "10:60", "10-30", "10:30:00"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
	}
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2026, 9, 15, 10, 30, 45, 0, time.Local)
	assert.Equal(t, TimeString("10:30"), NewTimeString(at))
}

func TestTimeString_Clock(t *testing.T) {
	h, m, err := TimeString("14:45").Clock()
	require.NoError(t, err)
	assert.Equal(t, 14, h)
	assert.Equal(t, 45, m)

	_, _, err = TimeString("bad").Clock()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	got, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}
