package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, false},

		// Терминальные статусы: никаких переходов
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusNoShow, StatusCompleted, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusConfirmed))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.True(t, IsValidStatus(StatusNoShow))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus(BookingStatus("pending")))
	assert.False(t, IsValidStatus(BookingStatus("")))
}

func TestBookingTerminalAndActive(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	assert.False(t, confirmed.IsTerminal())
	assert.True(t, confirmed.IsActive())

	completed := &Booking{Status: StatusCompleted}
	assert.True(t, completed.IsTerminal())
	// Выполненная запись место занимала и занимает
	assert.True(t, completed.IsActive())

	cancelled := &Booking{Status: StatusCancelled}
	assert.True(t, cancelled.IsTerminal())
	assert.False(t, cancelled.IsActive())

	noShow := &Booking{Status: StatusNoShow}
	assert.True(t, noShow.IsTerminal())
	assert.False(t, noShow.IsActive())
}
