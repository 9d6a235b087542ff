package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

func TestCountActiveAt(t *testing.T) {
	at := types.TimeString("10:00")

	bookings := []*Booking{
		{StartTime: "10:00", Status: StatusConfirmed, Kind: KindBooking},
		{StartTime: "10:00", Status: StatusCompleted, Kind: KindBooking},
		{StartTime: "10:00", Status: StatusCancelled, Kind: KindBooking},
		{StartTime: "10:00", Status: StatusNoShow, Kind: KindBooking},
		{StartTime: "11:00", Status: StatusConfirmed, Kind: KindBooking},
	}

	// confirmed + completed считаются, cancelled/no_show и другой час нет
	assert.Equal(t, 2, CountActiveAt(bookings, at))
}

func TestCountActiveAt_BlockedCountsAsTaken(t *testing.T) {
	bookings := []*Booking{
		{StartTime: "10:00", Status: StatusConfirmed, Kind: KindBlocked},
	}

	assert.Equal(t, 1, CountActiveAt(bookings, types.TimeString("10:00")))
}

func TestCountActiveAt_SlotFreedDoesNotAffectCount(t *testing.T) {
	freed := true
	bookings := []*Booking{
		// Поздняя отмена: slot_freed=false, но запись все равно отменена
		{StartTime: "10:00", Status: StatusCancelled, SlotFreed: new(bool)},
		// Чистая отмена
		{StartTime: "10:00", Status: StatusCancelled, SlotFreed: &freed},
	}

	// Отмененные записи не занимают место независимо от SlotFreed
	assert.Equal(t, 0, CountActiveAt(bookings, types.TimeString("10:00")))
}

func TestAvailableSlot(t *testing.T) {
	full := &AvailableSlot{StartTime: "10:00", AvailableSpots: 0, TotalSpots: 2}
	assert.True(t, full.IsFull())
	assert.False(t, full.IsFullyAvailable())

	free := &AvailableSlot{StartTime: "10:00", AvailableSpots: 2, TotalSpots: 2}
	assert.False(t, free.IsFull())
	assert.True(t, free.IsFullyAvailable())
}
