package domain

import "github.com/avdmi/salon-booking-service/pkg/types"

// AvailableSlot represents a bookable time slot with its occupancy
type AvailableSlot struct {
	StartTime      types.TimeString
	AvailableSpots int
	TotalSpots     int
}

// IsFull returns true if the slot has no available spots
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// IsFullyAvailable returns true if all spots are available
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}

// CountActiveAt считает записи, занимающие слот ровно в указанное время.
// Отмененные и no-show не считаются независимо от значения SlotFreed;
// заблокированные слоты (kind=blocked) считаются наравне с записями.
func CountActiveAt(bookings []*Booking, at types.TimeString) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.StartTime == at {
			count++
		}
	}
	return count
}
