package domain

import (
	"time"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

// OwnerSchedule represents the booking configuration of a single owner:
// working hours, working days, slot granularity and the offered services.
type OwnerSchedule struct {
	ID           int64
	OwnerKey     string // email владельца, уникален
	StartHour    int    // первый час, доступный для записи (включительно)
	EndHour      int    // час окончания записи (не включается)
	WorkingDays  []int  // 0=воскресенье..6=суббота
	SlotsPerHour int    // записей на один час; делитель 60
	Services     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SlotStepMinutes returns the sub-hour slot offset step in minutes
func (s *OwnerSchedule) SlotStepMinutes() int {
	return MinutesPerHour / s.SlotsPerHour
}

// IsWorkingDay returns true if bookings are accepted on the given weekday
func (s *OwnerSchedule) IsWorkingDay(d time.Weekday) bool {
	for _, wd := range s.WorkingDays {
		if wd == int(d) {
			return true
		}
	}
	return false
}

// HasService returns true if the owner offers the named service
func (s *OwnerSchedule) HasService(name string) bool {
	for _, svc := range s.Services {
		if svc == name {
			return true
		}
	}
	return false
}

// AlignedSlot проверяет, что время попадает в рабочие часы и
// выровнено по сетке слотов (минуты кратны шагу 60/SlotsPerHour).
func (s *OwnerSchedule) AlignedSlot(t types.TimeString) bool {
	hour, minute, err := t.Clock()
	if err != nil {
		return false
	}
	if hour < s.StartHour || hour >= s.EndHour {
		return false
	}
	return minute%s.SlotStepMinutes() == 0
}

// DefaultSchedule возвращает расписание по умолчанию для нового владельца
func DefaultSchedule(ownerKey string) *OwnerSchedule {
	days := make([]int, len(DefaultWorkingDays))
	copy(days, DefaultWorkingDays)

	return &OwnerSchedule{
		OwnerKey:     ownerKey,
		StartHour:    DefaultStartHour,
		EndHour:      DefaultEndHour,
		WorkingDays:  days,
		SlotsPerHour: DefaultSlotsPerHour,
		Services:     []string{},
	}
}
