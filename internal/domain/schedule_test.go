package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

func TestOwnerSchedule_SlotStepMinutes(t *testing.T) {
	tests := []struct {
		slotsPerHour int
		step         int
	}{
		{1, 60},
		{2, 30},
		{3, 20},
		{4, 15},
		{6, 10},
		{12, 5},
	}

	for _, tt := range tests {
		s := &OwnerSchedule{SlotsPerHour: tt.slotsPerHour}
		assert.Equal(t, tt.step, s.SlotStepMinutes())
	}
}

func TestOwnerSchedule_IsWorkingDay(t *testing.T) {
	s := &OwnerSchedule{WorkingDays: []int{1, 2, 3, 4, 5}}

	assert.True(t, s.IsWorkingDay(time.Monday))
	assert.True(t, s.IsWorkingDay(time.Friday))
	assert.False(t, s.IsWorkingDay(time.Saturday))
	assert.False(t, s.IsWorkingDay(time.Sunday))
}

func TestOwnerSchedule_AlignedSlot(t *testing.T) {
	s := &OwnerSchedule{StartHour: 9, EndHour: 18, SlotsPerHour: 2}

	tests := []struct {
		at      types.TimeString
		aligned bool
	}{
		{"09:00", true},
		{"09:30", true},
		{"17:30", true},
		{"09:15", false}, // не по сетке 30 минут
		{"08:30", false}, // до открытия
		{"18:00", false}, // час окончания не включается
		{"19:00", false},
		{"xx:yy", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.at), func(t *testing.T) {
			assert.Equal(t, tt.aligned, s.AlignedSlot(tt.at))
		})
	}
}

func TestOwnerSchedule_HasService(t *testing.T) {
	s := &OwnerSchedule{Services: []string{"Стрижка", "Маникюр"}}

	assert.True(t, s.HasService("Стрижка"))
	assert.False(t, s.HasService("Массаж"))
}

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule("owner@example.com")

	assert.Equal(t, "owner@example.com", s.OwnerKey)
	assert.Equal(t, DefaultStartHour, s.StartHour)
	assert.Equal(t, DefaultEndHour, s.EndHour)
	assert.Equal(t, DefaultSlotsPerHour, s.SlotsPerHour)
	assert.Equal(t, DefaultWorkingDays, s.WorkingDays)
	assert.Empty(t, s.Services)
}
