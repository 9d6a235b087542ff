package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

func TestEvaluateCancellation_SlotFreed(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	startTime := types.TimeString("15:00")

	tests := []struct {
		name      string
		now       time.Time
		slotFreed bool
	}{
		{
			name:      "far before the window",
			now:       time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local),
			slotFreed: true,
		},
		{
			name:      "exactly 6 hours before start",
			now:       time.Date(2026, 9, 15, 9, 0, 0, 0, time.Local),
			slotFreed: true,
		},
		{
			name:      "one second inside the window",
			now:       time.Date(2026, 9, 15, 9, 0, 1, 0, time.Local),
			slotFreed: false,
		},
		{
			name:      "5h59m before start",
			now:       time.Date(2026, 9, 15, 9, 1, 0, 0, time.Local),
			slotFreed: false,
		},
		{
			name:      "after the booking started",
			now:       time.Date(2026, 9, 15, 16, 0, 0, 0, time.Local),
			slotFreed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EvaluateCancellation(date, startTime, tt.now)
			require.NoError(t, err)

			assert.Equal(t, StatusCancelled, result.Status)
			assert.Equal(t, tt.slotFreed, result.SlotFreed)
		})
	}
}

func TestEvaluateCancellation_Deterministic(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.Local)

	first, err := EvaluateCancellation(date, types.TimeString("15:00"), now)
	require.NoError(t, err)

	second, err := EvaluateCancellation(date, types.TimeString("15:00"), now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateCancellation_InvalidTime(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	_, err := EvaluateCancellation(date, types.TimeString("25:99"), time.Now())
	assert.Error(t, err)
}
