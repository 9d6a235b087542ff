package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmi/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/schedule"
	"github.com/avdmi/salon-booking-service/pkg/types"
)

const testOwner = "owner@example.com"

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetByOwnerWithFilter(_ context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.OwnerKey != filter.OwnerKey {
			continue
		}
		if filter.Date != nil && !b.Date.Equal(*filter.Date) {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeScheduleRepo struct {
	schedule *domain.OwnerSchedule
	err      error
}

func (r *fakeScheduleRepo) GetByOwnerKey(_ context.Context, _ string) (*domain.OwnerSchedule, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.schedule, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testSchedule() *domain.OwnerSchedule {
	return &domain.OwnerSchedule{
		OwnerKey:     testOwner,
		StartHour:    9,
		EndHour:      17,
		WorkingDays:  []int{1, 2, 3, 4, 5},
		SlotsPerHour: 1,
	}
}

func newTestUseCase(schedule *domain.OwnerSchedule, bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeScheduleRepo{schedule: schedule},
		noopLogger{},
	).WithTimeProvider(&fixedTime{now: time.Date(2026, 9, 14, 12, 0, 0, 0, time.Local)})
}

func TestExecute_GeneratesHourlySlots(t *testing.T) {
	uc := newTestUseCase(testSchedule(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerKey: testOwner,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	// 9:00..16:00 при одном слоте в час
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[7].StartTime)

	for _, s := range resp.Slots {
		assert.Equal(t, 1, s.AvailableSpots)
		assert.Equal(t, 1, s.TotalSpots)
	}
}

func TestExecute_SubHourGrid(t *testing.T) {
	schedule := testSchedule()
	schedule.SlotsPerHour = 2
	uc := newTestUseCase(schedule, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerKey: testOwner,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	// Шаг 30 минут: 16 слотов с 09:00 по 16:30
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[1].StartTime)
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[15].StartTime)
	assert.Equal(t, 2, resp.Slots[0].TotalSpots)
}

func TestExecute_OccupancyReflectsBookings(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	bookings := []*domain.Booking{
		{OwnerKey: testOwner, Date: date, StartTime: "10:00", Status: domain.StatusConfirmed, Kind: domain.KindBooking},
		{OwnerKey: testOwner, Date: date, StartTime: "11:00", Status: domain.StatusCancelled, Kind: domain.KindBooking},
		{OwnerKey: testOwner, Date: date, StartTime: "12:00", Status: domain.StatusConfirmed, Kind: domain.KindBlocked},
	}
	uc := newTestUseCase(testSchedule(), bookings)

	resp, err := uc.Execute(context.Background(), &Request{OwnerKey: testOwner, Date: date})
	require.NoError(t, err)

	byTime := make(map[types.TimeString]Slot)
	for _, s := range resp.Slots {
		byTime[s.StartTime] = s
	}

	assert.Equal(t, 0, byTime["10:00"].AvailableSpots) // занят записью
	assert.Equal(t, 1, byTime["11:00"].AvailableSpots) // отмена освобождает слот
	assert.Equal(t, 0, byTime["12:00"].AvailableSpots) // занят блокировкой
}

func TestExecute_TodayFiltersPastSlots(t *testing.T) {
	uc := newTestUseCase(testSchedule(), nil)

	// Текущее время 12:00: остаются слоты с 12:00 и позже
	resp, err := uc.Execute(context.Background(), &Request{
		OwnerKey: testOwner,
		Date:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 5)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[0].StartTime)
}

func TestExecute_NonWorkingDayReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(testSchedule(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerKey: testOwner,
		Date:     time.Date(2026, 9, 19, 0, 0, 0, 0, time.Local), // суббота
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(testSchedule(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerKey: testOwner,
		Date:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ScheduleNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		OwnerKey: testOwner,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
