package get_available_slots

import (
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
	"github.com/avdmi/salon-booking-service/pkg/types"
)

// generateTimeSlots генерирует список всех временных слотов на день.
// Слоты идут от начала рабочего дня с фиксированным шагом 60/SlotsPerHour
// минут. Для сегодняшней даты уже прошедшие слоты отбрасываются.
func generateTimeSlots(
	schedule *domain.OwnerSchedule,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Прошедшие даты и нерабочие дни слотов не имеют
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}
	if !schedule.IsWorkingDay(requestDate.Weekday()) {
		return []types.TimeString{}, nil
	}

	openTime := types.NewTimeString(time.Date(0, 1, 1, schedule.StartHour, 0, 0, 0, time.UTC))
	closeTime := types.NewTimeString(time.Date(0, 1, 1, schedule.EndHour, 0, 0, 0, time.UTC))
	step := schedule.SlotStepMinutes()

	// Шаг 1: генерируем все слоты от открытия до закрытия
	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		allSlots = append(allSlots, currentSlot)

		next, err := currentSlot.AddMinutes(step)
		if err != nil {
			return nil, err
		}
		currentSlot = next
	}

	// Шаг 2: если дата не сегодня, подходят все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: для сегодняшней даты оставляем только слоты, которые еще не начались
	currentTime := types.NewTimeString(now)

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(currentTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// calculateAvailableSpots вычисляет количество свободных мест для каждого слота
func calculateAvailableSpots(
	slots []types.TimeString,
	bookings []*domain.Booking,
	slotsPerHour int,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		taken := domain.CountActiveAt(bookings, slotStart)

		availableSpots := slotsPerHour - taken
		if availableSpots < 0 {
			availableSpots = 0
		}

		result[i] = Slot{
			StartTime:      slotStart,
			AvailableSpots: availableSpots,
			TotalSpots:     slotsPerHour,
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
