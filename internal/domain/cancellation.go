package domain

import (
	"time"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

// CancellationWindow порог "чистой" отмены: если до начала записи
// осталось не меньше этого времени, слот считается освобожденным заранее.
// Граница включительная: ровно 6 часов до начала считается чистой отменой.
const CancellationWindow = 6 * time.Hour

// CancellationResult результат оценки отмены
type CancellationResult struct {
	Status BookingStatus // всегда StatusCancelled: отмена не запрещается по времени
	// SlotFreed информационный флаг ранней отмены. На повторное
	// использование слота не влияет: отмененная запись в любом
	// случае перестает занимать место.
	SlotFreed bool
}

// EvaluateCancellation оценивает отмену записи на date/startTime в момент now.
// Детерминированна: результат зависит только от аргументов.
func EvaluateCancellation(date time.Time, startTime types.TimeString, now time.Time) (CancellationResult, error) {
	startsAt, err := CombineDateTime(date, startTime)
	if err != nil {
		return CancellationResult{}, err
	}

	// startsAt - now >= CancellationWindow
	slotFreed := !startsAt.Before(now.Add(CancellationWindow))

	return CancellationResult{
		Status:    StatusCancelled,
		SlotFreed: slotFreed,
	}, nil
}
