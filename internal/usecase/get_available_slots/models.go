package get_available_slots

import (
	"time"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	OwnerKey string    // ключ владельца (email)
	Date     time.Time // дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на день
type Response struct {
	OwnerKey string    // ключ владельца
	Date     time.Time // дата, на которую запрашивались слоты
	Slots    []Slot    // список слотов с занятостью
}

// Slot модель временного слота
type Slot struct {
	StartTime      types.TimeString // время начала слота (например, "10:00")
	AvailableSpots int              // количество свободных мест
	TotalSpots     int              // общее количество мест
}
