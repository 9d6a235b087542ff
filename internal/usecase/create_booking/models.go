package create_booking

import (
	"time"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	OwnerKey  string           // ключ владельца (email)
	Date      time.Time        // дата записи (без времени)
	StartTime types.TimeString // время начала слота (например, "10:00")
	Kind      string           // "booking" или "blocked"

	// Данные клиента (обязательны для kind=booking, игнорируются для blocked)
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	ServiceName *string
	Notes       *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	OwnerKey    string
	Date        time.Time
	StartTime   types.TimeString
	Kind        string
	Status      string
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	ServiceName *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
