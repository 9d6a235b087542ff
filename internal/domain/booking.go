package domain

import (
	"time"

	"github.com/avdmi/salon-booking-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingKind distinguishes client appointments from owner-blocked slots
type BookingKind string

const (
	// KindBooking обычная запись клиента
	KindBooking BookingKind = "booking"

	// KindBlocked слот, закрытый владельцем (перерыв, личное время);
	// занимает место наравне с обычной записью
	KindBlocked BookingKind = "blocked"
)

// Booking represents an appointment entry in an owner's calendar.
// Записи никогда не удаляются физически: отмена меняет статус,
// история сохраняется для аудита.
type Booking struct {
	ID        int64
	OwnerKey  string // email владельца бизнеса
	Date      time.Time
	StartTime types.TimeString
	Kind      BookingKind
	Status    BookingStatus

	// Данные клиента (пустые для kind=blocked)
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	ServiceName *string
	Notes       *string

	// Поля переходов: каждое выставляется ровно один раз
	CancelledBy *string
	CancelledAt *time.Time
	CompletedAt *time.Time
	MarkedAt    *time.Time

	// SlotFreed вычисляется один раз в момент отмены (правило 6 часов)
	// и больше не пересчитывается. Чисто информационный флаг:
	// на подсчет занятости слота не влияет.
	SlotFreed *bool

	ReminderSent bool
	RemindedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts against slot capacity.
// Отмененные и no-show записи место не занимают; completed занимает.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsTerminal returns true if no further status transition is allowed
func (b *Booking) IsTerminal() bool {
	return b.Status != StatusConfirmed
}

// IsClientBooking returns true for an ordinary client appointment
func (b *Booking) IsClientBooking() bool {
	return b.Kind == KindBooking
}

// StartsAt combines Date and StartTime into a wall-clock moment.
// Часовой пояс локальный для процесса, без явной конфигурации.
func (b *Booking) StartsAt() (time.Time, error) {
	return CombineDateTime(b.Date, b.StartTime)
}

// CombineDateTime собирает дату и время слота в момент локального времени
func CombineDateTime(date time.Time, start types.TimeString) (time.Time, error) {
	hour, minute, err := start.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local), nil
}

// OwnerBookingsFilter фильтр для выборки записей владельца
type OwnerBookingsFilter struct {
	OwnerKey        string         // обязательный параметр
	Date            *time.Time     // конкретная дата (опционально)
	Status          *BookingStatus // фильтр по статусу (опционально)
	IncludeInactive bool           // включать ли отмененные и no-show
}
