package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avdmi/salon-booking-service/internal/domain"
	"github.com/avdmi/salon-booking-service/pkg/dbmetrics"
	"github.com/avdmi/salon-booking-service/pkg/psqlbuilder"
)

// bookingColumns полный набор колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"owner_key",
	"booking_date",
	"start_time",
	"kind",
	"status",
	"client_name",
	"client_email",
	"client_phone",
	"service_name",
	"notes",
	"cancelled_by",
	"cancelled_at",
	"completed_at",
	"marked_at",
	"slot_freed",
	"reminder_sent",
	"reminded_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её:
// проверка занятости слота и вставка должны идти одной атомарной операцией.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"owner_key",
			"booking_date",
			"start_time",
			"kind",
			"status",
			"client_name",
			"client_email",
			"client_phone",
			"service_name",
			"notes",
		).
		Values(
			b.OwnerKey,
			b.Date,
			b.StartTime,
			b.Kind,
			b.Status,
			b.ClientName,
			b.ClientEmail,
			b.ClientPhone,
			b.ServiceName,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает запись по ID в рамках одного владельца.
// Ключ (id, ownerKey): владелец видит только свои записи.
func (r *Repository) GetByID(ctx context.Context, id int64, ownerKey string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "owner_key": ownerKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByOwnerWithFilter получает записи владельца с фильтрацией по дате и статусу.
// Внутри транзакции при выборке на конкретную дату добавляется FOR UPDATE:
// строки дня блокируются на время проверки занятости слота.
func (r *Repository) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"owner_key": filter.OwnerKey})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Без явного статуса и без неактивных исключаем отмененные и no-show
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// MarkCompleted переводит запись confirmed -> completed и ставит completed_at.
// Условие status='confirmed' в WHERE защищает от повторных переходов.
func (r *Repository) MarkCompleted(ctx context.Context, id int64, ownerKey string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("completed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "owner_key": ownerKey, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, "MarkCompleted", query, args, id, ownerKey)
}

// MarkNoShow переводит запись confirmed -> no_show и ставит marked_at
func (r *Repository) MarkNoShow(ctx context.Context, id int64, ownerKey string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusNoShow).
		Set("marked_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "owner_key": ownerKey, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkNoShow - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, "MarkNoShow", query, args, id, ownerKey)
}

// Cancel переводит запись confirmed -> cancelled, фиксирует кто отменил
// и вычисленный на момент отмены флаг slot_freed
func (r *Repository) Cancel(ctx context.Context, id int64, ownerKey string, cancelledBy string, slotFreed bool) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_by", cancelledBy).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("slot_freed", slotFreed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "owner_key": ownerKey, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, "Cancel", query, args, id, ownerKey)
}

// execTransition выполняет условное обновление статуса и различает
// "запись не найдена" и "запись уже в терминальном статусе"
func (r *Repository) execTransition(ctx context.Context, method, query string, args []interface{}, id int64, ownerKey string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id, ownerKey); err != nil {
			return ErrBookingNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

// FindDueReminders возвращает записи на указанную дату, по которым еще
// не отправлялось напоминание: подтвержденные клиентские записи
func (r *Repository) FindDueReminders(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booking_date":  date,
			"status":        domain.StatusConfirmed,
			"kind":          domain.KindBooking,
			"reminder_sent": false,
		}).
		OrderBy("owner_key ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindDueReminders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindDueReminders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ClaimReminder атомарно помечает запись как напомненную.
// Возвращает true только если флаг выставила именно эта операция:
// отправлять письмо можно только при true. Повторный вызов (параллельный
// свип, ручная отправка) флаг не перехватит, дубликат не уйдет.
func (r *Repository) ClaimReminder(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reminder_sent", true).
		Set("reminded_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":            id,
			"status":        domain.StatusConfirmed,
			"reminder_sent": false,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ClaimReminder - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ClaimReminder - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: ClaimReminder - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.OwnerKey,
		&b.Date,
		&b.StartTime,
		&b.Kind,
		&b.Status,
		&b.ClientName,
		&b.ClientEmail,
		&b.ClientPhone,
		&b.ServiceName,
		&b.Notes,
		&b.CancelledBy,
		&b.CancelledAt,
		&b.CompletedAt,
		&b.MarkedAt,
		&b.SlotFreed,
		&b.ReminderSent,
		&b.RemindedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс записей
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
