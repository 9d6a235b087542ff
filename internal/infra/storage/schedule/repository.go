package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avdmi/salon-booking-service/internal/domain"
	"github.com/avdmi/salon-booking-service/pkg/dbmetrics"
	"github.com/avdmi/salon-booking-service/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникальности
const uniqueViolation = "23505"

// Repository репозиторий расписаний владельцев
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает расписание владельца (у владельца оно одно).
func (r *Repository) Create(ctx context.Context, s *domain.OwnerSchedule) (*domain.OwnerSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("owner_schedules").
		Columns(
			"owner_key",
			"start_hour",
			"end_hour",
			"working_days",
			"slots_per_hour",
			"services",
		).
		Values(
			s.OwnerKey,
			s.StartHour,
			s.EndHour,
			pq.Array(toInt64(s.WorkingDays)),
			s.SlotsPerHour,
			pq.Array(s.Services),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSchedule
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByOwnerKey получает расписание владельца по его ключу (email)
func (r *Repository) GetByOwnerKey(ctx context.Context, ownerKey string) (*domain.OwnerSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_key",
		"start_hour",
		"end_hour",
		"working_days",
		"slots_per_hour",
		"services",
		"created_at",
		"updated_at",
	).
		From("owner_schedules").
		Where(squirrel.Eq{"owner_key": ownerKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerKey - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.OwnerSchedule
	var createdAt, updatedAt sql.NullTime
	var workingDays []int64
	var services []string

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OwnerKey,
		&s.StartHour,
		&s.EndHour,
		pq.Array(&workingDays),
		&s.SlotsPerHour,
		pq.Array(&services),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerKey - scan schedule: %v", ErrScanRow, err)
	}

	s.WorkingDays = toInt(workingDays)
	s.Services = services
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update обновляет параметры расписания владельца
func (r *Repository) Update(ctx context.Context, s *domain.OwnerSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("owner_schedules").
		Set("start_hour", s.StartHour).
		Set("end_hour", s.EndHour).
		Set("working_days", pq.Array(toInt64(s.WorkingDays))).
		Set("slots_per_hour", s.SlotsPerHour).
		Set("services", pq.Array(s.Services)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"owner_key": s.OwnerKey}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

func toInt64(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

func toInt(in []int64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
