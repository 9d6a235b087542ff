package owner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/avdmi/salon-booking-service/internal/domain"
	"github.com/avdmi/salon-booking-service/pkg/dbmetrics"
	"github.com/avdmi/salon-booking-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Repository репозиторий владельцев и приглашений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория владельцев
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateOwner создает владельца. Email уникален.
func (r *Repository) CreateOwner(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("owners").
		Columns("email", "name", "password_hash").
		Values(o.Email, o.Name, o.PasswordHash).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOwner - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrOwnerExists
		}
		return nil, fmt.Errorf("%w: CreateOwner - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	return o, nil
}

// GetOwnerByEmail получает владельца по email
func (r *Repository) GetOwnerByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "name", "password_hash", "created_at").
		From("owners").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOwnerByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Owner
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.Email,
		&o.Name,
		&o.PasswordHash,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOwnerByEmail - scan owner: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time
	return &o, nil
}

// CreateInvitation создает одноразовое приглашение на регистрацию
func (r *Repository) CreateInvitation(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invitations").
		Columns("token", "email").
		Values(inv.Token, inv.Email).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateInvitation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateInvitation - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time
	return inv, nil
}

// GetInvitation получает приглашение по токену
func (r *Repository) GetInvitation(ctx context.Context, token uuid.UUID) (*domain.Invitation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("token", "email", "created_at", "used_at").
		From("invitations").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetInvitation - build select query: %v", ErrBuildQuery, err)
	}

	var inv domain.Invitation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.Token,
		&inv.Email,
		&createdAt,
		&inv.UsedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvitationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInvitation - scan invitation: %v", ErrScanRow, err)
	}

	inv.CreatedAt = createdAt.Time
	return &inv, nil
}

// MarkInvitationUsed гасит приглашение. Условие used_at IS NULL в WHERE
// защищает от одновременного использования одного токена дважды.
func (r *Repository) MarkInvitationUsed(ctx context.Context, token uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invitations").
		Set("used_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"token": token}).
		Where("used_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkInvitationUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkInvitationUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkInvitationUsed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInvitationUsed
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
