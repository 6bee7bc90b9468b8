package limitsetting

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий настройки дневного лимита записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настройки лимита
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive возвращает текущую активную настройку лимита.
// Активной считается последняя запись с is_active = true.
func (r *Repository) GetActive(ctx context.Context) (*domain.BookingLimitSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "daily_booking_limit_per_user", "is_active", "created_at", "updated_at",
	).
		From("booking_limit_settings").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var setting domain.BookingLimitSetting
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&setting.ID,
		&setting.DailyBookingLimitPerUser,
		&setting.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan setting: %v", ErrScanRow, err)
	}

	setting.CreatedAt = createdAt.Time
	setting.UpdatedAt = updatedAt.Time

	return &setting, nil
}

// Create создает новую запись настройки лимита
func (r *Repository) Create(ctx context.Context, limit int, isActive bool) (*domain.BookingLimitSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_limit_settings").
		Columns("daily_booking_limit_per_user", "is_active").
		Values(limit, isActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	setting := domain.BookingLimitSetting{
		DailyBookingLimitPerUser: limit,
		IsActive:                 isActive,
	}
	var createdAt, updatedAt sql.NullTime

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&setting.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	setting.CreatedAt = createdAt.Time
	setting.UpdatedAt = updatedAt.Time

	return &setting, nil
}

// DeactivateAll снимает флаг активности со всех настроек.
// Вызывается внутри транзакции перед созданием новой настройки,
// чтобы активной оставалась ровно одна запись.
func (r *Repository) DeactivateAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_limit_settings").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeactivateAll - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeactivateAll - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
