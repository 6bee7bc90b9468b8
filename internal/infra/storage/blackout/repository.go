package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блэкаут-датами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блэкаут-дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все блэкауты: разовые даты и повторяющиеся правила
func (r *Repository) List(ctx context.Context) ([]*domain.BlackoutDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "blackout_date", "recurring", "weekdays",
		"start_time", "end_time", "reason", "created_at",
	).
		From("blackout_dates").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.BlackoutDate, 0)
	for rows.Next() {
		b, err := scanBlackout(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan blackout: %v", ErrScanRow, err)
		}
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

// Create создает блэкаут-дату или повторяющееся правило
func (r *Repository) Create(ctx context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weekdays := make(pq.Int64Array, len(b.Weekdays))
	for i, wd := range b.Weekdays {
		weekdays[i] = int64(wd)
	}

	query, args, err := psqlbuilder.Insert("blackout_dates").
		Columns("blackout_date", "recurring", "weekdays", "start_time", "end_time", "reason").
		Values(b.Date, b.Recurring, weekdays, b.StartTime, b.EndTime, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// Delete удаляет блэкаут по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blackout_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlackoutNotFound
	}

	return nil
}

func scanBlackout(rows *sql.Rows) (*domain.BlackoutDate, error) {
	var b domain.BlackoutDate
	var weekdays pq.Int64Array
	var createdAt sql.NullTime

	err := rows.Scan(
		&b.ID,
		&b.Date,
		&b.Recurring,
		&weekdays,
		&b.StartTime,
		&b.EndTime,
		&b.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if len(weekdays) > 0 {
		b.Weekdays = make([]time.Weekday, len(weekdays))
		for i, wd := range weekdays {
			b.Weekdays[i] = time.Weekday(wd)
		}
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}
