package capacity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL: нарушение уникального индекса
const pgUniqueViolation = "23505"

var capacityColumns = []string{
	"id", "weekday", "start_time", "end_time",
	"max_appointments", "active", "created_at", "updated_at",
}

// Repository репозиторий для работы с бакетами вместимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бакетов вместимости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все бакеты, включая неактивные
func (r *Repository) List(ctx context.Context) ([]*domain.TimeSlotCapacity, error) {
	return r.list(ctx, nil)
}

// ListActive возвращает только активные бакеты - рабочий набор
// для проверок доступности
func (r *Repository) ListActive(ctx context.Context) ([]*domain.TimeSlotCapacity, error) {
	return r.list(ctx, squirrel.Eq{"active": true})
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq) ([]*domain.TimeSlotCapacity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(capacityColumns...).
		From("time_slot_capacity").
		OrderBy("weekday ASC NULLS LAST, start_time ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	buckets := make([]*domain.TimeSlotCapacity, 0)
	for rows.Next() {
		bucket, err := scanBucket(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan bucket: %v", ErrScanRow, err)
		}
		buckets = append(buckets, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return buckets, nil
}

// Create создает бакет вместимости. Пара (weekday, start_time, end_time)
// уникальна - дубликат транслируется в ErrDuplicateBucket.
func (r *Repository) Create(ctx context.Context, bucket *domain.TimeSlotCapacity) (*domain.TimeSlotCapacity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var weekday sql.NullInt64
	if bucket.Weekday != nil {
		weekday = sql.NullInt64{Int64: int64(*bucket.Weekday), Valid: true}
	}

	query, args, err := psqlbuilder.Insert("time_slot_capacity").
		Columns("weekday", "start_time", "end_time", "max_appointments", "active").
		Values(weekday, bucket.StartTime, bucket.EndTime, bucket.MaxAppointments, bucket.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&bucket.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: Create: %v", ErrDuplicateBucket, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bucket.CreatedAt = createdAt.Time
	bucket.UpdatedAt = updatedAt.Time

	return bucket, nil
}

// Update обновляет лимит и флаг активности бакета
func (r *Repository) Update(ctx context.Context, id int64, maxAppointments int, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slot_capacity").
		Set("max_appointments", maxAppointments).
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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
		return ErrBucketNotFound
	}

	return nil
}

// Delete удаляет бакет по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slot_capacity").
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
		return ErrBucketNotFound
	}

	return nil
}

func scanBucket(rows *sql.Rows) (*domain.TimeSlotCapacity, error) {
	var bucket domain.TimeSlotCapacity
	var weekday sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&bucket.ID,
		&weekday,
		&bucket.StartTime,
		&bucket.EndTime,
		&bucket.MaxAppointments,
		&bucket.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if weekday.Valid {
		wd := time.Weekday(weekday.Int64)
		bucket.Weekday = &wd
	}

	bucket.CreatedAt = createdAt.Time
	bucket.UpdatedAt = updatedAt.Time

	return &bucket, nil
}
