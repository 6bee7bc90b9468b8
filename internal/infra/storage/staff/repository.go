package staff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Роль пользователя, дающая профиль сотрудника
const roleStaff = "staff"

// Repository репозиторий профилей сотрудников и их недоступности.
// Профили читаются из таблицы users по роли staff.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListStaff возвращает всех пользователей с ролью staff
func (r *Repository) ListStaff(ctx context.Context) ([]*domain.StaffProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("users").
		Where(squirrel.Eq{"role": roleStaff}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.StaffProfile, 0)
	for rows.Next() {
		var profile domain.StaffProfile
		if err := rows.Scan(&profile.ID, &profile.Name); err != nil {
			return nil, fmt.Errorf("%w: ListStaff - scan profile: %v", ErrScanRow, err)
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaff - rows error: %v", ErrScanRow, err)
	}

	return profiles, nil
}

// GetStaffByID возвращает профиль сотрудника по ID
func (r *Repository) GetStaffByID(ctx context.Context, id int64) (*domain.StaffProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("users").
		Where(squirrel.Eq{"id": id, "role": roleStaff}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.StaffProfile
	err = executor.QueryRowContext(ctx, query, args...).Scan(&profile.ID, &profile.Name)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - scan profile: %v", ErrScanRow, err)
	}

	return &profile, nil
}

// ListUnavailableStaffIDs возвращает ID сотрудников, недоступных на дату
func (r *Repository) ListUnavailableStaffIDs(ctx context.Context, date time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("staff_id").
		From("staff_unavailability").
		Where(squirrel.Eq{"unavailable_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUnavailableStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnavailableStaffIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListUnavailableStaffIDs - scan staff id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUnavailableStaffIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// IsUnavailable проверяет, отмечен ли сотрудник недоступным на дату
func (r *Repository) IsUnavailable(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("staff_unavailability").
		Where(squirrel.Eq{"staff_id": staffID, "unavailable_date": date}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsUnavailable - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsUnavailable - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// CreateUnavailability отмечает сотрудника недоступным на дату
func (r *Repository) CreateUnavailability(ctx context.Context, u *domain.StaffUnavailability) (*domain.StaffUnavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_unavailability").
		Columns("staff_id", "unavailable_date", "reason").
		Values(u.StaffID, u.Date, u.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateUnavailability - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateUnavailability - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time

	return u, nil
}

// DeleteUnavailability удаляет отметку недоступности по ID
func (r *Repository) DeleteUnavailability(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_unavailability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteUnavailability - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteUnavailability - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteUnavailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUnavailabilityNotFound
	}

	return nil
}

// ListUnavailabilityByStaff возвращает все отметки недоступности сотрудника
func (r *Repository) ListUnavailabilityByStaff(ctx context.Context, staffID int64) ([]*domain.StaffUnavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "staff_id", "unavailable_date", "reason", "created_at").
		From("staff_unavailability").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("unavailable_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUnavailabilityByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnavailabilityByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.StaffUnavailability, 0)
	for rows.Next() {
		var u domain.StaffUnavailability
		var createdAt sql.NullTime
		if err := rows.Scan(&u.ID, &u.StaffID, &u.Date, &u.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListUnavailabilityByStaff - scan row: %v", ErrScanRow, err)
		}
		u.CreatedAt = createdAt.Time
		items = append(items, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUnavailabilityByStaff - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
