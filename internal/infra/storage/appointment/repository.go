package appointment

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

var appointmentColumns = []string{
	"id",
	"customer_id",
	"staff_id",
	"service_id",
	"appointment_date",
	"start_time",
	"status",
	"notes",
	"completed_at",
	"completion_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её -
// это основной путь для create_booking, где проверка вместимости
// и вставка должны выполняться в одной сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"staff_id",
			"service_id",
			"appointment_date",
			"start_time",
			"status",
			"notes",
		).
		Values(
			appt.CustomerID,
			appt.StaffID,
			appt.ServiceID,
			appt.Date,
			appt.StartTime,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointmentRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByDate получает все записи на дату, занимающие вместимость
// (все статусы, кроме cancelled), отсортированные по времени начала.
// Внутри транзакции добавляется FOR UPDATE - так create_booking
// блокирует строки дня на время проверки вместимости.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("start_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByCustomerWithFilter получает записи клиента с фильтрацией по дате и статусу
func (r *Repository) GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerAppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"customer_id": filter.CustomerID}).
		OrderBy("appointment_date DESC, start_time DESC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// CountActiveByCustomerOnDate считает записи клиента на дату, расходующие
// дневной лимит (pending и approved)
func (r *Repository) CountActiveByCustomerOnDate(ctx context.Context, customerID int64, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	limitStatuses := make([]string, len(domain.DailyLimitStatuses))
	for i, s := range domain.DailyLimitStatuses {
		limitStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.Eq{"status": limitStatuses}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByCustomerOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByCustomerOnDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountCompletedByStaffAndService считает завершенные записи сотрудника
// по конкретной услуге (фактор специализации)
func (r *Repository) CountCompletedByStaffAndService(ctx context.Context, staffID, serviceID int64) (int, error) {
	return r.countCompleted(ctx, squirrel.Eq{"staff_id": staffID, "service_id": serviceID})
}

// CountCompletedByStaffAndCustomer считает завершенные записи между
// сотрудником и клиентом (фактор истории)
func (r *Repository) CountCompletedByStaffAndCustomer(ctx context.Context, staffID, customerID int64) (int, error) {
	return r.countCompleted(ctx, squirrel.Eq{"staff_id": staffID, "customer_id": customerID})
}

func (r *Repository) countCompleted(ctx context.Context, where squirrel.Eq) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(where).
		Where(squirrel.Eq{"status": string(domain.StatusCompleted)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: countCompleted - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countCompleted - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetStaffCompletionStats считает агрегаты завершаемости сотрудника за все время
func (r *Repository) GetStaffCompletionStats(ctx context.Context, staffID int64) (domain.StaffCompletionStats, error) {
	return r.staffCompletionStats(ctx, staffID, nil)
}

// GetStaffRecentCompletionStats считает те же агрегаты по записям,
// созданным начиная с since
func (r *Repository) GetStaffRecentCompletionStats(ctx context.Context, staffID int64, since time.Time) (domain.StaffCompletionStats, error) {
	return r.staffCompletionStats(ctx, staffID, &since)
}

func (r *Repository) staffCompletionStats(ctx context.Context, staffID int64, since *time.Time) (domain.StaffCompletionStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE status <> 'cancelled')",
	).
		From("appointments").
		Where(squirrel.Eq{"staff_id": staffID})

	if since != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *since})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return domain.StaffCompletionStats{}, fmt.Errorf("%w: staffCompletionStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.StaffCompletionStats
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&stats.Completed, &stats.NonCancelled); err != nil {
		return domain.StaffCompletionStats{}, fmt.Errorf("%w: staffCompletionStats - scan counts: %v", ErrScanRow, err)
	}

	return stats, nil
}

// GetCustomerHistoryStats считает историю клиента за все время:
// всего записей, no-show и отмен
func (r *Repository) GetCustomerHistoryStats(ctx context.Context, customerID int64) (domain.CustomerHistoryStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'no_show')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
	).
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		ToSql()

	if err != nil {
		return domain.CustomerHistoryStats{}, fmt.Errorf("%w: GetCustomerHistoryStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.CustomerHistoryStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.NoShows, &stats.Cancellations)
	if err != nil {
		return domain.CustomerHistoryStats{}, fmt.Errorf("%w: GetCustomerHistoryStats - scan counts: %v", ErrScanRow, err)
	}

	return stats, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Complete помечает запись завершенной с отметкой времени и заметками
func (r *Repository) Complete(ctx context.Context, id int64, completedAt time.Time, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("completed_at", completedAt).
		Set("completion_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Complete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// AssignStaff назначает сотрудника на запись
func (r *Repository) AssignStaff(ctx context.Context, id int64, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("staff_id", staffID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignStaff - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AssignStaff - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AssignStaff - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointmentRow(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.StaffID,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&appt.Notes,
		&appt.CompletedAt,
		&appt.CompletionNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
