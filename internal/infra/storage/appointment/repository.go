package appointment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

// Repository репозиторий записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SaveAppointment создает или перезаписывает запись.
// Если в контексте передана активная транзакция, использует её:
// запись и счётчик визитов клиента фиксируются вместе.
func (r *Repository) SaveAppointment(ctx context.Context, appointment *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_id",
			"client_name",
			"client_phone",
			"master_id",
			"service_ids",
			"start_time",
			"end_time",
			"status",
			"notes",
			"created_at",
			"created_by",
		).
		Values(
			appointment.ID,
			appointment.ClientID,
			appointment.ClientName,
			appointment.ClientPhone,
			appointment.MasterID,
			pq.Array(appointment.ServiceIDs),
			appointment.StartTime,
			appointment.EndTime,
			appointment.Status,
			appointment.Notes,
			appointment.CreatedAt,
			appointment.CreatedBy,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			master_id = EXCLUDED.master_id,
			service_ids = EXCLUDED.service_ids,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveAppointment - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveAppointment - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteAppointment удаляет запись физически
func (r *Repository) DeleteAppointment(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteAppointment - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteAppointment - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteAppointment - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// ListAppointments возвращает все записи, отсортированные по началу
func (r *Repository) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"client_name",
		"client_phone",
		"master_id",
		"service_ids",
		"start_time",
		"end_time",
		"status",
		"notes",
		"created_at",
		"created_by",
	).
		From("appointments").
		OrderBy("start_time, id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var appointment domain.Appointment
		var serviceIDs pq.StringArray

		if err := rows.Scan(
			&appointment.ID,
			&appointment.ClientID,
			&appointment.ClientName,
			&appointment.ClientPhone,
			&appointment.MasterID,
			&serviceIDs,
			&appointment.StartTime,
			&appointment.EndTime,
			&appointment.Status,
			&appointment.Notes,
			&appointment.CreatedAt,
			&appointment.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: ListAppointments - scan appointment: %v", ErrScanRow, err)
		}

		appointment.ServiceIDs = []string(serviceIDs)
		appointments = append(appointments, &appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - iterate rows: %v", ErrScanRow, err)
	}
	return appointments, nil
}
