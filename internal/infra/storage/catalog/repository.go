package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

// Repository репозиторий мастеров и услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SaveMaster создает или полностью перезаписывает мастера.
// Расписание хранится в JSONB.
func (r *Repository) SaveMaster(ctx context.Context, master *domain.Master) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule, err := json.Marshal(master.Schedule)
	if err != nil {
		return fmt.Errorf("%w: SaveMaster - marshal schedule: %v", ErrSchedule, err)
	}

	query, args, err := psqlbuilder.Insert("masters").
		Columns(
			"id",
			"name",
			"specialization",
			"phone",
			"color",
			"schedule",
			"is_active",
			"created_at",
		).
		Values(
			master.ID,
			master.Name,
			master.Specialization,
			master.Phone,
			master.Color,
			schedule,
			master.IsActive,
			master.CreatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			specialization = EXCLUDED.specialization,
			phone = EXCLUDED.phone,
			color = EXCLUDED.color,
			schedule = EXCLUDED.schedule,
			is_active = EXCLUDED.is_active`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveMaster - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveMaster - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListMasters возвращает всех мастеров, включая неактивных
func (r *Repository) ListMasters(ctx context.Context) ([]*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"specialization",
		"phone",
		"color",
		"schedule",
		"is_active",
		"created_at",
	).
		From("masters").
		OrderBy("created_at, id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListMasters - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMasters - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	masters := make([]*domain.Master, 0)
	for rows.Next() {
		var master domain.Master
		var schedule []byte

		if err := rows.Scan(
			&master.ID,
			&master.Name,
			&master.Specialization,
			&master.Phone,
			&master.Color,
			&schedule,
			&master.IsActive,
			&master.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListMasters - scan master: %v", ErrScanRow, err)
		}

		if err := json.Unmarshal(schedule, &master.Schedule); err != nil {
			return nil, fmt.Errorf("%w: ListMasters - master id=%s: %v", ErrSchedule, master.ID, err)
		}
		masters = append(masters, &master)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMasters - iterate rows: %v", ErrScanRow, err)
	}
	return masters, nil
}

// SaveService создает или полностью перезаписывает услугу
func (r *Repository) SaveService(ctx context.Context, service *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"id",
			"name",
			"price",
			"duration_minutes",
			"category",
			"color",
			"is_active",
			"created_at",
		).
		Values(
			service.ID,
			service.Name,
			service.Price,
			service.DurationMinutes,
			service.Category,
			service.Color,
			service.IsActive,
			service.CreatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			duration_minutes = EXCLUDED.duration_minutes,
			category = EXCLUDED.category,
			color = EXCLUDED.color,
			is_active = EXCLUDED.is_active`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveService - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveService - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListServices возвращает все услуги, включая неактивные
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"duration_minutes",
		"category",
		"color",
		"is_active",
		"created_at",
	).
		From("services").
		OrderBy("created_at, id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Price,
			&service.DurationMinutes,
			&service.Category,
			&service.Color,
			&service.IsActive,
			&service.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - iterate rows: %v", ErrScanRow, err)
	}
	return services, nil
}
