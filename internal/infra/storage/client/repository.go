package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SaveClient создает или перезаписывает карточку клиента.
// Внутри транзакции записи (через context) пишет в неё же.
func (r *Repository) SaveClient(ctx context.Context, client *domain.Client) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"id",
			"name",
			"phone",
			"email",
			"notes",
			"total_visits",
			"favorite_services",
			"created_at",
			"last_visit",
		).
		Values(
			client.ID,
			client.Name,
			client.Phone,
			client.Email,
			client.Notes,
			client.TotalVisits,
			pq.Array(client.FavoriteServices),
			client.CreatedAt,
			client.LastVisit,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			notes = EXCLUDED.notes,
			total_visits = EXCLUDED.total_visits,
			favorite_services = EXCLUDED.favorite_services,
			last_visit = EXCLUDED.last_visit`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveClient - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveClient - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListClients возвращает всех клиентов в порядке регистрации
func (r *Repository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"email",
		"notes",
		"total_visits",
		"favorite_services",
		"created_at",
		"last_visit",
	).
		From("clients").
		OrderBy("created_at, id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListClients - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClients - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		var favorites pq.StringArray
		var lastVisit sql.NullTime

		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Phone,
			&client.Email,
			&client.Notes,
			&client.TotalVisits,
			&favorites,
			&client.CreatedAt,
			&lastVisit,
		); err != nil {
			return nil, fmt.Errorf("%w: ListClients - scan client: %v", ErrScanRow, err)
		}

		client.FavoriteServices = []string(favorites)
		if lastVisit.Valid {
			lv := lastVisit.Time
			client.LastVisit = &lv
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClients - iterate rows: %v", ErrScanRow, err)
	}
	return clients, nil
}
