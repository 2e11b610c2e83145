package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

// Repository репозиторий кассовых операций. Только вставка и чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кассы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SaveTransaction добавляет операцию в журнал
func (r *Repository) SaveTransaction(ctx context.Context, tx *domain.CashTransaction) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cash_transactions").
		Columns(
			"id",
			"type",
			"amount",
			"category",
			"description",
			"master_id",
			"appointment_id",
			"created_at",
			"created_by",
		).
		Values(
			tx.ID,
			tx.Type,
			tx.Amount,
			tx.Category,
			tx.Description,
			nullString(tx.MasterID),
			nullString(tx.AppointmentID),
			tx.CreatedAt,
			tx.CreatedBy,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveTransaction - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveTransaction - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListTransactions возвращает журнал в хронологическом порядке
func (r *Repository) ListTransactions(ctx context.Context) ([]*domain.CashTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"type",
		"amount",
		"category",
		"description",
		"master_id",
		"appointment_id",
		"created_at",
		"created_by",
	).
		From("cash_transactions").
		OrderBy("created_at, id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.CashTransaction, 0)
	for rows.Next() {
		var tx domain.CashTransaction
		var masterID, appointmentID sql.NullString

		if err := rows.Scan(
			&tx.ID,
			&tx.Type,
			&tx.Amount,
			&tx.Category,
			&tx.Description,
			&masterID,
			&appointmentID,
			&tx.CreatedAt,
			&tx.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: ListTransactions - scan transaction: %v", ErrScanRow, err)
		}

		tx.MasterID = masterID.String
		tx.AppointmentID = appointmentID.String
		list = append(list, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - iterate rows: %v", ErrScanRow, err)
	}
	return list, nil
}

// nullString пустая строка пишется как NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
