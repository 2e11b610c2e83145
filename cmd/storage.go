package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/client"
	ledgerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-StudioBooking/internal/service/clients"
	ledgerService "github.com/m04kA/SMC-StudioBooking/internal/service/ledger"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
)

type catalogStorage interface {
	catalogService.Repository
	ListMasters(ctx context.Context) ([]*domain.Master, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
}

type clientStorage interface {
	clientsService.Repository
	ListClients(ctx context.Context) ([]*domain.Client, error)
}

type appointmentStorage interface {
	appointments.Repository
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)
}

type ledgerStorage interface {
	ledgerService.Repository
	ListTransactions(ctx context.Context) ([]*domain.CashTransaction, error)
}

// storage репозитории студии и менеджер транзакций
type storage struct {
	catalog      catalogStorage
	clients      clientStorage
	appointments appointmentStorage
	ledger       ledgerStorage
	tx           appointments.TxManager
}

// openStorage без базы возвращает хранилище, которое ничего не сохраняет
func openStorage(ctx context.Context, db *sql.DB, m *metrics.Metrics, stop <-chan struct{}, log *logger.Logger) (*storage, error) {
	if db == nil {
		return &storage{
			catalog:      memory.Discard{},
			clients:      memory.Discard{},
			appointments: memory.Discard{},
			ledger:       memory.Discard{},
			tx:           txmanager.Noop{},
		}, nil
	}

	if err := migrations.Up(ctx, db, log); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	wrapped := dbmetrics.WrapWithDefault(db, m, stop)
	return &storage{
		catalog:      catalogRepo.NewRepository(wrapped),
		clients:      clientRepo.NewRepository(wrapped),
		appointments: appointmentRepo.NewRepository(wrapped),
		ledger:       ledgerRepo.NewRepository(wrapped),
		tx:           txmanager.NewTransactionManager(wrapped),
	}, nil
}

// restore загружает сохранённое состояние в сервисы. Порядок важен: записи ссылаются на каталог и клиентов.
func (s *storage) restore(
	ctx context.Context,
	catalog *catalogService.Service,
	clients *clientsService.Service,
	store *appointments.Service,
	ledger *ledgerService.Service,
) error {
	masters, err := s.catalog.ListMasters(ctx)
	if err != nil {
		return fmt.Errorf("masters: %w", err)
	}
	services, err := s.catalog.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("services: %w", err)
	}
	catalog.Restore(masters, services)

	clientList, err := s.clients.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("clients: %w", err)
	}
	clients.Restore(clientList)

	appointmentList, err := s.appointments.ListAppointments(ctx)
	if err != nil {
		return fmt.Errorf("appointments: %w", err)
	}
	store.Restore(appointmentList)

	transactions, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("transactions: %w", err)
	}
	ledger.Restore(transactions)

	return nil
}
