// Package memory persistence for the in-memory mode: state lives only in the services.
package memory

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Discard принимает все записи и ничего не хранит
type Discard struct{}

func (Discard) SaveMaster(ctx context.Context, master *domain.Master) error    { return nil }
func (Discard) SaveService(ctx context.Context, service *domain.Service) error { return nil }
func (Discard) SaveClient(ctx context.Context, client *domain.Client) error    { return nil }
func (Discard) SaveAppointment(ctx context.Context, appointment *domain.Appointment) error {
	return nil
}
func (Discard) DeleteAppointment(ctx context.Context, id string) error { return nil }
func (Discard) SaveTransaction(ctx context.Context, tx *domain.CashTransaction) error {
	return nil
}

func (Discard) ListMasters(ctx context.Context) ([]*domain.Master, error)   { return nil, nil }
func (Discard) ListServices(ctx context.Context) ([]*domain.Service, error) { return nil, nil }
func (Discard) ListClients(ctx context.Context) ([]*domain.Client, error)   { return nil, nil }
func (Discard) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return nil, nil
}
func (Discard) ListTransactions(ctx context.Context) ([]*domain.CashTransaction, error) {
	return nil, nil
}
