package create_appointment

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	appointmentModels "github.com/m04kA/SMC-StudioBooking/internal/service/appointments/models"
)

// UseCase запись клиента в два шага: определить клиента, затем создать запись
type UseCase struct {
	clients      ClientRegistry
	appointments AppointmentStore
	favorites    FavoritesProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clients ClientRegistry,
	appointments AppointmentStore,
	favorites FavoritesProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		clients:      clients,
		appointments: appointments,
		favorites:    favorites,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: master=%s, date=%s, time=%s, services=%v, role=%s",
		req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs, req.Actor.Role)

	// 1. Валидация формы
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: date %s rejected for role=%s", req.Date.Format(domain.DateFormat), req.Actor.Role)
		return nil, err
	}

	// 2. Клиент по телефону или имени, иначе новый
	resolved, err := uc.clients.Resolve(ctx, req.ClientName, req.ClientPhone)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to resolve client: %v", err)
		return nil, err
	}

	// 3. Запись с повторной проверкой слота внутри хранилища
	appt, err := uc.appointments.Create(ctx, &appointmentModels.CreateInput{
		ClientID:   resolved.ClientID,
		MasterID:   req.MasterID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Notes:      strings.TrimSpace(req.Notes),
		CreatedBy:  req.Actor.UserID,
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: store rejected booking for client=%s: %v", resolved.ClientID, err)
		return nil, err
	}

	// 4. Любимые услуги клиента; ошибка не отменяет запись
	uc.refreshFavorites(ctx, resolved.ClientID)

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s for client=%s", appt.ID, resolved.ClientID)
	return &Response{
		Appointment:   appt,
		ClientCreated: resolved.Created,
	}, nil
}

func (uc *UseCase) refreshFavorites(ctx context.Context, clientID string) {
	ids, err := uc.favorites.FavoriteIDs(ctx, clientID)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to compute favorites for client=%s: %v", clientID, err)
		return
	}
	if err := uc.clients.SetFavorites(ctx, clientID, ids); err != nil {
		uc.logger.Warn("CreateAppointment: failed to store favorites for client=%s: %v", clientID, err)
	}
}
