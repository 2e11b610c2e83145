package update_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/clients"
	"github.com/m04kA/SMC-StudioBooking/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "менять карточку клиента могут мастера и администратор"
	msgClientNotFound     = "клиент не найден"
	msgNameRequired       = "имя клиента не может быть пустым"
	msgInvalidInput       = "некорректные данные клиента"
)

// UpdateClientRequest HTTP request model
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type Handler struct {
	clients ClientUpdater
	policy  AccessPolicy
	logger  Logger
}

func NewHandler(clients ClientUpdater, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		clients: clients,
		policy:  policy,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	actor := handlers.ActorFrom(r.Context())

	if err := h.policy.Check(actor, access.ActionViewClients); err != nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.clients.Update(r.Context(), clientID, &models.UpdateClientRequest{
		Name:  req.Name,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)
		case errors.Is(err, clients.ErrNameRequired):
			handlers.RespondBadRequest(w, msgNameRequired)
		default:
			if handlers.StatusFor(err) == http.StatusInternalServerError {
				h.logger.Error("PATCH /clients/{id} - Failed to update client: client_id=%s, error=%v", clientID, err)
			}
			handlers.RespondDomainError(w, err, msgInvalidInput)
		}
		return
	}

	h.logger.Info("PATCH /clients/{id} - Client updated successfully: client_id=%s", clientID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewClientResponse(updated))
}
