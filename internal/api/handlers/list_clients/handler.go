package list_clients

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/clients"
)

const (
	msgForbidden      = "список клиентов доступен мастерам и администратору"
	msgClientNotFound = "клиент не найден"
)

type Handler struct {
	clients ClientDirectory
	policy  AccessPolicy
	logger  Logger
}

func NewHandler(clients ClientDirectory, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		clients: clients,
		policy:  policy,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients
// Query params: q (optional) подстрока имени или телефона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := handlers.ActorFrom(r.Context())
	if err := h.policy.Check(actor, access.ActionViewClients); err != nil {
		h.logger.Warn("GET /clients - Access denied: role=%s", actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	query := r.URL.Query().Get("q")
	found := h.clients.Search(r.Context(), query)

	result := make([]handlers.ClientResponse, 0, len(found))
	for _, c := range found {
		result = append(result, handlers.NewClientResponse(c))
	}

	h.logger.Info("GET /clients - Clients retrieved successfully: query=%q, count=%d", query, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/clients/{clientId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	actor := handlers.ActorFrom(r.Context())
	if err := h.policy.Check(actor, access.ActionViewClients); err != nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	client, err := h.clients.Get(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /clients/{id} - Failed to get client: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewClientResponse(client))
}
