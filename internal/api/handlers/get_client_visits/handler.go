package get_client_visits

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics"
)

const (
	msgForbidden      = "история визитов доступна мастерам и администратору"
	msgClientNotFound = "клиент не найден"
)

type Handler struct {
	history VisitHistory
	policy  AccessPolicy
	logger  Logger
}

func NewHandler(history VisitHistory, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		history: history,
		policy:  policy,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	actor := handlers.ActorFrom(r.Context())

	if err := h.policy.Check(actor, access.ActionViewClients); err != nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	visits, err := h.history.Visits(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, analytics.ErrClientNotFound) {
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /clients/{id}/visits - Failed to get visits: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/visits - Visits retrieved successfully: client_id=%s, count=%d", clientID, len(visits))
	handlers.RespondJSON(w, http.StatusOK, FromVisits(visits))
}
