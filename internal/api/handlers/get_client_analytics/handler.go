package get_client_analytics

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics"
)

const (
	msgForbidden      = "аналитика клиентов доступна мастерам и администратору"
	msgClientNotFound = "клиент не найден"
)

type Handler struct {
	analytics ClientAnalytics
	policy    AccessPolicy
	logger    Logger
}

func NewHandler(analytics ClientAnalytics, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		analytics: analytics,
		policy:    policy,
		logger:    logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/analytics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	actor := handlers.ActorFrom(r.Context())

	if err := h.policy.Check(actor, access.ActionViewClients); err != nil {
		h.logger.Warn("GET /clients/{id}/analytics - Access denied: role=%s", actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.analytics.AnalyticsFor(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, analytics.ErrClientNotFound) {
			h.logger.Warn("GET /clients/{id}/analytics - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /clients/{id}/analytics - Failed to build analytics: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/analytics - Analytics built successfully: client_id=%s, visits=%d, spent=%d",
		clientID, result.TotalVisits, result.TotalSpent)
	handlers.RespondJSON(w, http.StatusOK, FromAnalytics(result))
}
