package get_recommended_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics"
)

const msgClientNotFound = "клиент не найден"

type Handler struct {
	recommender Recommender
	logger      Logger
}

func NewHandler(recommender Recommender, logger Logger) *Handler {
	return &Handler{
		recommender: recommender,
		logger:      logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/recommendations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	services, err := h.recommender.Recommended(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, analytics.ErrClientNotFound) {
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /clients/{id}/recommendations - Failed to recommend: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/recommendations - Recommendations built: client_id=%s, count=%d", clientID, len(services))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewServiceList(services))
}
