package list_masters

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

const msgMasterNotFound = "мастер не найден"

type Handler struct {
	catalog MasterCatalog
	logger  Logger
}

func NewHandler(catalog MasterCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters
// Query params: all=true включает деактивированных мастеров
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"
	masters := h.catalog.ListMasters(r.Context(), activeOnly)

	result := make([]handlers.MasterResponse, 0, len(masters))
	for _, m := range masters {
		result = append(result, handlers.NewMasterResponse(m))
	}

	h.logger.Info("GET /masters - Masters retrieved successfully: count=%d, active_only=%t", len(result), activeOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/masters/{masterId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	masterID := mux.Vars(r)["masterId"]

	master, err := h.catalog.GetMaster(r.Context(), masterID)
	if err != nil {
		if errors.Is(err, catalog.ErrMasterNotFound) {
			h.logger.Warn("GET /masters/{id} - Master not found: master_id=%s", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)
			return
		}
		h.logger.Error("GET /masters/{id} - Failed to get master: master_id=%s, error=%v", masterID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewMasterResponse(*master))
}
