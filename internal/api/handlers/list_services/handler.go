package list_services

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: category (optional), all=true включает деактивированные услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	activeOnly := query.Get("all") != "true"
	category := strings.TrimSpace(query.Get("category"))

	services := h.catalog.ListServices(r.Context(), activeOnly)
	if category != "" {
		filtered := make([]domain.Service, 0, len(services))
		for _, svc := range services {
			if strings.EqualFold(svc.Category, category) {
				filtered = append(filtered, svc)
			}
		}
		services = filtered
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d, category=%q", len(services), category)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewServiceList(services))
}
