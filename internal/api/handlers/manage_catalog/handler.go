package manage_catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "каталог может менять только администратор"
	msgMasterNotFound     = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidSchedule    = "некорректное расписание: начало рабочего дня позже конца"
	msgInvalidMaster      = "некорректные данные мастера"
	msgInvalidService     = "некорректные данные услуги: нужны название, цена не меньше 0 и длительность больше 0"
)

// Handler администрирование мастеров и услуг
type Handler struct {
	catalog CatalogEditor
	policy  AccessPolicy
	logger  Logger
}

func NewHandler(catalog CatalogEditor, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		policy:  policy,
		logger:  logger,
	}
}

// CreateMaster POST /api/v1/masters
func (h *Handler) CreateMaster(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w, r, "POST /masters") {
		return
	}

	var req MasterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	master, err := h.catalog.CreateMaster(r.Context(), req.toCreate())
	if err != nil {
		h.respondMasterError(w, "POST /masters", err)
		return
	}

	h.logger.Info("POST /masters - Master created successfully: master_id=%s", master.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewMasterResponse(*master))
}

// UpdateMaster PUT /api/v1/masters/{masterId}
func (h *Handler) UpdateMaster(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w, r, "PUT /masters/{id}") {
		return
	}
	masterID := mux.Vars(r)["masterId"]

	var req MasterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	master, err := h.catalog.UpdateMaster(r.Context(), masterID, req.toUpdate())
	if err != nil {
		h.respondMasterError(w, "PUT /masters/{id}", err)
		return
	}

	h.logger.Info("PUT /masters/{id} - Master updated successfully: master_id=%s", masterID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewMasterResponse(*master))
}

// DeactivateMaster DELETE /api/v1/masters/{masterId}
func (h *Handler) DeactivateMaster(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w, r, "DELETE /masters/{id}") {
		return
	}
	masterID := mux.Vars(r)["masterId"]

	if err := h.catalog.DeactivateMaster(r.Context(), masterID); err != nil {
		h.respondMasterError(w, "DELETE /masters/{id}", err)
		return
	}

	h.logger.Info("DELETE /masters/{id} - Master deactivated: master_id=%s", masterID)
	w.WriteHeader(http.StatusNoContent)
}

// CreateService POST /api/v1/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w, r, "POST /services") {
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalog.CreateService(r.Context(), req.toCreate())
	if err != nil {
		h.respondServiceError(w, "POST /services", err)
		return
	}

	h.logger.Info("POST /services - Service created successfully: service_id=%s", service.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewServiceResponse(*service))
}

// UpdateService PUT /api/v1/services/{serviceId}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w, r, "PUT /services/{id}") {
		return
	}
	serviceID := mux.Vars(r)["serviceId"]

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalog.UpdateService(r.Context(), serviceID, req.toUpdate())
	if err != nil {
		h.respondServiceError(w, "PUT /services/{id}", err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated successfully: service_id=%s, price=%d", serviceID, service.Price)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewServiceResponse(*service))
}

// DeactivateService DELETE /api/v1/services/{serviceId}
func (h *Handler) DeactivateService(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w, r, "DELETE /services/{id}") {
		return
	}
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.catalog.DeactivateService(r.Context(), serviceID); err != nil {
		h.respondServiceError(w, "DELETE /services/{id}", err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deactivated: service_id=%s", serviceID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) allowed(w http.ResponseWriter, r *http.Request, route string) bool {
	actor := handlers.ActorFrom(r.Context())
	if err := h.policy.Check(actor, access.ActionManageCatalog); err != nil {
		h.logger.Warn("%s - Access denied: role=%s", route, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return false
	}
	return true
}

func (h *Handler) respondMasterError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalog.ErrMasterNotFound):
		handlers.RespondNotFound(w, msgMasterNotFound)
	case errors.Is(err, catalog.ErrInvalidSchedule):
		handlers.RespondBadRequest(w, msgInvalidSchedule)
	default:
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("%s - Failed to save master: error=%v", route, err)
		}
		handlers.RespondDomainError(w, err, msgInvalidMaster)
	}
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	default:
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("%s - Failed to save service: error=%v", route, err)
		}
		handlers.RespondDomainError(w, err, msgInvalidService)
	}
}
