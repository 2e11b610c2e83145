package manage_catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

var admin = domain.Actor{UserID: "u-1", Role: domain.RoleAdmin}

func newRouter() (*mux.Router, *catalog.Service) {
	cat := catalog.NewService(memory.Discard{}, logger.NewNop())
	h := NewHandler(cat, access.Policy{}, logger.NewNop())

	router := mux.NewRouter()
	router.HandleFunc("/masters", h.CreateMaster).Methods(http.MethodPost)
	router.HandleFunc("/masters/{masterId}", h.UpdateMaster).Methods(http.MethodPut)
	router.HandleFunc("/masters/{masterId}", h.DeactivateMaster).Methods(http.MethodDelete)
	router.HandleFunc("/services", h.CreateService).Methods(http.MethodPost)
	router.HandleFunc("/services/{serviceId}", h.UpdateService).Methods(http.MethodPut)
	router.HandleFunc("/services/{serviceId}", h.DeactivateService).Methods(http.MethodDelete)
	return router, cat
}

func send(router *mux.Router, method, target, body string, actor domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(handlers.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestServiceLifecycle(t *testing.T) {
	router, cat := newRouter()

	rec := send(router, http.MethodPost, "/services", `{"name":"Педикюр","price":500,"duration":90,"category":"Педикюр"}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created handlers.ServiceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.True(t, created.IsActive)

	rec = send(router, http.MethodPut, "/services/"+created.ID, `{"price":550}`, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	svc, ok := cat.Service(created.ID)
	require.True(t, ok)
	assert.Equal(t, int64(550), svc.Price)
	assert.Equal(t, 90, svc.DurationMinutes)

	rec = send(router, http.MethodDelete, "/services/"+created.ID, "", admin)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, cat.ListServices(context.Background(), true))

	assert.Equal(t, http.StatusBadRequest,
		send(router, http.MethodPost, "/services", `{"name":"Без тривалості","price":100}`, admin).Code)
	assert.Equal(t, http.StatusNotFound,
		send(router, http.MethodPut, "/services/ghost", `{"price":1}`, admin).Code)
}

func TestMasterLifecycle(t *testing.T) {
	router, cat := newRouter()

	rec := send(router, http.MethodPost, "/masters", `{"name":"Олена","specialization":"Брови"}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created handlers.MasterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, domain.DefaultWorkSchedule(), created.Schedule)

	broken := `{"schedule":{"monday":{"start":"18:00","end":"10:00","isWorking":true}}}`
	assert.Equal(t, http.StatusBadRequest, send(router, http.MethodPut, "/masters/"+created.ID, broken, admin).Code)

	rec = send(router, http.MethodDelete, "/masters/"+created.ID, "", admin)
	require.Equal(t, http.StatusNoContent, rec.Code)
	master, ok := cat.Master(created.ID)
	require.True(t, ok)
	assert.False(t, master.IsActive)

	assert.Equal(t, http.StatusNotFound, send(router, http.MethodDelete, "/masters/ghost", "", admin).Code)
}

func TestForbiddenForNonAdmins(t *testing.T) {
	router, _ := newRouter()
	master := domain.Actor{UserID: "u-2", Role: domain.RoleMaster, MasterID: "anna"}

	assert.Equal(t, http.StatusForbidden, send(router, http.MethodPost, "/masters", `{"name":"X"}`, master).Code)
	assert.Equal(t, http.StatusForbidden, send(router, http.MethodPost, "/services", `{"name":"X"}`, domain.Guest()).Code)
}
