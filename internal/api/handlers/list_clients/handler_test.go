package list_clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/clients"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func newRouter(t *testing.T) (*mux.Router, string) {
	t.Helper()
	ctx := context.Background()
	registry := clients.NewService(memory.Discard{}, nil, time.UTC, logger.NewNop())
	olha, err := registry.Resolve(ctx, "Olha", "0501112233")
	require.NoError(t, err)
	_, err = registry.Resolve(ctx, "Iryna", "0679998877")
	require.NoError(t, err)

	h := NewHandler(registry, access.Policy{}, logger.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/clients", h.Handle)
	router.HandleFunc("/clients/{clientId}", h.HandleGet)
	return router, olha.ClientID
}

func request(router *mux.Router, target string, actor domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(handlers.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Search(t *testing.T) {
	router, _ := newRouter(t)
	master := domain.Actor{UserID: "u-2", Role: domain.RoleMaster, MasterID: "anna"}

	rec := request(router, "/clients", master)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []handlers.ClientResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, 2)

	rec = request(router, "/clients?q=067", master)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []handlers.ClientResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&found))
	require.Len(t, found, 1)
	assert.Equal(t, "Iryna", found[0].Name)
}

func TestHandle_GuestForbidden(t *testing.T) {
	router, id := newRouter(t)

	assert.Equal(t, http.StatusForbidden, request(router, "/clients", domain.Guest()).Code)
	assert.Equal(t, http.StatusForbidden, request(router, "/clients/"+id, domain.Guest()).Code)
}

func TestHandleGet(t *testing.T) {
	router, id := newRouter(t)
	admin := domain.Actor{UserID: "u-1", Role: domain.RoleAdmin}

	rec := request(router, "/clients/"+id, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Olha")

	assert.Equal(t, http.StatusNotFound, request(router, "/clients/ghost", admin).Code)
}
