package list_masters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func TestHandle(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewService(memory.Discard{}, logger.NewNop())
	anna, err := cat.CreateMaster(ctx, &models.CreateMasterRequest{Name: "Анна", Specialization: "Манікюр"})
	require.NoError(t, err)
	bohdana, err := cat.CreateMaster(ctx, &models.CreateMasterRequest{Name: "Богдана"})
	require.NoError(t, err)
	require.NoError(t, cat.DeactivateMaster(ctx, bohdana.ID))

	h := NewHandler(cat, logger.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/masters", h.Handle)
	router.HandleFunc("/masters/{masterId}", h.HandleGet)

	list := func(target string) []handlers.MasterResponse {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp []handlers.MasterResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		return resp
	}

	active := list("/masters")
	require.Len(t, active, 1)
	assert.Equal(t, anna.ID, active[0].ID)
	assert.True(t, active[0].Schedule.Monday.IsWorking)

	assert.Len(t, list("/masters?all=true"), 2)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/masters/"+anna.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Анна")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/masters/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
