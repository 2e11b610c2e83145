package get_client_analytics

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
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeAnalytics struct{}

func (fakeAnalytics) AnalyticsFor(ctx context.Context, clientID string) (*models.ClientAnalytics, error) {
	if clientID != "olha" {
		return nil, analytics.ErrClientNotFound
	}
	last := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	return &models.ClientAnalytics{
		ClientID:         "olha",
		TotalVisits:      2,
		TotalSpent:       800,
		AverageCheck:     400,
		LastVisit:        &last,
		FavoriteServices: []models.FavoriteService{{ServiceID: "manicure", Name: "Манікюр класичний", Count: 1}},
		RecommendedServices: []domain.Service{
			{ID: "design", Name: "Дизайн нігтів", Price: 100, DurationMinutes: 15, Category: "Манікюр", IsActive: true},
		},
	}, nil
}

func serve(clientID string, actor domain.Actor) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/clients/{clientId}/analytics", NewHandler(fakeAnalytics{}, access.Policy{}, logger.NewNop()).Handle)
	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID+"/analytics", nil)
	req = req.WithContext(handlers.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	admin := domain.Actor{UserID: "u-1", Role: domain.RoleAdmin}

	rec := serve("olha", admin)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClientAnalyticsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.TotalVisits)
	assert.Equal(t, int64(800), resp.TotalSpent)
	assert.Equal(t, 400.0, resp.AverageCheck)
	require.NotNil(t, resp.LastVisit)
	assert.Equal(t, "2025-03-10T10:00:00Z", *resp.LastVisit)
	require.Len(t, resp.FavoriteServices, 1)
	assert.Equal(t, "manicure", resp.FavoriteServices[0].ServiceID)
	require.Len(t, resp.RecommendedServices, 1)
	assert.Equal(t, "design", resp.RecommendedServices[0].ID)

	assert.Equal(t, http.StatusNotFound, serve("ghost", admin).Code)
	assert.Equal(t, http.StatusForbidden, serve("olha", domain.Guest()).Code)
}
