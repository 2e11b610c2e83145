package get_daily_revenue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/ledger"
	"github.com/m04kA/SMC-StudioBooking/internal/service/ledger/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestHandle(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

	cash := ledger.NewService(memory.Discard{}, nil, time.UTC, logger.NewNop())
	records := []models.RecordInput{
		{Type: domain.TransactionIncome, Amount: 350, At: ptr.Ptr(monday)},
		{Type: domain.TransactionIncome, Amount: 450, At: ptr.Ptr(monday.Add(time.Hour))},
		{Type: domain.TransactionExpense, Amount: 200, Category: "Оренда", At: ptr.Ptr(monday.Add(2 * time.Hour))},
		{Type: domain.TransactionIncome, Amount: 1000, At: ptr.Ptr(monday.AddDate(0, 0, 1))},
	}
	for i := range records {
		_, err := cash.Record(ctx, &records[i])
		require.NoError(t, err)
	}

	h := NewHandler(cash, access.Policy{}, time.UTC, logger.NewNop())
	h.timeProvider = fixedTime{monday}
	admin := domain.Actor{UserID: "u-1", Role: domain.RoleAdmin}

	get := func(target string, actor domain.Actor) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req = req.WithContext(handlers.WithActor(req.Context(), actor))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		return rec
	}

	for _, target := range []string{"/cash/revenue?date=2025-03-03", "/cash/revenue"} {
		rec := get(target, admin)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DailyRevenueResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "2025-03-03", resp.Date)
		assert.Equal(t, int64(800), resp.Revenue)
		assert.Equal(t, int64(200), resp.Expenses)
		assert.Equal(t, int64(1600), resp.Balance)
		assert.Len(t, resp.Transactions, 3)
	}

	assert.Equal(t, http.StatusBadRequest, get("/cash/revenue?date=03/03", admin).Code)
	assert.Equal(t, http.StatusForbidden, get("/cash/revenue", domain.Guest()).Code)
}
