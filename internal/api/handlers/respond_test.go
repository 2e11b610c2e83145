package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(fmt.Errorf("%w: bad", domain.ErrValidation)))
	assert.Equal(t, http.StatusNotFound, StatusFor(domain.ErrNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(fmt.Errorf("x: %w", domain.ErrConflict)))
	assert.Equal(t, http.StatusForbidden, StatusFor(domain.ErrForbidden))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("db down")))
}

func TestRespondDomainError_HidesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondDomainError(rec, errors.New("pq: password authentication failed"), "не важно")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, msgInternalError, body.Error)
	assert.Equal(t, "internal", body.Kind)
}

func TestRespondDomainError_Conflict(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondDomainError(rec, fmt.Errorf("%w: slot", domain.ErrConflict), "слот зайнятий")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "conflict", body.Kind)
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("studio", 2*60*60)
	d, err := ParseDate(" 2025-03-03 ", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, loc), d)

	_, err = ParseDate("03.03.2025", loc)
	assert.Error(t, err)
}

func TestActorFrom(t *testing.T) {
	assert.Equal(t, domain.RoleGuest, ActorFrom(context.Background()).Role)

	ctx := WithActor(context.Background(), domain.Actor{UserID: "u-1", Role: domain.RoleAdmin})
	assert.Equal(t, domain.RoleAdmin, ActorFrom(ctx).Role)
}
