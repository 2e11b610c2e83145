package master_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/calendar"
)

const (
	msgInvalidRange   = "некорректный период, ожидаются даты from и to в формате YYYY-MM-DD"
	msgMasterNotFound = "мастер не найден"
)

type Handler struct {
	exporter     CalendarExporter
	location     *time.Location
	timeProvider func() time.Time
	logger       Logger
}

func NewHandler(exporter CalendarExporter, location *time.Location, logger Logger) *Handler {
	return &Handler{
		exporter:     exporter,
		location:     location,
		timeProvider: time.Now,
		logger:       logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/calendar.ics
// Query params: from, to (optional, YYYY-MM-DD, to включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID := mux.Vars(r)["masterId"]
	query := r.URL.Query()

	from, to, err := calendar.ParseRange(query.Get("from"), query.Get("to"), h.timeProvider(), h.location)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/calendar.ics - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	feed, err := h.exporter.Export(r.Context(), masterID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrMasterNotFound):
			handlers.RespondNotFound(w, msgMasterNotFound)
		case errors.Is(err, calendar.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /masters/{id}/calendar.ics - Failed to export: master_id=%s, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /masters/{id}/calendar.ics - Calendar exported: master_id=%s, from=%s, to=%s",
		masterID, handlers.FormatTime(from), handlers.FormatTime(to))
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="`+masterID+`.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}
