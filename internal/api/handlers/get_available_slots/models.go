package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	MasterID        string   `json:"masterId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		MasterID:        resp.MasterID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(masterID, dateStr, serviceIDs, duration string, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := handlers.ParseDate(dateStr, loc)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &getAvailableSlots.Request{
		MasterID: masterID,
		Date:     date,
	}

	for _, id := range strings.Split(serviceIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			req.ServiceIDs = append(req.ServiceIDs, id)
		}
	}

	if duration != "" {
		minutes, err := strconv.Atoi(duration)
		if err != nil {
			return nil, errInvalidDuration
		}
		req.DurationMinutes = minutes
	}

	return req, nil
}
