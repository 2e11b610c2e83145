package get_client_analytics

import (
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics/models"
)

// ClientAnalyticsResponse HTTP response model
type ClientAnalyticsResponse struct {
	ClientID            string                     `json:"clientId"`
	TotalVisits         int                        `json:"totalVisits"`
	TotalSpent          int64                      `json:"totalSpent"`
	AverageCheck        float64                    `json:"averageCheck"`
	LastVisit           *string                    `json:"lastVisit"`
	FavoriteServices    []FavoriteService          `json:"favoriteServices"`
	RecommendedServices []handlers.ServiceResponse `json:"recommendedServices"`
}

// FavoriteService любимая услуга и число заказов
type FavoriteService struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

// FromAnalytics конвертирует показатели клиента в HTTP response
func FromAnalytics(a *models.ClientAnalytics) *ClientAnalyticsResponse {
	resp := &ClientAnalyticsResponse{
		ClientID:            a.ClientID,
		TotalVisits:         a.TotalVisits,
		TotalSpent:          a.TotalSpent,
		AverageCheck:        a.AverageCheck,
		FavoriteServices:    make([]FavoriteService, 0, len(a.FavoriteServices)),
		RecommendedServices: handlers.NewServiceList(a.RecommendedServices),
	}
	if a.LastVisit != nil {
		lv := handlers.FormatTime(*a.LastVisit)
		resp.LastVisit = &lv
	}
	for _, f := range a.FavoriteServices {
		resp.FavoriteServices = append(resp.FavoriteServices, FavoriteService{
			ServiceID: f.ServiceID,
			Name:      f.Name,
			Count:     f.Count,
		})
	}
	return resp
}
