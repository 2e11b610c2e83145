package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ClientAnalytics показатели клиента по неотменённым записям
type ClientAnalytics struct {
	ClientID            string
	TotalVisits         int
	TotalSpent          int64
	AverageCheck        float64
	FavoriteServices    []FavoriteService
	RecommendedServices []domain.Service
	LastVisit           *time.Time
}

// FavoriteService услуга и сколько раз клиент её заказывал
type FavoriteService struct {
	ServiceID string
	Name      string
	Count     int
}

// VisitService услуга визита по текущему прайсу
type VisitService struct {
	ServiceID string
	Name      string
	Price     int64
}

// Visit визит клиента
type Visit struct {
	AppointmentID string
	MasterID      string
	StartTime     time.Time
	EndTime       time.Time
	Status        domain.AppointmentStatus
	Services      []VisitService
	Total         int64
}
