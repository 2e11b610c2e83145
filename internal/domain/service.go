package domain

import "time"

// Service услуга каталога.
// Цена и длительность не копируются в запись: правка каталога меняет и прошлые суммы.
type Service struct {
	ID              string
	Name            string
	Price           int64 // в минимальных единицах валюты
	DurationMinutes int
	Category        string
	Color           string
	IsActive        bool
	CreatedAt       time.Time
}
