package models

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// CreateMasterRequest данные нового мастера
type CreateMasterRequest struct {
	Name           string
	Specialization string
	Phone          string
	Color          string
	Schedule       *domain.WorkSchedule // nil - расписание по умолчанию
}

// UpdateMasterRequest частичное обновление мастера
type UpdateMasterRequest struct {
	Name           *string
	Specialization *string
	Phone          *string
	Color          *string
	Schedule       *domain.WorkSchedule
	IsActive       *bool
}

// CreateServiceRequest данные новой услуги
type CreateServiceRequest struct {
	Name            string
	Price           int64
	DurationMinutes int
	Category        string
	Color           string
}

// UpdateServiceRequest частичное обновление услуги
type UpdateServiceRequest struct {
	Name            *string
	Price           *int64
	DurationMinutes *int
	Category        *string
	Color           *string
	IsActive        *bool
}
