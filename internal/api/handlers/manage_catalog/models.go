package manage_catalog

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

// MasterRequest HTTP request model для создания и изменения мастера
type MasterRequest struct {
	Name           *string              `json:"name,omitempty"`
	Specialization *string              `json:"specialization,omitempty"`
	Phone          *string              `json:"phone,omitempty"`
	Color          *string              `json:"color,omitempty"`
	Schedule       *domain.WorkSchedule `json:"schedule,omitempty"`
	IsActive       *bool                `json:"isActive,omitempty"`
}

// ServiceRequest HTTP request model для создания и изменения услуги
type ServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Price           *int64  `json:"price,omitempty"`
	DurationMinutes *int    `json:"duration,omitempty"`
	Category        *string `json:"category,omitempty"`
	Color           *string `json:"color,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

func (r *MasterRequest) toCreate() *models.CreateMasterRequest {
	return &models.CreateMasterRequest{
		Name:           value(r.Name),
		Specialization: value(r.Specialization),
		Phone:          value(r.Phone),
		Color:          value(r.Color),
		Schedule:       r.Schedule,
	}
}

func (r *MasterRequest) toUpdate() *models.UpdateMasterRequest {
	return &models.UpdateMasterRequest{
		Name:           r.Name,
		Specialization: r.Specialization,
		Phone:          r.Phone,
		Color:          r.Color,
		Schedule:       r.Schedule,
		IsActive:       r.IsActive,
	}
}

func (r *ServiceRequest) toCreate() *models.CreateServiceRequest {
	req := &models.CreateServiceRequest{
		Name:     value(r.Name),
		Category: value(r.Category),
		Color:    value(r.Color),
	}
	if r.Price != nil {
		req.Price = *r.Price
	}
	if r.DurationMinutes != nil {
		req.DurationMinutes = *r.DurationMinutes
	}
	return req
}

func (r *ServiceRequest) toUpdate() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		Color:           r.Color,
		IsActive:        r.IsActive,
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
