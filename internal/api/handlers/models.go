package handlers

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// AppointmentResponse запись в ответах API
type AppointmentResponse struct {
	ID              string   `json:"id"`
	ClientID        string   `json:"clientId"`
	ClientName      string   `json:"clientName"`
	ClientPhone     string   `json:"clientPhone"`
	MasterID        string   `json:"masterId"`
	ServiceIDs      []string `json:"serviceIds"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	CreatedBy       string   `json:"createdBy,omitempty"`
}

// NewAppointmentResponse конвертирует запись в модель ответа
func NewAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		ClientPhone:     a.ClientPhone,
		MasterID:        a.MasterID,
		ServiceIDs:      append([]string{}, a.ServiceIDs...),
		Date:            a.StartTime.Format(domain.DateFormat),
		StartTime:       a.StartTime.Format(domain.TimeFormat),
		EndTime:         a.EndTime.Format(domain.TimeFormat),
		Start:           FormatTime(a.StartTime),
		End:             FormatTime(a.EndTime),
		DurationMinutes: a.DurationMinutes(),
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       FormatTime(a.CreatedAt),
		CreatedBy:       a.CreatedBy,
	}
}

// NewAppointmentList конвертирует список записей
func NewAppointmentList(list []*domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, NewAppointmentResponse(a))
	}
	return result
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"duration"`
	Category        string `json:"category"`
	Color           string `json:"color,omitempty"`
	IsActive        bool   `json:"isActive"`
}

// NewServiceResponse конвертирует услугу
func NewServiceResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Color:           s.Color,
		IsActive:        s.IsActive,
	}
}

// NewServiceList конвертирует список услуг
func NewServiceList(list []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		result = append(result, NewServiceResponse(s))
	}
	return result
}

// MasterResponse мастер с недельным расписанием
type MasterResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Phone          string              `json:"phone,omitempty"`
	Color          string              `json:"color,omitempty"`
	Schedule       domain.WorkSchedule `json:"schedule"`
	IsActive       bool                `json:"isActive"`
}

// NewMasterResponse конвертирует мастера
func NewMasterResponse(m domain.Master) MasterResponse {
	return MasterResponse{
		ID:             m.ID,
		Name:           m.Name,
		Specialization: m.Specialization,
		Phone:          m.Phone,
		Color:          m.Color,
		Schedule:       m.Schedule,
		IsActive:       m.IsActive,
	}
}

// ClientResponse карточка клиента
type ClientResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	TotalVisits      int      `json:"totalVisits"`
	FavoriteServices []string `json:"favoriteServices"`
	CreatedAt        string   `json:"createdAt"`
	LastVisit        *string  `json:"lastVisit,omitempty"`
}

// NewClientResponse конвертирует клиента
func NewClientResponse(c *domain.Client) ClientResponse {
	resp := ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Email:            c.Email,
		Notes:            c.Notes,
		TotalVisits:      c.TotalVisits,
		FavoriteServices: append([]string{}, c.FavoriteServices...),
		CreatedAt:        FormatTime(c.CreatedAt),
	}
	if c.LastVisit != nil {
		lv := FormatTime(*c.LastVisit)
		resp.LastVisit = &lv
	}
	return resp
}
