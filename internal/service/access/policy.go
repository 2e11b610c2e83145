package access

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// Action операция, требующая проверки прав
type Action string

const (
	ActionView              Action = "view"
	ActionBook              Action = "book"
	ActionViewClients       Action = "view_clients"
	ActionEditAppointment   Action = "edit_appointment"
	ActionDeleteAppointment Action = "delete_appointment"
	ActionManageCatalog     Action = "manage_catalog"
	ActionManageCash        Action = "manage_cash"
	ActionNotifications     Action = "notifications"
)

var permissions = map[domain.Role]map[Action]bool{
	domain.RoleGuest: {
		ActionView: true,
		ActionBook: true,
	},
	domain.RoleMaster: {
		ActionView:            true,
		ActionBook:            true,
		ActionViewClients:     true,
		ActionEditAppointment: true,
		ActionNotifications:   true,
	},
	domain.RoleAdmin: {
		ActionView:              true,
		ActionBook:              true,
		ActionViewClients:       true,
		ActionEditAppointment:   true,
		ActionDeleteAppointment: true,
		ActionManageCatalog:     true,
		ActionManageCash:        true,
		ActionNotifications:     true,
	},
}

// Policy права ролей студии
type Policy struct{}

// Can проверяет, разрешена ли операция роли
func (Policy) Can(actor domain.Actor, action Action) bool {
	return permissions[actor.Role][action]
}

// Check возвращает ErrForbidden, если операция не разрешена
func (p Policy) Check(actor domain.Actor, action Action) error {
	if !p.Can(actor, action) {
		return ErrForbidden
	}
	return nil
}

// CheckAppointment проверяет право менять запись: мастер только свои, админ любые
func (p Policy) CheckAppointment(actor domain.Actor, appointment *domain.Appointment) error {
	if err := p.Check(actor, ActionEditAppointment); err != nil {
		return err
	}
	if actor.Role == domain.RoleMaster && appointment.MasterID != actor.MasterID {
		return ErrNotOwner
	}
	return nil
}
