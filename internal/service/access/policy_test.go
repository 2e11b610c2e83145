package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

func TestPolicy_Roles(t *testing.T) {
	p := Policy{}
	guest := domain.Guest()
	master := domain.Actor{UserID: "u-1", Role: domain.RoleMaster, MasterID: "anna"}
	admin := domain.Actor{UserID: "u-2", Role: domain.RoleAdmin}

	tests := []struct {
		action Action
		guest  bool
		master bool
		admin  bool
	}{
		{ActionView, true, true, true},
		{ActionBook, true, true, true},
		{ActionViewClients, false, true, true},
		{ActionEditAppointment, false, true, true},
		{ActionDeleteAppointment, false, false, true},
		{ActionManageCatalog, false, false, true},
		{ActionManageCash, false, false, true},
		{ActionNotifications, false, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.guest, p.Can(guest, tt.action))
			assert.Equal(t, tt.master, p.Can(master, tt.action))
			assert.Equal(t, tt.admin, p.Can(admin, tt.action))
		})
	}

	assert.ErrorIs(t, p.Check(guest, ActionManageCash), domain.ErrForbidden)
}

func TestPolicy_CheckAppointment(t *testing.T) {
	p := Policy{}
	own := &domain.Appointment{ID: "a-1", MasterID: "anna"}
	foreign := &domain.Appointment{ID: "a-2", MasterID: "bohdana"}
	master := domain.Actor{Role: domain.RoleMaster, MasterID: "anna"}

	assert.NoError(t, p.CheckAppointment(master, own))
	assert.ErrorIs(t, p.CheckAppointment(master, foreign), ErrNotOwner)
	assert.NoError(t, p.CheckAppointment(domain.Actor{Role: domain.RoleAdmin}, foreign))
	assert.ErrorIs(t, p.CheckAppointment(domain.Guest(), own), ErrForbidden)
}
