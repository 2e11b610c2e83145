package domain

// Role роль пользователя
type Role string

const (
	RoleGuest  Role = "guest"
	RoleMaster Role = "master"
	RoleAdmin  Role = "admin"
)

// ParseRole возвращает роль, неизвестные значения считаются гостем
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleMaster, RoleAdmin:
		return Role(s)
	default:
		return RoleGuest
	}
}

// Actor пользователь, от имени которого выполняется операция
type Actor struct {
	UserID   string
	Role     Role
	MasterID string // только для роли master
}

// Guest анонимный пользователь
func Guest() Actor {
	return Actor{Role: RoleGuest}
}
