package entity

// Role rol emitido en el token de sesión.
type Role string

// Roles válidos. RoleNone representa un token sin claim de rol.
const (
	RoleEmployee Role = "EMPLEADO"
	RoleBorrower Role = "PRESTATARIO"
	RoleAdmin    Role = "ADMIN"
	RoleNone     Role = ""
)

// Satisfies informa si el rol cumple el rol requerido. ADMIN cumple todo lo que exige EMPLEADO.
func (r Role) Satisfies(required Role) bool {
	if r == RoleNone {
		return false
	}
	if r == required {
		return true
	}
	return r == RoleAdmin && required == RoleEmployee
}

// Identity identidad decodificada del token. Siempre es función pura del token.
type Identity struct {
	ID         int64
	Username   string
	Role       Role
	BorrowerID *int64 // solo para PRESTATARIO
}
