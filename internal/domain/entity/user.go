package entity

import "time"

// User credenciales de acceso del servicio sandbox. Un PRESTATARIO queda ligado a su prestatario y
// un EMPLEADO autorregistrado a su ficha de empleado.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca en claro
	Role         Role
	BorrowerID   *int64
	EmployeeID   *int64
	Active       bool
	CreatedAt    time.Time
}
