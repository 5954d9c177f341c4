package dto

import "time"

// RegisterRequest alta de un usuario del servicio (password en texto, se hashea en el caso de uso).
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"` // EMPLEADO | PRESTATARIO | ADMIN
	BorrowerID *int64 `json:"id_prestatario,omitempty"`
	EmployeeID *int64 `json:"id_empleado,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	BorrowerID *int64    `json:"id_prestatario,omitempty"`
	EmployeeID *int64    `json:"id_empleado,omitempty"`
	Active     bool      `json:"activo"`
	CreatedAt  time.Time `json:"created_at"`
}
