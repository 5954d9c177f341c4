package entity

// AuditLog registro de auditoría: una sesión o un evento puntual sobre una tabla.
// ExitedAt y SessionDuration quedan vacíos hasta que la sesión se finaliza.
type AuditLog struct {
	ID              int64
	User            string
	IP              string
	Domain          string
	EnteredAt       string
	ExitedAt        *string
	Table           string
	Operation       string
	SessionDuration *string
	Description     string
}

// IsOpen indica una sesión todavía sin finalizar.
func (a AuditLog) IsOpen() bool { return a.ExitedAt == nil }
