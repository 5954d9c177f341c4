package entity

// Severity severidad de una notificación transitoria.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notification mensaje transitorio para el usuario.
type Notification struct {
	ID       int64
	Message  string
	Severity Severity
}
