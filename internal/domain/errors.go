package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrActiveLoanLimit   = errors.New("tope de préstamos activos alcanzado")
	ErrNotPayable        = errors.New("la cuota no admite pago")
	ErrNoAuthenticator   = errors.New("sesión sin autenticador configurado")
)

// RuleError regla de negocio violada. Code es el código del motor (p. ej. ORA-20001), puede ir vacío;
// Kind es el error de dominio que clasifica la falla.
type RuleError struct {
	Kind    error
	Code    string
	Message string
}

// NewRuleError construye la regla violada.
func NewRuleError(kind error, code, message string) *RuleError {
	return &RuleError{Kind: kind, Code: code, Message: message}
}

func (e *RuleError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

func (e *RuleError) Unwrap() error { return e.Kind }
