package gateway

import (
	"errors"
	"net/http"
	"strings"
)

// Category clasificación de una falla remota.
type Category string

const (
	CategoryTransport    Category = "transport"    // timeout, red caída
	CategoryUnauthorized Category = "unauthorized" // 401
	CategoryForbidden    Category = "forbidden"    // 403
	CategoryBusiness     Category = "business"     // regla de negocio (400-family)
	CategoryBackend      Category = "backend"      // error interno no reconocido
	CategoryUnknown      Category = "unknown"
)

// APIError error normalizado que reciben stores y componentes.
// Message es el texto traducido; Raw y Detail solo se registran en el log.
type APIError struct {
	Status   int
	Category Category
	Message  string
	Raw      string
	Detail   string
}

func (e *APIError) Error() string { return e.Message }

// AsAPIError extrae el APIError de una cadena de errores.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized informa si la falla fue un 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// IsForbidden informa si la falla fue un 403.
func IsForbidden(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusForbidden
}

// Classify asigna la categoría a partir del status y el mensaje crudo.
func Classify(status int, raw string) Category {
	switch {
	case status == 0:
		return CategoryTransport
	case status == http.StatusUnauthorized:
		return CategoryUnauthorized
	case status == http.StatusForbidden:
		return CategoryForbidden
	case isActiveLoanCap(raw):
		return CategoryBusiness
	case strings.Contains(raw, oraPrefix), status >= http.StatusInternalServerError:
		return CategoryBackend
	case status >= http.StatusBadRequest:
		return CategoryBusiness
	default:
		return CategoryUnknown
	}
}
