package gateway

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Mensajes visibles para el usuario.
const (
	MsgActiveLoanCap = "No puedes crear este préstamo porque ya tienes 2 préstamos activos registrados."
	MsgSystemError   = "Ocurrió un error en el sistema al procesar tu solicitud. Intenta nuevamente o comunícate con soporte."
	MsgEmpty         = "Ocurrió un error al procesar tu solicitud. Intenta nuevamente."
	MsgDefaultRaw    = "Error inesperado en la solicitud"
)

const (
	oraPrefix       = "ORA-"
	oraBusinessRule = "ORA-20001"
	capPhrase       = "2 prestamos activos"
)

// Translate convierte el mensaje crudo del backend en el texto que ve el usuario.
// Los códigos ORA nunca llegan a la UI.
func Translate(raw string) string {
	if raw == "" {
		return MsgEmpty
	}
	if isActiveLoanCap(raw) {
		return MsgActiveLoanCap
	}
	if strings.Contains(raw, oraPrefix) {
		return MsgSystemError
	}
	return raw
}

func isActiveLoanCap(raw string) bool {
	return strings.Contains(raw, oraBusinessRule) && strings.Contains(Normalize(raw), capPhrase)
}

// Normalize quita acentos y pasa a minúsculas para comparar sin importar la tilde.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
