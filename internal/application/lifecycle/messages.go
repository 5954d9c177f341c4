package lifecycle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/domain"
)

// Mensajes de éxito y validación mostrados al usuario.
const (
	MsgLoanRequestApproved  = "Solicitud de préstamo aprobada. Se generó el préstamo #%d y sus cuotas asociadas."
	MsgLoanRequestRejected  = "Solicitud de préstamo rechazada."
	MsgRefinancingApproved  = "Solicitud de refinanciación aprobada. El préstamo #%d ha sido refinanciado."
	MsgRefinancingRejected  = "Solicitud de refinanciación rechazada."
	MsgRefinancingRequested = "Solicitud de refinanciación enviada correctamente. Un empleado la revisará."
	MsgLoanRequestCreated   = "Solicitud creada y enviada para aprobación."
	MsgPaymentRegistered    = "Pago de la cuota registrado correctamente."
	MsgBorrowerRegistered   = "Prestatario y usuario registrados correctamente."
	MsgEmployeeRegistered   = "Empleado y usuario registrados correctamente."

	MsgInvalidNewInstallments = "El nuevo número de cuotas debe ser un entero positivo."
	MsgInvalidAmount          = "El monto debe ser un número positivo."
	MsgInvalidInstallments    = "El número de cuotas debe ser un entero positivo."
	MsgWrongSecret            = "Palabra secreta incorrecta"
	MsgMissingCredentials     = "Debes completar usuario y contraseña."
	MsgPasswordMismatch       = "Las contraseñas no coinciden."
)

// parsePositiveInt acepta solo enteros estrictamente positivos ("3.5", "0", "-2" y "" fallan).
func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("lifecycle: %q: %w", raw, domain.ErrInvalidInput)
	}
	return n, nil
}

// parsePositiveAmount monto decimal estrictamente positivo.
func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("lifecycle: monto %q: %w", raw, domain.ErrInvalidInput)
	}
	return d, nil
}
