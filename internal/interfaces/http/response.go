package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
)

// Mensajes genéricos de error.
const (
	msgInvalidBody = "Cuerpo de la solicitud inválido."
	msgInvalidID   = "Identificador inválido."
	msgInternal    = "Error interno del servidor."
	msgForbidden   = "Acceso denegado."
)

// ok responde con la variante {ok, result}.
func ok(c *fiber.Ctx, status int, result any) error {
	return c.Status(status).JSON(dto.OKEnvelope{OK: true, Result: result})
}

// fail responde con la variante {ok:false, error}.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.OKEnvelope{OK: false, Error: message})
}

// authOK responde con la variante {success, data, message} de autenticación.
func authOK(c *fiber.Ctx, status int, data any, message string) error {
	env := dto.SuccessEnvelope{Success: true, Data: data}
	if message != "" {
		env.Message = &message
	}
	return c.Status(status).JSON(env)
}

func authFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.SuccessEnvelope{Success: false, Message: &message})
}

// statusFor clasifica un error de dominio en código HTTP y mensaje visible.
// Las reglas de negocio viajan con su código de motor (p. ej. "ORA-20001: ...").
func statusFor(err error) (int, string) {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrActiveLoanLimit),
		errors.Is(err, domain.ErrNotPayable):
		status = fiber.StatusBadRequest
	}

	var rule *domain.RuleError
	if errors.As(err, &rule) {
		return status, rule.Error()
	}
	switch status {
	case fiber.StatusInternalServerError:
		return status, msgInternal
	case fiber.StatusForbidden:
		return status, msgForbidden
	}
	return status, err.Error()
}

// writeError responde un error de caso de uso con la variante {ok:false, error}.
func writeError(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)
	if status == fiber.StatusInternalServerError {
		// el detalle queda en el log de la petición
		c.Locals(localErr, err)
	}
	return fail(c, status, msg)
}
