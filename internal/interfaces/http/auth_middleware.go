package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/jwt"
)

// Locals keys de la identidad autenticada.
const (
	LocalIdentity = "identity"
	localErr      = "error"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "Token de acceso requerido.")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "Formato esperado: Bearer <token>.")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "Token de acceso requerido.")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Token inválido o expirado.")
		}
		c.Locals(LocalIdentity, entity.Identity{
			ID:         claims.ID,
			Username:   claims.Username,
			Role:       entity.Role(claims.Role),
			BorrowerID: claims.IDPrestatario,
		})
		return c.Next()
	}
}

// RequireRole autoriza si el rol del token cumple alguno de los roles indicados.
// ADMIN cumple lo que exige EMPLEADO. Debe usarse después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetIdentity(c).Role
		if role == entity.RoleNone {
			return fail(c, fiber.StatusUnauthorized, "El token no contiene rol.")
		}
		for _, r := range roles {
			if role.Satisfies(r) {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, msgForbidden)
	}
}

// GetIdentity devuelve la identidad del contexto (vacía si no pasó por AuthMiddleware).
func GetIdentity(c *fiber.Ctx) entity.Identity {
	id, _ := c.Locals(LocalIdentity).(entity.Identity)
	return id
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	return string(GetIdentity(c).Role)
}
