package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// idParam lee un parámetro de ruta numérico positivo.
func idParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
