package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// AuditHandler /api/auditoria.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar evento de auditoría
// @Description  Abre un registro con la hora actual. Si no se indica IP se toma la de la petición.
// @Tags         auditoria
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterAuditRequest  true  "usuario obligatorio"
// @Success      201   {object}  dto.OKEnvelope{result=dto.AuditRef}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/auditoria/registrar [post]
func (h *AuditHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterAuditRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if in.IP == "" {
		in.IP = c.IP()
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// Logs godoc
// @Summary      Listar registros de auditoría
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Param        usuario    query     string  false  "usuario exacto"
// @Param        operacion  query     string  false  "operación (LOGIN, UPDATE, ...)"
// @Param        tabla      query     string  false  "tabla afectada"
// @Param        limit      query     int     false  "tamaño de página (default 100)"
// @Param        offset     query     int     false  "desplazamiento"
// @Success      200        {object}  dto.OKEnvelope{result=[]dto.AuditResponse}
// @Router       /api/auditoria/logs [get]
func (h *AuditHandler) Logs(c *fiber.Ctx) error {
	out, err := h.uc.Logs(repository.AuditFilter{
		User:      c.Query("usuario"),
		Operation: c.Query("operacion"),
		Table:     c.Query("tabla"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Finish godoc
// @Summary      Finalizar sesión auditada
// @Tags         auditoria
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AuditRef  true  "id_audit"
// @Success      200   {object}  dto.OKEnvelope{result=dto.AuditResponse}
// @Failure      400   {object}  dto.OKEnvelope
// @Failure      404   {object}  dto.OKEnvelope
// @Router       /api/auditoria/finalizar [post]
func (h *AuditHandler) Finish(c *fiber.Ctx) error {
	var in dto.AuditRef
	if err := c.BodyParser(&in); err != nil || in.ID <= 0 {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Finish(in.ID)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
