package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// RefinancingHandler /api/refinanciaciones/solicitudes.
type RefinancingHandler struct {
	uc *usecase.RefinancingUseCase
}

// NewRefinancingHandler construye el handler.
func NewRefinancingHandler(uc *usecase.RefinancingUseCase) *RefinancingHandler {
	return &RefinancingHandler{uc: uc}
}

// Mine godoc
// @Summary      Mis solicitudes de refinanciación
// @Tags         refinanciaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.RefinancingResponse}
// @Router       /api/refinanciaciones/solicitudes/mis-solicitudes [get]
func (h *RefinancingHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar solicitudes de refinanciación
// @Tags         refinanciaciones
// @Security     Bearer
// @Produce      json
// @Param        estado  query     string  false  "PENDIENTE, APROBADA o RECHAZADA"
// @Success      200     {object}  dto.OKEnvelope{result=[]dto.RefinancingResponse}
// @Router       /api/refinanciaciones/solicitudes [get]
func (h *RefinancingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("estado"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Solicitar refinanciación
// @Tags         refinanciaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateRefinancingRequest  true  "préstamo, nuevas cuotas y comentario"
// @Success      201   {object}  dto.OKEnvelope{result=object}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/refinanciaciones/solicitudes [post]
func (h *RefinancingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRefinancingRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	id, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{"id_solicitud_refinanciacion": id})
}

// Approve godoc
// @Summary      Aprobar refinanciación
// @Description  Reprograma el saldo pendiente del préstamo en el nuevo número de cuotas.
// @Tags         refinanciaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                           true   "id de la solicitud"
// @Param        body  body      dto.DecideRefinancingRequest  false  "comentario del empleado"
// @Success      200   {object}  dto.OKEnvelope{result=dto.RefinancingResponse}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/refinanciaciones/solicitudes/{id}/aprobar [put]
func (h *RefinancingHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, h.uc.Approve)
}

// Reject godoc
// @Summary      Rechazar refinanciación
// @Tags         refinanciaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                           true   "id de la solicitud"
// @Param        body  body      dto.DecideRefinancingRequest  false  "comentario del empleado"
// @Success      200   {object}  dto.OKEnvelope{result=dto.RefinancingResponse}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/refinanciaciones/solicitudes/{id}/rechazar [put]
func (h *RefinancingHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, h.uc.Reject)
}

type refinancingDecision func(ctx context.Context, viewer entity.Identity, id int64, comment string) (*dto.RefinancingResponse, error)

func (h *RefinancingHandler) decide(c *fiber.Ctx, fn refinancingDecision) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	var in dto.DecideRefinancingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
	}
	out, err := fn(c.UserContext(), GetIdentity(c), id, in.EmployeeComment)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
