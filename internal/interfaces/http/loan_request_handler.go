package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

// LoanRequestHandler /api/solicitudes.
type LoanRequestHandler struct {
	uc *usecase.LoanRequestUseCase
}

// NewLoanRequestHandler construye el handler.
func NewLoanRequestHandler(uc *usecase.LoanRequestUseCase) *LoanRequestHandler {
	return &LoanRequestHandler{uc: uc}
}

// Mine godoc
// @Summary      Mis solicitudes de préstamo
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.LoanApplicationResponse}
// @Router       /api/solicitudes/mis-solicitudes [get]
func (h *LoanRequestHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar solicitudes de préstamo
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        estado          query     string  false  "PENDIENTE, APROBADA o RECHAZADA"
// @Param        id_prestatario  query     int     false  "id del prestatario"
// @Success      200             {object}  dto.OKEnvelope{result=[]dto.LoanApplicationResponse}
// @Failure      400             {object}  dto.OKEnvelope
// @Router       /api/solicitudes [get]
func (h *LoanRequestHandler) List(c *fiber.Ctx) error {
	filter := dto.LoanApplicationFilter{Status: c.Query("estado")}
	if raw := c.Query("id_prestatario"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "id_prestatario inválido.")
		}
		filter.BorrowerID = &id
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear solicitud de préstamo
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateLoanApplicationRequest  true  "monto y cuotas"
// @Success      201   {object}  dto.OKEnvelope{result=dto.LoanApplicationCreated}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/solicitudes [post]
func (h *LoanRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoanApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// Approve godoc
// @Summary      Aprobar solicitud de préstamo
// @Description  Genera el préstamo y su cronograma. Solo sobre solicitudes PENDIENTE.
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "id de la solicitud"
// @Success      200  {object}  dto.OKEnvelope{result=dto.LoanApplicationDecisionResponse}
// @Failure      400  {object}  dto.OKEnvelope
// @Router       /api/solicitudes/{id}/aprobar [put]
func (h *LoanRequestHandler) Approve(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	out, err := h.uc.Approve(c.UserContext(), GetIdentity(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Reject godoc
// @Summary      Rechazar solicitud de préstamo
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                               true   "id de la solicitud"
// @Param        body  body      dto.RejectLoanApplicationRequest  false  "motivo"
// @Success      200   {object}  dto.OKEnvelope{result=dto.LoanApplicationDecisionResponse}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/solicitudes/{id}/rechazar [put]
func (h *LoanRequestHandler) Reject(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	var in dto.RejectLoanApplicationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
	}
	out, err := h.uc.Reject(c.UserContext(), GetIdentity(c), id, in.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
