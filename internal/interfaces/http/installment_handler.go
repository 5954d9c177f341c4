package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

// InstallmentHandler /api/cuotas.
type InstallmentHandler struct {
	uc *usecase.InstallmentUseCase
}

// NewInstallmentHandler construye el handler.
func NewInstallmentHandler(uc *usecase.InstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{uc: uc}
}

// Pending godoc
// @Summary      Cuotas pendientes
// @Description  Un PRESTATARIO solo recibe las de sus préstamos.
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.InstallmentResponse}
// @Router       /api/cuotas/pendientes [get]
func (h *InstallmentHandler) Pending(c *fiber.Ctx) error {
	out, err := h.uc.Pending(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delinquent godoc
// @Summary      Cuotas morosas
// @Description  Vencidas sin pagar a la fecha del servicio.
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.InstallmentResponse}
// @Router       /api/cuotas/morosas [get]
func (h *InstallmentHandler) Delinquent(c *fiber.Ctx) error {
	out, err := h.uc.Delinquent(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Pay godoc
// @Summary      Pagar cuota
// @Description  Cuerpo opcional: sin monto se paga el importe de la cuota.
// @Tags         cuotas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true   "id de la cuota"
// @Param        body  body      dto.PayInstallmentRequest  false  "monto y fecha de pago"
// @Success      200   {object}  dto.OKEnvelope{result=dto.PaymentResponse}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/cuotas/{id}/pagar [post]
func (h *InstallmentHandler) Pay(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	var in dto.PayInstallmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
	}
	out, err := h.uc.Pay(c.UserContext(), GetIdentity(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
