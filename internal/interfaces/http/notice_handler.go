package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

// NoticeHandler /api/notificaciones.
type NoticeHandler struct {
	uc *usecase.NoticeUseCase
}

// NewNoticeHandler construye el handler.
func NewNoticeHandler(uc *usecase.NoticeUseCase) *NoticeHandler {
	return &NoticeHandler{uc: uc}
}

// Pending godoc
// @Summary      Avisos pendientes de envío
// @Description  Un PRESTATARIO solo recibe los propios.
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.NoticeResponse}
// @Router       /api/notificaciones/pendientes [get]
func (h *NoticeHandler) Pending(c *fiber.Ctx) error {
	out, err := h.uc.Pending(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// History godoc
// @Summary      Historial de avisos
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.NoticeResponse}
// @Router       /api/notificaciones [get]
func (h *NoticeHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Send godoc
// @Summary      Despachar avisos pendientes de un tipo
// @Tags         notificaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SendNoticesRequest  true  "tipo: PAGO, MORA o CANCELACION"
// @Success      200   {object}  dto.OKEnvelope{result=dto.NoticeBatchResponse}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/notificaciones/enviar [post]
func (h *NoticeHandler) Send(c *fiber.Ctx) error {
	var in dto.SendNoticesRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Send(in.Kind)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// PaymentReminders godoc
// @Summary      Generar recordatorios de pago
// @Description  Cuotas pendientes que vencen en los próximos 7 días. No duplica avisos.
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=dto.NoticeBatchResponse}
// @Router       /api/notificaciones/recordatorios-pago [post]
func (h *NoticeHandler) PaymentReminders(c *fiber.Ctx) error {
	return h.batch(c, h.uc.GeneratePaymentReminders)
}

// Delinquency godoc
// @Summary      Generar avisos de mora
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=dto.NoticeBatchResponse}
// @Router       /api/notificaciones/notificar-mora [post]
func (h *NoticeHandler) Delinquency(c *fiber.Ctx) error {
	return h.batch(c, h.uc.GenerateDelinquencyNotices)
}

// Cancellation godoc
// @Summary      Generar avisos de préstamos cancelados
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=dto.NoticeBatchResponse}
// @Router       /api/notificaciones/notificar-cancelacion [post]
func (h *NoticeHandler) Cancellation(c *fiber.Ctx) error {
	return h.batch(c, h.uc.GenerateCancellationNotices)
}

func (h *NoticeHandler) batch(c *fiber.Ctx, generate func() (*dto.NoticeBatchResponse, error)) error {
	out, err := generate()
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
