package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

// LoanHandler /api/prestamos.
type LoanHandler struct {
	uc *usecase.LoanUseCase
}

// NewLoanHandler construye el handler.
func NewLoanHandler(uc *usecase.LoanUseCase) *LoanHandler {
	return &LoanHandler{uc: uc}
}

// List godoc
// @Summary      Listar préstamos
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.LoanResponse}
// @Router       /api/prestamos [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener préstamo
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "id del préstamo"
// @Success      200  {object}  dto.OKEnvelope{result=dto.LoanResponse}
// @Failure      404  {object}  dto.OKEnvelope
// @Router       /api/prestamos/{id} [get]
func (h *LoanHandler) GetByID(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	out, err := h.uc.Get(GetIdentity(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// ByBorrower godoc
// @Summary      Préstamos de un prestatario
// @Description  key acepta cédula o id. Incluye el resumen de cuotas.
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Param        key  path      string  true  "cédula o id del prestatario"
// @Success      200  {object}  dto.OKEnvelope{result=dto.BorrowerLoansResponse}
// @Failure      404  {object}  dto.OKEnvelope
// @Router       /api/prestamos/prestatario/{key} [get]
func (h *LoanHandler) ByBorrower(c *fiber.Ctx) error {
	out, err := h.uc.ByBorrower(GetIdentity(c), c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Mine godoc
// @Summary      Mis préstamos
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=dto.BorrowerLoansResponse}
// @Router       /api/prestamos/mis-prestamos [get]
func (h *LoanHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear préstamo directo
// @Description  Rechaza con ORA-20001 si el prestatario alcanzó el tope de préstamos activos.
// @Tags         prestamos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateLoanRequest  true  "prestatario, monto y cuotas"
// @Success      201   {object}  dto.OKEnvelope{result=dto.CreateLoanResult}
// @Failure      400   {object}  dto.OKEnvelope
// @Router       /api/prestamos [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoanRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Modificar préstamo
// @Tags         prestamos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "id del préstamo"
// @Param        body  body      dto.UpdateLoanRequest  true  "campos a modificar"
// @Success      200   {object}  dto.OKEnvelope{result=dto.LoanResponse}
// @Failure      404   {object}  dto.OKEnvelope
// @Router       /api/prestamos/{id} [put]
func (h *LoanHandler) Update(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	var in dto.UpdateLoanRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Cancel godoc
// @Summary      Cancelar préstamo
// @Description  El registro se conserva con estado CANCELADO.
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "id del préstamo"
// @Success      200  {object}  dto.OKEnvelope
// @Failure      404  {object}  dto.OKEnvelope
// @Router       /api/prestamos/{id} [delete]
func (h *LoanHandler) Cancel(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	if err := h.uc.Cancel(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"id_prestamo": id, "estado": "CANCELADO"})
}

// Schedule godoc
// @Summary      Cronograma de cuotas de un préstamo
// @Tags         prestamos
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "id del préstamo"
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.InstallmentResponse}
// @Router       /api/prestamos/{id}/cuotas [get]
func (h *LoanHandler) Schedule(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	out, err := h.uc.Schedule(GetIdentity(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
