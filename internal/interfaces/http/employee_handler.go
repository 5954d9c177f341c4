package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

// EmployeeHandler /api/empleados. Responde con la variante {success, data, message}.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessEnvelope{data=[]dto.EmployeeResponse}
// @Failure      403  {object}  dto.SuccessEnvelope
// @Router       /api/empleados [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return employeeError(c, err)
	}
	return authOK(c, fiber.StatusOK, out, "")
}

// Get godoc
// @Summary      Obtener empleado
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "id del empleado"
// @Success      200  {object}  dto.SuccessEnvelope{data=dto.EmployeeResponse}
// @Failure      404  {object}  dto.SuccessEnvelope
// @Router       /api/empleados/{id} [get]
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return authFail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return employeeError(c, err)
	}
	return authOK(c, fiber.StatusOK, out, "")
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateEmployeeRequest  true  "nombre y apellido obligatorios"
// @Success      201   {object}  dto.SuccessEnvelope{data=dto.EmployeeResponse}
// @Failure      400   {object}  dto.SuccessEnvelope
// @Router       /api/empleados [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return authFail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return employeeError(c, err)
	}
	return authOK(c, fiber.StatusCreated, out, "Empleado registrado correctamente.")
}

// Update godoc
// @Summary      Modificar empleado
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "id del empleado"
// @Param        body  body      dto.UpdateEmployeeRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.SuccessEnvelope{data=dto.EmployeeResponse}
// @Failure      400   {object}  dto.SuccessEnvelope
// @Failure      404   {object}  dto.SuccessEnvelope
// @Router       /api/empleados/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return authFail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return authFail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return employeeError(c, err)
	}
	return authOK(c, fiber.StatusOK, out, "Empleado actualizado correctamente.")
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "id del empleado"
// @Success      200  {object}  dto.SuccessEnvelope
// @Failure      404  {object}  dto.SuccessEnvelope
// @Router       /api/empleados/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return authFail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	if err := h.uc.Delete(id); err != nil {
		return employeeError(c, err)
	}
	return authOK(c, fiber.StatusOK, fiber.Map{"id_empleado": id}, "Empleado eliminado correctamente.")
}

func employeeError(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)
	if status == fiber.StatusInternalServerError {
		c.Locals(localErr, err)
	}
	return authFail(c, status, msg)
}
