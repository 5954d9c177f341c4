package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

// maxUploadBytes tope del archivo de carga masiva.
const maxUploadBytes = 5 << 20

// BorrowerHandler /api/prestatarios.
type BorrowerHandler struct {
	uc *usecase.BorrowerUseCase
}

// NewBorrowerHandler construye el handler.
func NewBorrowerHandler(uc *usecase.BorrowerUseCase) *BorrowerHandler {
	return &BorrowerHandler{uc: uc}
}

// List godoc
// @Summary      Listar prestatarios
// @Tags         prestatarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.BorrowerResponse}
// @Failure      403  {object}  dto.OKEnvelope
// @Router       /api/prestatarios [get]
func (h *BorrowerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByCI godoc
// @Summary      Obtener prestatario por CI
// @Tags         prestatarios
// @Security     Bearer
// @Produce      json
// @Param        ci   path      string  true  "cédula de identidad"
// @Success      200  {object}  dto.OKEnvelope{result=dto.BorrowerResponse}
// @Failure      404  {object}  dto.OKEnvelope
// @Router       /api/prestatarios/{ci} [get]
func (h *BorrowerHandler) GetByCI(c *fiber.Ctx) error {
	out, err := h.uc.GetByCI(c.Params("ci"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Me godoc
// @Summary      Perfil del prestatario del token
// @Tags         prestatarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=dto.BorrowerResponse}
// @Failure      404  {object}  dto.OKEnvelope
// @Router       /api/prestatarios/me [get]
func (h *BorrowerHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Registrar prestatario
// @Tags         prestatarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateBorrowerRequest  true  "datos del prestatario"
// @Success      201   {object}  dto.OKEnvelope{result=dto.BorrowerResponse}
// @Failure      400   {object}  dto.OKEnvelope
// @Failure      409   {object}  dto.OKEnvelope
// @Router       /api/prestatarios [post]
func (h *BorrowerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBorrowerRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Modificar prestatario
// @Tags         prestatarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        ci    path      string                     true  "cédula de identidad"
// @Param        body  body      dto.UpdateBorrowerRequest  true  "campos a modificar"
// @Success      200   {object}  dto.OKEnvelope{result=dto.BorrowerResponse}
// @Failure      404   {object}  dto.OKEnvelope
// @Router       /api/prestatarios/{ci} [put]
func (h *BorrowerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBorrowerRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.uc.Update(c.Params("ci"), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar prestatario sin préstamos
// @Tags         prestatarios
// @Security     Bearer
// @Produce      json
// @Param        ci   path      string  true  "cédula de identidad"
// @Success      200  {object}  dto.OKEnvelope
// @Failure      409  {object}  dto.OKEnvelope
// @Router       /api/prestatarios/{ci} [delete]
func (h *BorrowerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("ci")); err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"ci": c.Params("ci")})
}

// BulkLoad godoc
// @Summary      Carga masiva de prestatarios
// @Description  Archivo CSV o TXT en el campo "archivo"; acepta UTF-8 y Latin-1.
// @Tags         prestatarios
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        archivo  formData  file  true  "archivo de prestatarios"
// @Success      200      {object}  dto.OKEnvelope{result=dto.BulkLoadResponse}
// @Failure      400      {object}  dto.OKEnvelope
// @Router       /api/prestatarios/carga-masiva [post]
func (h *BorrowerHandler) BulkLoad(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Debe adjuntar un archivo en el campo 'archivo'.")
	}
	if fh.Size > maxUploadBytes {
		return fail(c, fiber.StatusBadRequest, "El archivo supera el tamaño máximo permitido.")
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No se pudo leer el archivo.")
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No se pudo leer el archivo.")
	}
	out, err := h.uc.BulkLoad(c.UserContext(), GetIdentity(c), fh.Filename, content)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// LoadLogs godoc
// @Summary      Historial de cargas masivas
// @Tags         prestatarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]dto.LoadLogResponse}
// @Router       /api/prestatarios/obtener-logs-carga [get]
func (h *BorrowerHandler) LoadLogs(c *fiber.Ctx) error {
	out, err := h.uc.LoadLogs()
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delinquency godoc
// @Summary      Morosidad de un prestatario
// @Description  Un PRESTATARIO solo puede consultar la propia.
// @Tags         prestatarios
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "id del prestatario"
// @Success      200  {object}  dto.OKEnvelope{result=dto.DelinquencyResponse}
// @Failure      403  {object}  dto.OKEnvelope
// @Router       /api/prestatarios/{id}/morosidad [get]
func (h *BorrowerHandler) Delinquency(c *fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}
	out, err := h.uc.Delinquency(GetIdentity(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
