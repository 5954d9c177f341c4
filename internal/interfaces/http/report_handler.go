package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/usecase"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// ReportHandler /api/reportes.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Loans godoc
// @Summary      Resumen de préstamos
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]object}
// @Router       /api/reportes/prestamos [get]
func (h *ReportHandler) Loans(c *fiber.Ctx) error { return h.rows(c, h.uc.LoanSummary) }

// Delinquents godoc
// @Summary      Prestatarios morosos
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]object}
// @Router       /api/reportes/morosos [get]
func (h *ReportHandler) Delinquents(c *fiber.Ctx) error { return h.rows(c, h.uc.Delinquents) }

// Refinancings godoc
// @Summary      Refinanciaciones por estado
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OKEnvelope{result=[]object}
// @Router       /api/reportes/refinanciaciones [get]
func (h *ReportHandler) Refinancings(c *fiber.Ctx) error { return h.rows(c, h.uc.Refinancings) }

func (h *ReportHandler) rows(c *fiber.Ctx, fn func() ([]entity.ReportRow, error)) error {
	out, err := fn()
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
