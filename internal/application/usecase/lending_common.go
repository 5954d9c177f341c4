package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// dateLayout formato de fecha de todos los registros del servicio.
const dateLayout = "2006-01-02"

// Clock fuente de la fecha actual; los tests fijan el día.
type Clock func() time.Time

func (c Clock) orNow() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func (c Clock) today() string { return c().Format(dateLayout) }

// TxRunner ejecuta un caso de uso que verifica y luego escribe sin escrituras intercaladas.
type TxRunner interface {
	Run(ctx context.Context, fn func() error) error
}

// Policy parámetros de negocio del servicio.
type Policy struct {
	MaxActiveLoans int
}

// interestRates tasa total por tipo de interés. MEDIA es el valor por defecto.
var interestRates = map[string]decimal.Decimal{
	"BAJA":  decimal.RequireFromString("0.10"),
	"MEDIA": decimal.RequireFromString("0.15"),
	"ALTA":  decimal.RequireFromString("0.20"),
}

func interestRate(kind string) decimal.Decimal {
	if r, ok := interestRates[kind]; ok {
		return r
	}
	return interestRates["MEDIA"]
}

// effectiveStatus deriva MOROSA al leer: cuota impaga con vencimiento anterior a hoy.
func effectiveStatus(c entity.Installment, today string) entity.InstallmentStatus {
	if c.Status != entity.InstallmentPaid && c.DueDate < today {
		return entity.InstallmentDelinquent
	}
	return c.Status
}

// canView un PRESTATARIO solo ve lo propio; empleados y administradores ven todo.
func canView(viewer entity.Identity, borrowerID int64) bool {
	if viewer.Role != entity.RoleBorrower {
		return true
	}
	return viewer.BorrowerID != nil && *viewer.BorrowerID == borrowerID
}

func notFound(msg string) error {
	return domain.NewRuleError(domain.ErrNotFound, "", msg)
}

func invalid(msg string) error {
	return domain.NewRuleError(domain.ErrInvalidInput, "", msg)
}

var errNotOwner = domain.NewRuleError(domain.ErrForbidden, "", "No tiene permiso para acceder a este recurso.")

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
