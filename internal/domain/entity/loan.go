package entity

import "github.com/shopspring/decimal"

// LoanStatus estado de un préstamo.
type LoanStatus string

const (
	LoanPending    LoanStatus = "PENDIENTE"
	LoanActive     LoanStatus = "ACTIVO"
	LoanCanceled   LoanStatus = "CANCELADO"
	LoanRefinanced LoanStatus = "REFINANCIADO"
	LoanRejected   LoanStatus = "RECHAZADO"
)

// Loan préstamo emitido al aprobar una solicitud.
// Cancelar no lo elimina: pasa a CANCELADO y queda para auditoría.
type Loan struct {
	ID               int64
	LoanRequestID    int64
	BorrowerID       int64
	Principal        decimal.Decimal
	InstallmentCount int
	InterestRate     decimal.Decimal
	IssuedAt         string
	DueAt            *string
	Status           LoanStatus
}

// IsActive informa si el préstamo cuenta para el tope de préstamos activos.
func (l Loan) IsActive() bool { return l.Status == LoanActive }

// InstallmentSummary cuota resumida que acompaña al listado de préstamos de un prestatario.
type InstallmentSummary struct {
	LoanID         int64
	SequenceNumber int
	Amount         decimal.Decimal
	Balance        decimal.Decimal
	Status         InstallmentStatus
	DueDate        string
}

// BorrowerRef referencia mínima al prestatario consultado por cédula.
type BorrowerRef struct {
	ID int64
	CI string
}

// BorrowerLoans préstamos y cuotas de un prestatario.
type BorrowerLoans struct {
	Borrower     *BorrowerRef
	Loans        []Loan
	Installments []InstallmentSummary
}

// CountActive cuenta los préstamos en estado ACTIVO.
func CountActive(loans []Loan) int {
	n := 0
	for _, l := range loans {
		if l.IsActive() {
			n++
		}
	}
	return n
}
