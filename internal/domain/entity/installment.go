package entity

import "github.com/shopspring/decimal"

// InstallmentStatus estado de una cuota.
// MOROSA se deriva en el servicio remoto comparando vencimiento con la fecha actual.
type InstallmentStatus string

const (
	InstallmentPending    InstallmentStatus = "PENDIENTE"
	InstallmentPaid       InstallmentStatus = "PAGADA"
	InstallmentDelinquent InstallmentStatus = "MOROSA"
)

// Installment cuota de un préstamo.
type Installment struct {
	ID             int64
	LoanID         int64
	BorrowerID     int64
	SequenceNumber int
	Amount         decimal.Decimal
	DueDate        string
	PaidDate       *string
	Status         InstallmentStatus
}

// IsPayable informa si la UI debe ofrecer la acción de pago.
func (i Installment) IsPayable() bool {
	return i.Status == InstallmentPending || i.Status == InstallmentDelinquent
}

// PaymentResult resultado del registro de pago: la cuota y el préstamo tras el pago.
type PaymentResult struct {
	Installment *Installment
	Loan        *Loan
}
