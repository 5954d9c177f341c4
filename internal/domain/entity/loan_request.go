package entity

import "github.com/shopspring/decimal"

// LoanRequestStatus estado de una solicitud de préstamo. ACEPTADA y RECHAZADA son terminales.
type LoanRequestStatus string

const (
	LoanRequestPending  LoanRequestStatus = "PENDIENTE"
	LoanRequestAccepted LoanRequestStatus = "ACEPTADA"
	LoanRequestRejected LoanRequestStatus = "RECHAZADA"
)

// LoanRequest solicitud de préstamo enviada por un prestatario (o un empleado en su nombre).
type LoanRequest struct {
	ID               int64
	BorrowerID       int64
	EmployeeID       *int64
	Amount           decimal.Decimal
	InstallmentCount int
	SubmittedAt      string
	DecidedAt        *string
	Status           LoanRequestStatus
	RejectionReason  *string
	BorrowerName     string
	BorrowerCI       string
}

// IsPending informa si la solicitud admite decisión.
func (r LoanRequest) IsPending() bool { return r.Status == LoanRequestPending }

// LoanRequestDecision resultado de aprobar o rechazar una solicitud.
type LoanRequestDecision struct {
	RequestID int64
	Status    LoanRequestStatus
	LoanID    *int64  // solo al aprobar
	Reason    *string // solo al rechazar
}
