package entity

// RefinancingStatus estado de una solicitud de refinanciación.
type RefinancingStatus string

const (
	RefinancingPending  RefinancingStatus = "PENDIENTE"
	RefinancingApproved RefinancingStatus = "APROBADA"
	RefinancingRejected RefinancingStatus = "RECHAZADA"
)

// RefinancingRequest pedido de cambiar el número de cuotas de un préstamo activo.
type RefinancingRequest struct {
	ID                  int64
	LoanID              int64
	BorrowerID          int64
	NewInstallmentCount int
	RequestedAt         string
	DecidedAt           *string
	Status              RefinancingStatus
	EmployeeComment     *string
	BorrowerComment     *string
	DeciderID           *int64
}

// IsPending informa si la solicitud admite decisión.
func (r RefinancingRequest) IsPending() bool { return r.Status == RefinancingPending }
