package ports

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// Puertos de salida hacia el servicio remoto de préstamos. Cada método devuelve
// entidades ya normalizadas; los errores ya pasaron por el gateway.

// BorrowerAPI operaciones de prestatarios.
type BorrowerAPI interface {
	List(ctx context.Context) ([]entity.Borrower, error)
	GetByCI(ctx context.Context, ci string) (*entity.Borrower, error)
	Me(ctx context.Context) (*entity.Borrower, error)
	Create(ctx context.Context, in dto.CreateBorrowerRequest) error
	Update(ctx context.Context, ci string, in dto.UpdateBorrowerRequest) error
	Delete(ctx context.Context, ci string) error
	BulkLoad(ctx context.Context, filename string, content []byte) (*entity.BulkLoadResult, error)
	LoadLogs(ctx context.Context) ([]entity.LoadLog, error)
	Delinquency(ctx context.Context, borrowerID int64) (*entity.Delinquency, error)
}

// LoanAPI operaciones de préstamos.
type LoanAPI interface {
	List(ctx context.Context) ([]entity.Loan, error)
	Get(ctx context.Context, id int64) (*entity.Loan, error)
	ByBorrower(ctx context.Context, ci string) (*entity.BorrowerLoans, error)
	Mine(ctx context.Context) (*entity.BorrowerLoans, error)
	// Create devuelve el id generado (0 si el servicio no lo informa).
	Create(ctx context.Context, in dto.CreateLoanRequest) (int64, error)
	Update(ctx context.Context, id int64, in dto.UpdateLoanRequest) (*entity.Loan, error)
	Cancel(ctx context.Context, id int64) error
}

// InstallmentAPI operaciones de cuotas.
type InstallmentAPI interface {
	ByLoan(ctx context.Context, loanID int64) ([]entity.Installment, error)
	Pending(ctx context.Context) ([]entity.Installment, error)
	Delinquent(ctx context.Context) ([]entity.Installment, error)
	Pay(ctx context.Context, id int64, in dto.PayInstallmentRequest) (*entity.PaymentResult, error)
}

// LoanRequestAPI operaciones de solicitudes de préstamo.
type LoanRequestAPI interface {
	Mine(ctx context.Context) ([]entity.LoanRequest, error)
	List(ctx context.Context, filter dto.LoanApplicationFilter) ([]entity.LoanRequest, error)
	Create(ctx context.Context, in dto.CreateLoanApplicationRequest) (int64, error)
	Approve(ctx context.Context, id int64) (*entity.LoanRequestDecision, error)
	Reject(ctx context.Context, id int64, reason string) (*entity.LoanRequestDecision, error)
}

// RefinancingAPI operaciones de solicitudes de refinanciación.
type RefinancingAPI interface {
	Mine(ctx context.Context) ([]entity.RefinancingRequest, error)
	List(ctx context.Context, status string) ([]entity.RefinancingRequest, error)
	Create(ctx context.Context, in dto.CreateRefinancingRequest) (int64, error)
	Approve(ctx context.Context, id int64, comment string) error
	Reject(ctx context.Context, id int64, comment string) error
}

// ReportAPI reportes con columnas definidas por el servicio.
type ReportAPI interface {
	LoanSummary(ctx context.Context) ([]entity.ReportRow, error)
	Delinquents(ctx context.Context) ([]entity.ReportRow, error)
	Refinancings(ctx context.Context) ([]entity.ReportRow, error)
}
