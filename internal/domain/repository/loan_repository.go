package repository

import "github.com/jhoicas/banco-cliente/internal/domain/entity"

// LoanRepository persistencia de préstamos. No hay borrado: cancelar es un cambio de estado.
type LoanRepository interface {
	Create(l *entity.Loan) error
	GetByID(id int64) (*entity.Loan, error)
	List() ([]*entity.Loan, error)
	ListByBorrower(borrowerID int64) ([]*entity.Loan, error)
	Update(l *entity.Loan) error
}

// InstallmentRepository persistencia del cronograma de cuotas.
type InstallmentRepository interface {
	CreateBatch(items []*entity.Installment) error
	GetByID(id int64) (*entity.Installment, error)
	List() ([]*entity.Installment, error)
	ListByLoan(loanID int64) ([]*entity.Installment, error)
	Update(c *entity.Installment) error
	// DeleteUnpaidByLoan quita las cuotas no pagadas (al refinanciar) y devuelve cuántas quitó.
	DeleteUnpaidByLoan(loanID int64) (int, error)
}
