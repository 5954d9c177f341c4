package memory

import (
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var (
	_ repository.LoanRepository        = (*LoanRepo)(nil)
	_ repository.InstallmentRepository = (*InstallmentRepo)(nil)
)

// LoanRepo préstamos.
type LoanRepo struct {
	db *DB
}

// NewLoanRepository construye el repositorio.
func NewLoanRepository(db *DB) *LoanRepo {
	return &LoanRepo{db: db}
}

// Create persiste el préstamo y le asigna id.
func (r *LoanRepo) Create(l *entity.Loan) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l.ID = r.db.loans.insert(0, *l)
	r.db.loans.rows[l.ID] = *l
	return nil
}

// GetByID obtiene un préstamo por id.
func (r *LoanRepo) GetByID(id int64) (*entity.Loan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	l, ok := r.db.loans.get(id)
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// List todos los préstamos.
func (r *LoanRepo) List() ([]*entity.Loan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return pointers(r.db.loans.all()), nil
}

// ListByBorrower préstamos de un prestatario.
func (r *LoanRepo) ListByBorrower(borrowerID int64) ([]*entity.Loan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var out []*entity.Loan
	for _, l := range r.db.loans.all() {
		l := l
		if l.BorrowerID == borrowerID {
			out = append(out, &l)
		}
	}
	return out, nil
}

// Update reemplaza el registro.
func (r *LoanRepo) Update(l *entity.Loan) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.loans.put(l.ID, *l) {
		return fmt.Errorf("update loan %d: no existe", l.ID)
	}
	return nil
}

// InstallmentRepo cuotas.
type InstallmentRepo struct {
	db *DB
}

// NewInstallmentRepository construye el repositorio.
func NewInstallmentRepository(db *DB) *InstallmentRepo {
	return &InstallmentRepo{db: db}
}

// CreateBatch persiste el cronograma y asigna ids.
func (r *InstallmentRepo) CreateBatch(items []*entity.Installment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range items {
		c.ID = r.db.installments.insert(0, *c)
		r.db.installments.rows[c.ID] = *c
	}
	return nil
}

// GetByID obtiene una cuota por id.
func (r *InstallmentRepo) GetByID(id int64) (*entity.Installment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.installments.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List todas las cuotas.
func (r *InstallmentRepo) List() ([]*entity.Installment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return pointers(r.db.installments.all()), nil
}

// ListByLoan cronograma de un préstamo ordenado por número de cuota.
func (r *InstallmentRepo) ListByLoan(loanID int64) ([]*entity.Installment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var out []*entity.Installment
	for _, c := range r.db.installments.all() {
		c := c
		if c.LoanID == loanID {
			out = append(out, &c)
		}
	}
	return out, nil
}

// Update reemplaza el registro.
func (r *InstallmentRepo) Update(c *entity.Installment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.installments.put(c.ID, *c) {
		return fmt.Errorf("update installment %d: no existe", c.ID)
	}
	return nil
}

// DeleteUnpaidByLoan quita las cuotas no pagadas del préstamo.
func (r *InstallmentRepo) DeleteUnpaidByLoan(loanID int64) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n := 0
	for _, c := range r.db.installments.all() {
		if c.LoanID == loanID && c.Status != entity.InstallmentPaid {
			r.db.installments.remove(c.ID)
			n++
		}
	}
	return n, nil
}
