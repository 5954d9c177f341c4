package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var (
	_ repository.LoanRepository        = (*LoanRepo)(nil)
	_ repository.InstallmentRepository = (*InstallmentRepo)(nil)
)

// LoanRepo préstamos sobre PostgreSQL.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepository construye el repositorio.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

const loanColumns = `id, id_solicitud, id_prestatario, monto, nro_cuotas, tasa_interes, fecha_emision, fecha_vencimiento, estado`

// Create persiste el préstamo y le asigna id.
func (r *LoanRepo) Create(l *entity.Loan) error {
	query := `
		INSERT INTO prestamos (id_solicitud, id_prestatario, monto, nro_cuotas, tasa_interes, fecha_emision, fecha_vencimiento, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		l.LoanRequestID, l.BorrowerID, l.Principal, l.InstallmentCount, l.InterestRate, l.IssuedAt, l.DueAt, l.Status,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert loan: %w", err)
	}
	return nil
}

// GetByID obtiene un préstamo por id.
func (r *LoanRepo) GetByID(id int64) (*entity.Loan, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+loanColumns+` FROM prestamos WHERE id = $1`, id)
	l, err := scanLoan(row)
	return noRows(l, err, "get loan by id")
}

// List todos los préstamos.
func (r *LoanRepo) List() ([]*entity.Loan, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT `+loanColumns+` FROM prestamos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return collect(rows, scanLoan)
}

// ListByBorrower préstamos de un prestatario.
func (r *LoanRepo) ListByBorrower(borrowerID int64) ([]*entity.Loan, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+loanColumns+` FROM prestamos WHERE id_prestatario = $1 ORDER BY id`, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("list loans by borrower: %w", err)
	}
	return collect(rows, scanLoan)
}

// Update reemplaza el registro.
func (r *LoanRepo) Update(l *entity.Loan) error {
	query := `
		UPDATE prestamos SET id_solicitud = $2, id_prestatario = $3, monto = $4, nro_cuotas = $5, tasa_interes = $6,
			fecha_emision = $7, fecha_vencimiento = $8, estado = $9
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		l.ID, l.LoanRequestID, l.BorrowerID, l.Principal, l.InstallmentCount, l.InterestRate, l.IssuedAt, l.DueAt, l.Status,
	)
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	return mustAffect(tag, "update loan", l.ID)
}

func scanLoan(row pgx.Row) (*entity.Loan, error) {
	var l entity.Loan
	err := row.Scan(&l.ID, &l.LoanRequestID, &l.BorrowerID, &l.Principal, &l.InstallmentCount,
		&l.InterestRate, &l.IssuedAt, &l.DueAt, &l.Status)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// InstallmentRepo cuotas sobre PostgreSQL.
type InstallmentRepo struct {
	pool *pgxpool.Pool
}

// NewInstallmentRepository construye el repositorio.
func NewInstallmentRepository(pool *pgxpool.Pool) *InstallmentRepo {
	return &InstallmentRepo{pool: pool}
}

const installmentColumns = `id, id_prestamo, id_prestatario, nro_cuota, monto, fecha_vencimiento, fecha_pago, estado`

// CreateBatch persiste el cronograma en un solo lote y asigna ids.
func (r *InstallmentRepo) CreateBatch(items []*entity.Installment) error {
	if len(items) == 0 {
		return nil
	}
	query := `
		INSERT INTO cuotas (id_prestamo, id_prestatario, nro_cuota, monto, fecha_vencimiento, fecha_pago, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	batch := &pgx.Batch{}
	for _, c := range items {
		batch.Queue(query, c.LoanID, c.BorrowerID, c.SequenceNumber, c.Amount, c.DueDate, c.PaidDate, c.Status)
	}
	results := r.pool.SendBatch(context.Background(), batch)
	defer results.Close()
	for _, c := range items {
		if err := results.QueryRow().Scan(&c.ID); err != nil {
			return fmt.Errorf("insert installment %d: %w", c.SequenceNumber, err)
		}
	}
	return nil
}

// GetByID obtiene una cuota por id.
func (r *InstallmentRepo) GetByID(id int64) (*entity.Installment, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+installmentColumns+` FROM cuotas WHERE id = $1`, id)
	c, err := scanInstallment(row)
	return noRows(c, err, "get installment by id")
}

// List todas las cuotas.
func (r *InstallmentRepo) List() ([]*entity.Installment, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT `+installmentColumns+` FROM cuotas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	return collect(rows, scanInstallment)
}

// ListByLoan cronograma de un préstamo ordenado por número de cuota.
func (r *InstallmentRepo) ListByLoan(loanID int64) ([]*entity.Installment, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+installmentColumns+` FROM cuotas WHERE id_prestamo = $1 ORDER BY nro_cuota, id`, loanID)
	if err != nil {
		return nil, fmt.Errorf("list installments by loan: %w", err)
	}
	return collect(rows, scanInstallment)
}

// Update reemplaza el registro.
func (r *InstallmentRepo) Update(c *entity.Installment) error {
	query := `
		UPDATE cuotas SET id_prestamo = $2, id_prestatario = $3, nro_cuota = $4, monto = $5,
			fecha_vencimiento = $6, fecha_pago = $7, estado = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		c.ID, c.LoanID, c.BorrowerID, c.SequenceNumber, c.Amount, c.DueDate, c.PaidDate, c.Status,
	)
	if err != nil {
		return fmt.Errorf("update installment: %w", err)
	}
	return mustAffect(tag, "update installment", c.ID)
}

// DeleteUnpaidByLoan quita las cuotas no pagadas del préstamo.
func (r *InstallmentRepo) DeleteUnpaidByLoan(loanID int64) (int, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM cuotas WHERE id_prestamo = $1 AND estado <> $2`, loanID, entity.InstallmentPaid)
	if err != nil {
		return 0, fmt.Errorf("delete unpaid installments: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanInstallment(row pgx.Row) (*entity.Installment, error) {
	var c entity.Installment
	err := row.Scan(&c.ID, &c.LoanID, &c.BorrowerID, &c.SequenceNumber, &c.Amount, &c.DueDate, &c.PaidDate, &c.Status)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
