package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var (
	_ repository.LoanRequestRepository = (*LoanRequestRepo)(nil)
	_ repository.RefinancingRepository = (*RefinancingRepo)(nil)
)

// where arma la cláusula WHERE con los filtros no vacíos, numerando los parámetros en orden.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(column string, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, column+" = $"+strconv.Itoa(len(w.args)))
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// LoanRequestRepo solicitudes de préstamo sobre PostgreSQL.
type LoanRequestRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRequestRepository construye el repositorio.
func NewLoanRequestRepository(pool *pgxpool.Pool) *LoanRequestRepo {
	return &LoanRequestRepo{pool: pool}
}

const loanRequestColumns = `id, id_prestatario, id_empleado, monto, nro_cuotas, fecha_envio, fecha_respuesta, estado, motivo_rechazo`

// Create persiste la solicitud y le asigna id.
func (r *LoanRequestRepo) Create(req *entity.LoanRequest) error {
	query := `
		INSERT INTO solicitudes_prestamo (id_prestatario, id_empleado, monto, nro_cuotas, fecha_envio, fecha_respuesta, estado, motivo_rechazo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		req.BorrowerID, req.EmployeeID, req.Amount, req.InstallmentCount, req.SubmittedAt, req.DecidedAt, req.Status, req.RejectionReason,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert loan request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por id.
func (r *LoanRequestRepo) GetByID(id int64) (*entity.LoanRequest, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+loanRequestColumns+` FROM solicitudes_prestamo WHERE id = $1`, id)
	req, err := scanLoanRequest(row)
	return noRows(req, err, "get loan request by id")
}

// List solicitudes filtradas.
func (r *LoanRequestRepo) List(filter repository.LoanRequestFilter) ([]*entity.LoanRequest, error) {
	var w where
	if filter.Status != "" {
		w.add("estado", filter.Status)
	}
	if filter.BorrowerID != 0 {
		w.add("id_prestatario", filter.BorrowerID)
	}
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+loanRequestColumns+` FROM solicitudes_prestamo`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list loan requests: %w", err)
	}
	return collect(rows, scanLoanRequest)
}

// Update reemplaza el registro.
func (r *LoanRequestRepo) Update(req *entity.LoanRequest) error {
	query := `
		UPDATE solicitudes_prestamo SET id_prestatario = $2, id_empleado = $3, monto = $4, nro_cuotas = $5,
			fecha_envio = $6, fecha_respuesta = $7, estado = $8, motivo_rechazo = $9
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		req.ID, req.BorrowerID, req.EmployeeID, req.Amount, req.InstallmentCount, req.SubmittedAt, req.DecidedAt, req.Status, req.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("update loan request: %w", err)
	}
	return mustAffect(tag, "update loan request", req.ID)
}

func scanLoanRequest(row pgx.Row) (*entity.LoanRequest, error) {
	var req entity.LoanRequest
	err := row.Scan(&req.ID, &req.BorrowerID, &req.EmployeeID, &req.Amount, &req.InstallmentCount,
		&req.SubmittedAt, &req.DecidedAt, &req.Status, &req.RejectionReason)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// RefinancingRepo solicitudes de refinanciación sobre PostgreSQL.
type RefinancingRepo struct {
	pool *pgxpool.Pool
}

// NewRefinancingRepository construye el repositorio.
func NewRefinancingRepository(pool *pgxpool.Pool) *RefinancingRepo {
	return &RefinancingRepo{pool: pool}
}

const refinancingColumns = `id, id_prestamo, id_prestatario, cantidad_cuotas, fecha_solicitud, fecha_respuesta, estado,
	comentario_empleado, comentario_prestatario, id_decisor`

// Create persiste la solicitud y le asigna id.
func (r *RefinancingRepo) Create(req *entity.RefinancingRequest) error {
	query := `
		INSERT INTO solicitudes_refinanciacion (id_prestamo, id_prestatario, cantidad_cuotas, fecha_solicitud, fecha_respuesta,
			estado, comentario_empleado, comentario_prestatario, id_decisor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		req.LoanID, req.BorrowerID, req.NewInstallmentCount, req.RequestedAt, req.DecidedAt,
		req.Status, req.EmployeeComment, req.BorrowerComment, req.DeciderID,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert refinancing: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por id.
func (r *RefinancingRepo) GetByID(id int64) (*entity.RefinancingRequest, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+refinancingColumns+` FROM solicitudes_refinanciacion WHERE id = $1`, id)
	req, err := scanRefinancing(row)
	return noRows(req, err, "get refinancing by id")
}

// List solicitudes filtradas por estado y prestatario.
func (r *RefinancingRepo) List(status entity.RefinancingStatus, borrowerID int64) ([]*entity.RefinancingRequest, error) {
	var w where
	if status != "" {
		w.add("estado", status)
	}
	if borrowerID != 0 {
		w.add("id_prestatario", borrowerID)
	}
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+refinancingColumns+` FROM solicitudes_refinanciacion`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list refinancings: %w", err)
	}
	return collect(rows, scanRefinancing)
}

// Update reemplaza el registro.
func (r *RefinancingRepo) Update(req *entity.RefinancingRequest) error {
	query := `
		UPDATE solicitudes_refinanciacion SET id_prestamo = $2, id_prestatario = $3, cantidad_cuotas = $4,
			fecha_solicitud = $5, fecha_respuesta = $6, estado = $7, comentario_empleado = $8,
			comentario_prestatario = $9, id_decisor = $10
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		req.ID, req.LoanID, req.BorrowerID, req.NewInstallmentCount, req.RequestedAt, req.DecidedAt,
		req.Status, req.EmployeeComment, req.BorrowerComment, req.DeciderID,
	)
	if err != nil {
		return fmt.Errorf("update refinancing: %w", err)
	}
	return mustAffect(tag, "update refinancing", req.ID)
}

func scanRefinancing(row pgx.Row) (*entity.RefinancingRequest, error) {
	var req entity.RefinancingRequest
	err := row.Scan(&req.ID, &req.LoanID, &req.BorrowerID, &req.NewInstallmentCount, &req.RequestedAt, &req.DecidedAt,
		&req.Status, &req.EmployeeComment, &req.BorrowerComment, &req.DeciderID)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
