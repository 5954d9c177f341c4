package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.AuditRepository    = (*AuditRepo)(nil)
	_ repository.NoticeRepository   = (*NoticeRepo)(nil)
)

// EmployeeRepo empleados sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `id, nombre, apellido, cargo, salario, edad`

// Create persiste un empleado y le asigna id.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO empleados (nombre, apellido, cargo, salario, edad)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		e.FirstName, e.LastName, e.Position, e.Salary, e.Age,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por id.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+employeeColumns+` FROM empleados WHERE id = $1`, id)
	e, err := scanEmployee(row)
	return noRows(e, err, "get employee by id")
}

// List todos los empleados en orden de alta.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT `+employeeColumns+` FROM empleados ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return collect(rows, scanEmployee)
}

// Update reemplaza el registro.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE empleados SET nombre = $2, apellido = $3, cargo = $4, salario = $5, edad = $6 WHERE id = $1`,
		e.ID, e.FirstName, e.LastName, e.Position, e.Salary, e.Age,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return mustAffect(tag, "update employee", e.ID)
}

// Delete elimina el registro; los usuarios asociados quedan sin ficha por la FK.
func (r *EmployeeRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM empleados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return mustAffect(tag, "delete employee", id)
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Salary, &e.Age); err != nil {
		return nil, err
	}
	return &e, nil
}

// AuditRepo registros de auditoría sobre PostgreSQL.
type AuditRepo struct {
	pool *pgxpool.Pool
}

// NewAuditRepository construye el repositorio.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

const auditColumns = `id, usuario, ip, dominio, fecha_entrada, fecha_salida, tabla_afectada, operacion,
	duracion_sesion, descripcion`

// Create persiste el registro y le asigna id.
func (r *AuditRepo) Create(a *entity.AuditLog) error {
	query := `
		INSERT INTO auditoria (usuario, ip, dominio, fecha_entrada, fecha_salida, tabla_afectada, operacion,
			duracion_sesion, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		a.User, a.IP, a.Domain, a.EnteredAt, a.ExitedAt, a.Table, a.Operation, a.SessionDuration, a.Description,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por id.
func (r *AuditRepo) GetByID(id int64) (*entity.AuditLog, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+auditColumns+` FROM auditoria WHERE id = $1`, id)
	a, err := scanAudit(row)
	return noRows(a, err, "get audit by id")
}

// List registros filtrados, del más reciente al más antiguo.
func (r *AuditRepo) List(f repository.AuditFilter) ([]*entity.AuditLog, error) {
	var w where
	if f.User != "" {
		w.add("usuario", f.User)
	}
	if f.Operation != "" {
		w.add("operacion", f.Operation)
	}
	if f.Table != "" {
		w.add("tabla_afectada", f.Table)
	}
	query := `SELECT ` + auditColumns + ` FROM auditoria` + w.String() + ` ORDER BY id DESC`
	if f.Limit > 0 {
		w.args = append(w.args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(w.args))
	}
	if f.Offset > 0 {
		w.args = append(w.args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(w.args))
	}
	rows, err := r.pool.Query(context.Background(), query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	return collect(rows, scanAudit)
}

// Update reemplaza el registro.
func (r *AuditRepo) Update(a *entity.AuditLog) error {
	query := `
		UPDATE auditoria SET usuario = $2, ip = $3, dominio = $4, fecha_entrada = $5, fecha_salida = $6,
			tabla_afectada = $7, operacion = $8, duracion_sesion = $9, descripcion = $10
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		a.ID, a.User, a.IP, a.Domain, a.EnteredAt, a.ExitedAt, a.Table, a.Operation, a.SessionDuration, a.Description,
	)
	if err != nil {
		return fmt.Errorf("update audit: %w", err)
	}
	return mustAffect(tag, "update audit", a.ID)
}

func scanAudit(row pgx.Row) (*entity.AuditLog, error) {
	var a entity.AuditLog
	err := row.Scan(&a.ID, &a.User, &a.IP, &a.Domain, &a.EnteredAt, &a.ExitedAt, &a.Table, &a.Operation,
		&a.SessionDuration, &a.Description)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// NoticeRepo avisos a prestatarios sobre PostgreSQL.
type NoticeRepo struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository construye el repositorio.
func NewNoticeRepository(pool *pgxpool.Pool) *NoticeRepo {
	return &NoticeRepo{pool: pool}
}

const noticeColumns = `id, id_prestatario, id_cuota, id_prestamo, tipo, mensaje, enviado, creado_en`

// Create persiste el aviso y le asigna id.
func (r *NoticeRepo) Create(n *entity.Notice) error {
	query := `
		INSERT INTO notificaciones (id_prestatario, id_cuota, id_prestamo, tipo, mensaje, enviado, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		n.BorrowerID, n.InstallmentID, n.LoanID, n.Kind, n.Message, n.Sent, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert notice: %w", err)
	}
	return nil
}

// List avisos en orden de alta.
func (r *NoticeRepo) List(borrowerID int64, pendingOnly bool) ([]*entity.Notice, error) {
	var w where
	if borrowerID != 0 {
		w.add("id_prestatario", borrowerID)
	}
	if pendingOnly {
		w.add("enviado", false)
	}
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+noticeColumns+` FROM notificaciones`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return collect(rows, scanNotice)
}

// MarkSent marca como enviados los pendientes del tipo.
func (r *NoticeRepo) MarkSent(kind entity.NoticeKind) (int, error) {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE notificaciones SET enviado = TRUE WHERE tipo = $1 AND NOT enviado`, kind)
	if err != nil {
		return 0, fmt.Errorf("mark notices sent: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanNotice(row pgx.Row) (*entity.Notice, error) {
	var n entity.Notice
	err := row.Scan(&n.ID, &n.BorrowerID, &n.InstallmentID, &n.LoanID, &n.Kind, &n.Message, &n.Sent, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
