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
	_ repository.BorrowerRepository = (*BorrowerRepo)(nil)
	_ repository.LoadLogRepository  = (*LoadLogRepo)(nil)
)

// BorrowerRepo prestatarios sobre PostgreSQL.
type BorrowerRepo struct {
	pool *pgxpool.Pool
}

// NewBorrowerRepository construye el repositorio.
func NewBorrowerRepository(pool *pgxpool.Pool) *BorrowerRepo {
	return &BorrowerRepo{pool: pool}
}

const borrowerColumns = `id, ci, nombre, apellido, direccion, email, telefono, fecha_nacimiento,
	estado_cliente, fecha_registro, registrado_por, foto_base64`

// Create persiste un prestatario y le asigna id. La cédula es única.
func (r *BorrowerRepo) Create(b *entity.Borrower) error {
	query := `
		INSERT INTO prestatarios (ci, nombre, apellido, direccion, email, telefono, fecha_nacimiento,
			estado_cliente, fecha_registro, registrado_por, foto_base64)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		b.CI, b.FirstName, b.LastName, b.Address, b.Email, b.Phone, b.BirthDate,
		b.ClientStatus, b.RegisteredAt, b.RegisteredBy, b.PhotoBase64,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert borrower: ci %q duplicada", b.CI)
		}
		return fmt.Errorf("insert borrower: %w", err)
	}
	return nil
}

// GetByID obtiene un prestatario por id.
func (r *BorrowerRepo) GetByID(id int64) (*entity.Borrower, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+borrowerColumns+` FROM prestatarios WHERE id = $1`, id)
	b, err := scanBorrower(row)
	return noRows(b, err, "get borrower by id")
}

// GetByCI obtiene un prestatario por cédula.
func (r *BorrowerRepo) GetByCI(ci string) (*entity.Borrower, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+borrowerColumns+` FROM prestatarios WHERE ci = $1`, ci)
	b, err := scanBorrower(row)
	return noRows(b, err, "get borrower by ci")
}

// List todos los prestatarios en orden de alta.
func (r *BorrowerRepo) List() ([]*entity.Borrower, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT `+borrowerColumns+` FROM prestatarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list borrowers: %w", err)
	}
	return collect(rows, scanBorrower)
}

// Update reemplaza el registro.
func (r *BorrowerRepo) Update(b *entity.Borrower) error {
	query := `
		UPDATE prestatarios SET ci = $2, nombre = $3, apellido = $4, direccion = $5, email = $6, telefono = $7,
			fecha_nacimiento = $8, estado_cliente = $9, fecha_registro = $10, registrado_por = $11, foto_base64 = $12
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		b.ID, b.CI, b.FirstName, b.LastName, b.Address, b.Email, b.Phone,
		b.BirthDate, b.ClientStatus, b.RegisteredAt, b.RegisteredBy, b.PhotoBase64,
	)
	if err != nil {
		return fmt.Errorf("update borrower: %w", err)
	}
	return mustAffect(tag, "update borrower", b.ID)
}

// Delete elimina el registro.
func (r *BorrowerRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM prestatarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete borrower: %w", err)
	}
	return mustAffect(tag, "delete borrower", id)
}

func scanBorrower(row pgx.Row) (*entity.Borrower, error) {
	var b entity.Borrower
	err := row.Scan(&b.ID, &b.CI, &b.FirstName, &b.LastName, &b.Address, &b.Email, &b.Phone, &b.BirthDate,
		&b.ClientStatus, &b.RegisteredAt, &b.RegisteredBy, &b.PhotoBase64)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadLogRepo historial de cargas masivas; el detalle de rechazos va en una columna JSONB.
type LoadLogRepo struct {
	pool *pgxpool.Pool
}

// NewLoadLogRepository construye el repositorio.
func NewLoadLogRepository(pool *pgxpool.Pool) *LoadLogRepo {
	return &LoadLogRepo{pool: pool}
}

// Create persiste el log y le asigna id.
func (r *LoadLogRepo) Create(log *entity.LoadLog) error {
	details := log.Details
	if details == nil {
		details = []entity.BulkLoadDetail{}
	}
	query := `
		INSERT INTO logs_carga (nombre_archivo, fecha_carga, usuario, validos, rechazados, detalles)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		log.FileName, log.LoadedAt, log.User, log.Valid, log.Rejected, details,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("insert load log: %w", err)
	}
	return nil
}

// List logs del más reciente al más antiguo.
func (r *LoadLogRepo) List() ([]*entity.LoadLog, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, nombre_archivo, fecha_carga, usuario, validos, rechazados, detalles
		FROM logs_carga ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list load logs: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.LoadLog, error) {
		var l entity.LoadLog
		if err := row.Scan(&l.ID, &l.FileName, &l.LoadedAt, &l.User, &l.Valid, &l.Rejected, &l.Details); err != nil {
			return nil, fmt.Errorf("scan load log: %w", err)
		}
		return &l, nil
	})
}
