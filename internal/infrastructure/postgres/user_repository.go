package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, password_hash, rol, id_prestatario, id_empleado, activo, creado_en`

// Create persiste un nuevo usuario; el username es único.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuarios (username, password_hash, rol, id_prestatario, id_empleado, activo, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		user.Username, user.PasswordHash, user.Role, user.BorrowerID, user.EmployeeID, user.Active, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user: username %q duplicado", user.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
	u, err := scanUser(row)
	return noRows(u, err, "get user by id")
}

// GetByUsername obtiene un usuario por nombre de usuario.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(), `SELECT `+userColumns+` FROM usuarios WHERE username = $1`, username)
	u, err := scanUser(row)
	return noRows(u, err, "get user by username")
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.BorrowerID, &u.EmployeeID, &u.Active, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
