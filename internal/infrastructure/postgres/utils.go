package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// mustAffect convierte "0 filas afectadas" en error, como hacen los repositorios en memoria.
func mustAffect(tag pgconn.CommandTag, op string, id int64) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: no existe", op, id)
	}
	return nil
}

// collect recorre rows con scan y devuelve los punteros construidos.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var out []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// noRows traduce pgx.ErrNoRows a (nil, nil), la convención de búsqueda de los repositorios.
func noRows[T any](v *T, err error, op string) (*T, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}
