package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// lockKey clave del advisory lock compartido por todas las instancias del sandbox.
const lockKey int64 = 0x62616e636f // "banco"

// TxRunner serializa los casos de uso que verifican y luego escriben, también entre procesos.
// Los repositorios escriben por el pool: si fn falla, lo ya escrito no se revierte.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run toma el advisory lock dentro de una transacción, ejecuta fn y lo libera al cerrar la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func() error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	if err := fn(); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
