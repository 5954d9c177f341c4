package lifecycle

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// DefaultDelinquencyConcurrency consultas de morosidad simultáneas por defecto.
const DefaultDelinquencyConcurrency = 4

// OverviewRow prestatario con su morosidad estimada (nil si la consulta falló).
type OverviewRow struct {
	Borrower    entity.Borrower
	Delinquency *entity.Delinquency
}

// BorrowerOverview listado de prestatarios con la morosidad consultada al momento de mostrar.
// La morosidad vive en la vista y nunca en el store de prestatarios.
type BorrowerOverview struct {
	borrowers *store.BorrowerStore
	limit     int
	log       *logger.Logger

	mu   sync.RWMutex
	rows []OverviewRow
}

// NewBorrowerOverview limit <= 0 usa DefaultDelinquencyConcurrency.
func NewBorrowerOverview(borrowers *store.BorrowerStore, limit int, log *logger.Logger) *BorrowerOverview {
	if limit <= 0 {
		limit = DefaultDelinquencyConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BorrowerOverview{borrowers: borrowers, limit: limit, log: log.Named("lifecycle.prestatarios")}
}

// Load relee los prestatarios y consulta la morosidad de cada uno.
// Una consulta de morosidad fallida deja esa fila sin juicio; no aborta las demás.
func (o *BorrowerOverview) Load(ctx context.Context) error {
	if err := o.borrowers.FetchAll(ctx); err != nil {
		return err
	}
	items := o.borrowers.Items()
	rows := make([]OverviewRow, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)
	for i, b := range items {
		i, b := i, b
		rows[i].Borrower = b
		g.Go(func() error {
			d, err := o.borrowers.EstimateDelinquency(gctx, b.ID)
			if err != nil {
				o.log.Debug().Err(err).Int64("id_prestatario", b.ID).Msg("morosidad no disponible")
				return nil
			}
			rows[i].Delinquency = d
			return nil
		})
	}
	_ = g.Wait()

	o.mu.Lock()
	o.rows = rows
	o.mu.Unlock()
	return nil
}

// Rows copia de las filas de la última carga.
func (o *BorrowerOverview) Rows() []OverviewRow {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]OverviewRow, len(o.rows))
	copy(out, o.rows)
	return out
}
