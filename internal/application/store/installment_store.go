package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

type installmentScope int

const (
	scopeByLoan installmentScope = iota
	scopeOutstanding
	scopePending
	scopeDelinquent
)

// InstallmentStore caché de cuotas. Después de un pago relee el alcance vigente
// para el préstamo de la cuota pagada.
type InstallmentStore struct {
	state
	api    ports.InstallmentAPI
	items  []entity.Installment
	scope  installmentScope
	loanID int64
}

var _ ports.Resetter = (*InstallmentStore)(nil)

// NewInstallmentStore construye el store vacío.
func NewInstallmentStore(api ports.InstallmentAPI, log *logger.Logger) *InstallmentStore {
	return &InstallmentStore{state: newState(log, "store.cuotas"), api: api}
}

// Items copia de la caché.
func (s *InstallmentStore) Items() []entity.Installment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// LoanID préstamo del alcance actual (0 si no hay).
func (s *InstallmentStore) LoanID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loanID
}

// FetchByLoan cronograma completo de un préstamo.
func (s *InstallmentStore) FetchByLoan(ctx context.Context, loanID int64) error {
	return s.run(ctx, scopeByLoan, loanID)
}

// FetchOutstandingByLoan cuotas pendientes y morosas de un préstamo.
func (s *InstallmentStore) FetchOutstandingByLoan(ctx context.Context, loanID int64) error {
	return s.run(ctx, scopeOutstanding, loanID)
}

// FetchPending todas las cuotas pendientes.
func (s *InstallmentStore) FetchPending(ctx context.Context) error {
	return s.run(ctx, scopePending, 0)
}

// FetchDelinquent todas las cuotas morosas.
func (s *InstallmentStore) FetchDelinquent(ctx context.Context) error {
	return s.run(ctx, scopeDelinquent, 0)
}

func (s *InstallmentStore) run(ctx context.Context, scope installmentScope, loanID int64) error {
	s.mu.Lock()
	s.scope, s.loanID = scope, loanID
	s.mu.Unlock()

	s.begin()
	err := s.load(ctx, scope, loanID)
	s.finish(err)
	return err
}

func (s *InstallmentStore) load(ctx context.Context, scope installmentScope, loanID int64) error {
	var (
		items []entity.Installment
		err   error
	)
	switch scope {
	case scopeOutstanding:
		items, err = s.outstanding(ctx, loanID)
	case scopePending:
		items, err = s.api.Pending(ctx)
	case scopeDelinquent:
		items, err = s.api.Delinquent(ctx)
	default:
		items, err = s.api.ByLoan(ctx, loanID)
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug().Int64("id_prestamo", loanID).Int("cantidad", len(items)).Msg("cuotas cargadas")
	return nil
}

// outstanding pide pendientes y morosas en paralelo y filtra por préstamo.
func (s *InstallmentStore) outstanding(ctx context.Context, loanID int64) ([]entity.Installment, error) {
	var pending, delinquent []entity.Installment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = s.api.Pending(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		delinquent, err = s.api.Delinquent(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make([]entity.Installment, 0, len(pending)+len(delinquent))
	for _, list := range [][]entity.Installment{pending, delinquent} {
		for _, c := range list {
			if c.LoanID == loanID {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

// Pay registra el pago. No valida el estado localmente: el servicio decide y, si lo rechaza,
// la caché queda intacta. Con éxito relee el alcance para el préstamo de la cuota pagada.
func (s *InstallmentStore) Pay(ctx context.Context, id int64, in dto.PayInstallmentRequest) (*entity.PaymentResult, error) {
	s.begin()
	res, err := s.api.Pay(ctx, id, in)
	if err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.RLock()
	scope, loanID := s.scope, s.loanID
	for _, c := range s.items {
		if c.ID == id {
			loanID = c.LoanID
			break
		}
	}
	s.mu.RUnlock()
	if res.Installment != nil && res.Installment.LoanID != 0 {
		loanID = res.Installment.LoanID
	}
	if scope == scopeByLoan || scope == scopeOutstanding {
		s.mu.Lock()
		s.loanID = loanID
		s.mu.Unlock()
	}

	s.log.Info().Int64("id_cuota", id).Int64("id_prestamo", loanID).Msg("pago registrado")
	s.finish(s.load(ctx, scope, loanID))
	return res, nil
}

// Reset descarta todo el estado en memoria.
func (s *InstallmentStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items, s.scope, s.loanID = nil, scopeByLoan, 0
	s.resetState()
}
