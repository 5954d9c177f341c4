package store

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// RefinancingStore solicitudes de refinanciación.
type RefinancingStore struct {
	state
	api    ports.RefinancingAPI
	mine   []entity.RefinancingRequest
	items  []entity.RefinancingRequest
	status string
}

var _ ports.Resetter = (*RefinancingStore)(nil)

// NewRefinancingStore construye el store vacío.
func NewRefinancingStore(api ports.RefinancingAPI, log *logger.Logger) *RefinancingStore {
	return &RefinancingStore{state: newState(log, "store.refinanciaciones"), api: api}
}

// Mine copia de las solicitudes propias.
func (s *RefinancingStore) Mine() []entity.RefinancingRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.mine)
}

// Items copia de la bandeja del empleado.
func (s *RefinancingStore) Items() []entity.RefinancingRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// FetchMine solicitudes del prestatario autenticado.
func (s *RefinancingStore) FetchMine(ctx context.Context) error {
	s.begin()
	err := s.loadMine(ctx)
	s.finish(err)
	return err
}

func (s *RefinancingStore) loadMine(ctx context.Context) error {
	items, err := s.api.Mine(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.mine = items
	s.mu.Unlock()
	return nil
}

// FetchAll bandeja filtrada por estado ("" = todas). El estado queda recordado.
func (s *RefinancingStore) FetchAll(ctx context.Context, status string) error {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	s.begin()
	err := s.loadAll(ctx)
	s.finish(err)
	return err
}

func (s *RefinancingStore) loadAll(ctx context.Context) error {
	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()
	items, err := s.api.List(ctx, status)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug().Str("estado", status).Int("cantidad", len(items)).Msg("refinanciaciones cargadas")
	return nil
}

// Create envía la solicitud sobre un préstamo y relee las propias. Devuelve el id generado.
func (s *RefinancingStore) Create(ctx context.Context, loanID int64, newCount int, comment string) (int64, error) {
	in := dto.CreateRefinancingRequest{LoanID: loanID, NewInstallmentCount: newCount, BorrowerComment: comment}
	s.begin()
	id, err := s.api.Create(ctx, in)
	if err != nil {
		s.finish(err)
		return 0, err
	}
	s.finish(s.loadMine(ctx))
	return id, nil
}

// Approve aprueba con comentario del empleado y relee la bandeja.
func (s *RefinancingStore) Approve(ctx context.Context, id int64, comment string) error {
	return s.decide(ctx, func() error { return s.api.Approve(ctx, id, comment) })
}

// Reject rechaza con comentario del empleado y relee la bandeja.
func (s *RefinancingStore) Reject(ctx context.Context, id int64, comment string) error {
	return s.decide(ctx, func() error { return s.api.Reject(ctx, id, comment) })
}

func (s *RefinancingStore) decide(ctx context.Context, call func() error) error {
	s.begin()
	if err := call(); err != nil {
		s.finish(err)
		return err
	}
	s.finish(s.loadAll(ctx))
	return nil
}

// Reset descarta todo el estado en memoria.
func (s *RefinancingStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mine, s.items, s.status = nil, nil, ""
	s.resetState()
}
