package store

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// LoanRequestStore solicitudes de préstamo: las propias del prestatario y la bandeja del empleado.
type LoanRequestStore struct {
	state
	api    ports.LoanRequestAPI
	mine   []entity.LoanRequest
	items  []entity.LoanRequest
	filter dto.LoanApplicationFilter
}

var _ ports.Resetter = (*LoanRequestStore)(nil)

// NewLoanRequestStore construye el store vacío.
func NewLoanRequestStore(api ports.LoanRequestAPI, log *logger.Logger) *LoanRequestStore {
	return &LoanRequestStore{state: newState(log, "store.solicitudes"), api: api}
}

// Mine copia de las solicitudes propias.
func (s *LoanRequestStore) Mine() []entity.LoanRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.mine)
}

// Items copia de la bandeja filtrada.
func (s *LoanRequestStore) Items() []entity.LoanRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Filter último filtro usado.
func (s *LoanRequestStore) Filter() dto.LoanApplicationFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// FetchMine solicitudes del prestatario autenticado.
func (s *LoanRequestStore) FetchMine(ctx context.Context) error {
	s.begin()
	err := s.loadMine(ctx)
	s.finish(err)
	return err
}

func (s *LoanRequestStore) loadMine(ctx context.Context) error {
	items, err := s.api.Mine(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.mine = items
	s.mu.Unlock()
	return nil
}

// FetchAll bandeja con filtro. Con filter nil reutiliza el último recordado.
func (s *LoanRequestStore) FetchAll(ctx context.Context, filter *dto.LoanApplicationFilter) error {
	if filter != nil {
		s.mu.Lock()
		s.filter = *filter
		s.mu.Unlock()
	}
	s.begin()
	err := s.loadAll(ctx)
	s.finish(err)
	return err
}

func (s *LoanRequestStore) loadAll(ctx context.Context) error {
	s.mu.RLock()
	f := s.filter
	s.mu.RUnlock()
	items, err := s.api.List(ctx, f)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug().Str("estado", f.Status).Int("cantidad", len(items)).Msg("solicitudes cargadas")
	return nil
}

// Create envía la solicitud, relee las propias y devuelve la recién creada (nil si no aparece).
func (s *LoanRequestStore) Create(ctx context.Context, in dto.CreateLoanApplicationRequest) (*entity.LoanRequest, error) {
	s.begin()
	id, err := s.api.Create(ctx, in)
	if err != nil {
		s.finish(err)
		return nil, err
	}
	s.finish(s.loadMine(ctx))
	if id == 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.mine {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

// Approve aprueba una solicitud pendiente; el servicio genera el préstamo y sus cuotas.
func (s *LoanRequestStore) Approve(ctx context.Context, id int64) (*entity.LoanRequestDecision, error) {
	return s.decide(ctx, func() (*entity.LoanRequestDecision, error) { return s.api.Approve(ctx, id) })
}

// Reject rechaza una solicitud pendiente con motivo.
func (s *LoanRequestStore) Reject(ctx context.Context, id int64, reason string) (*entity.LoanRequestDecision, error) {
	return s.decide(ctx, func() (*entity.LoanRequestDecision, error) { return s.api.Reject(ctx, id, reason) })
}

func (s *LoanRequestStore) decide(ctx context.Context, call func() (*entity.LoanRequestDecision, error)) (*entity.LoanRequestDecision, error) {
	s.begin()
	d, err := call()
	if err != nil {
		s.finish(err)
		return nil, err
	}
	s.log.Info().Int64("id_solicitud", d.RequestID).Str("estado", string(d.Status)).Msg("solicitud decidida")
	s.finish(s.loadAll(ctx))
	return d, nil
}

// Reset descarta todo el estado en memoria.
func (s *LoanRequestStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mine, s.items = nil, nil
	s.filter = dto.LoanApplicationFilter{}
	s.resetState()
}
