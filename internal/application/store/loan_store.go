package store

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

type loanScope int

const (
	scopeAll loanScope = iota
	scopeMine
	scopeBorrower
)

// LoanStore caché de préstamos. La última lectura (todos, propios o por prestatario)
// define qué se relee después de una escritura.
type LoanStore struct {
	state
	api          ports.LoanAPI
	items        []entity.Loan
	installments []entity.InstallmentSummary
	borrower     *entity.BorrowerRef
	current      *entity.Loan
	scope        loanScope
	scopeCI      string
}

var _ ports.Resetter = (*LoanStore)(nil)

// NewLoanStore construye el store vacío.
func NewLoanStore(api ports.LoanAPI, log *logger.Logger) *LoanStore {
	return &LoanStore{state: newState(log, "store.prestamos"), api: api}
}

// Items copia de la caché.
func (s *LoanStore) Items() []entity.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Installments cuotas resumidas de la última lectura por prestatario o propia.
func (s *LoanStore) Installments() []entity.InstallmentSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.installments)
}

// Borrower prestatario de la última lectura por cédula.
func (s *LoanStore) Borrower() *entity.BorrowerRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.borrower == nil {
		return nil
	}
	cp := *s.borrower
	return &cp
}

// Current último préstamo leído con Get.
func (s *LoanStore) Current() *entity.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// FetchAll listado completo (empleados).
func (s *LoanStore) FetchAll(ctx context.Context) error {
	s.setScope(scopeAll, "")
	return s.run(ctx)
}

// FetchMine préstamos del prestatario autenticado, sin los CANCELADO.
func (s *LoanStore) FetchMine(ctx context.Context) error {
	s.setScope(scopeMine, "")
	return s.run(ctx)
}

// FetchByBorrower préstamos y cuotas resumidas de un prestatario por cédula.
func (s *LoanStore) FetchByBorrower(ctx context.Context, ci string) error {
	s.setScope(scopeBorrower, ci)
	return s.run(ctx)
}

func (s *LoanStore) setScope(scope loanScope, ci string) {
	s.mu.Lock()
	s.scope, s.scopeCI = scope, ci
	s.mu.Unlock()
}

func (s *LoanStore) run(ctx context.Context) error {
	s.begin()
	err := s.load(ctx)
	s.finish(err)
	return err
}

func (s *LoanStore) load(ctx context.Context) error {
	s.mu.RLock()
	scope, ci := s.scope, s.scopeCI
	s.mu.RUnlock()

	switch scope {
	case scopeMine:
		res, err := s.api.Mine(ctx)
		if err != nil {
			return err
		}
		loans := make([]entity.Loan, 0, len(res.Loans))
		for _, l := range res.Loans {
			if l.Status != entity.LoanCanceled {
				loans = append(loans, l)
			}
		}
		s.replace(loans, res.Installments, nil)
	case scopeBorrower:
		res, err := s.api.ByBorrower(ctx, ci)
		if err != nil {
			return err
		}
		s.replace(res.Loans, res.Installments, res.Borrower)
	default:
		loans, err := s.api.List(ctx)
		if err != nil {
			return err
		}
		s.replace(loans, nil, nil)
	}
	return nil
}

func (s *LoanStore) replace(loans []entity.Loan, inst []entity.InstallmentSummary, b *entity.BorrowerRef) {
	s.mu.Lock()
	s.items, s.installments, s.borrower = loans, inst, b
	s.mu.Unlock()
	s.log.Debug().Int("cantidad", len(loans)).Msg("préstamos cargados")
}

// Get lee un préstamo por id y lo deja como actual.
func (s *LoanStore) Get(ctx context.Context, id int64) (*entity.Loan, error) {
	s.begin()
	loan, err := s.api.Get(ctx, id)
	if err == nil {
		s.mu.Lock()
		s.current = loan
		s.mu.Unlock()
	}
	s.finish(err)
	if err != nil {
		return nil, err
	}
	return s.Current(), nil
}

// Create crea el préstamo, relee y devuelve el registro con el id generado (nil si no aparece).
func (s *LoanStore) Create(ctx context.Context, in dto.CreateLoanRequest) (*entity.Loan, error) {
	s.begin()
	id, err := s.api.Create(ctx, in)
	if err != nil {
		s.finish(err)
		return nil, err
	}
	s.finish(s.load(ctx))
	return s.find(id), nil
}

func (s *LoanStore) find(id int64) *entity.Loan {
	if id == 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.items {
		if l.ID == id {
			cp := l
			return &cp
		}
	}
	return nil
}

// Update modifica y relee.
func (s *LoanStore) Update(ctx context.Context, id int64, in dto.UpdateLoanRequest) error {
	s.begin()
	if _, err := s.api.Update(ctx, id, in); err != nil {
		s.finish(err)
		return err
	}
	s.finish(s.load(ctx))
	return nil
}

// Remove cancela el préstamo (pasa a CANCELADO, el registro se conserva) y relee.
func (s *LoanStore) Remove(ctx context.Context, id int64) error {
	s.begin()
	if err := s.api.Cancel(ctx, id); err != nil {
		s.finish(err)
		return err
	}
	s.finish(s.load(ctx))
	return nil
}

// Reset descarta todo el estado en memoria.
func (s *LoanStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items, s.installments, s.borrower, s.current = nil, nil, nil, nil
	s.scope, s.scopeCI = scopeAll, ""
	s.resetState()
}
