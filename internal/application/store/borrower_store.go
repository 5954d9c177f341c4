package store

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// BorrowerStore caché de prestatarios, perfil propio y logs de carga masiva.
type BorrowerStore struct {
	state
	api   ports.BorrowerAPI
	items []entity.Borrower
	me    *entity.Borrower
	logs  []entity.LoadLog
}

var _ ports.Resetter = (*BorrowerStore)(nil)

// NewBorrowerStore construye el store vacío.
func NewBorrowerStore(api ports.BorrowerAPI, log *logger.Logger) *BorrowerStore {
	return &BorrowerStore{state: newState(log, "store.prestatarios"), api: api}
}

// Items copia de la caché.
func (s *BorrowerStore) Items() []entity.Borrower {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Me perfil del prestatario autenticado (nil si no se cargó).
func (s *BorrowerStore) Me() *entity.Borrower {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.me == nil {
		return nil
	}
	cp := *s.me
	return &cp
}

// LoadLogs copia de los logs de carga.
func (s *BorrowerStore) LoadLogs() []entity.LoadLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.logs)
}

// FetchAll reemplaza la caché con el listado completo.
func (s *BorrowerStore) FetchAll(ctx context.Context) error {
	s.begin()
	err := s.load(ctx)
	s.finish(err)
	return err
}

func (s *BorrowerStore) load(ctx context.Context) error {
	items, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug().Int("cantidad", len(items)).Msg("prestatarios cargados")
	return nil
}

// Create registra y devuelve el registro releído con la misma cédula (nil si no aparece).
func (s *BorrowerStore) Create(ctx context.Context, in dto.CreateBorrowerRequest) (*entity.Borrower, error) {
	s.begin()
	if err := s.api.Create(ctx, in); err != nil {
		s.finish(err)
		return nil, err
	}
	err := s.load(ctx)
	s.finish(err)
	if err != nil {
		return nil, nil
	}
	return s.findByCI(in.CI), nil
}

func (s *BorrowerStore) findByCI(ci string) *entity.Borrower {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.items {
		if b.CI == ci {
			cp := b
			return &cp
		}
	}
	return nil
}

// Update modifica y relee.
func (s *BorrowerStore) Update(ctx context.Context, ci string, in dto.UpdateBorrowerRequest) error {
	return s.write(ctx, func() error { return s.api.Update(ctx, ci, in) })
}

// Remove elimina y relee.
func (s *BorrowerStore) Remove(ctx context.Context, ci string) error {
	return s.write(ctx, func() error { return s.api.Delete(ctx, ci) })
}

// write ejecuta la mutación y, si tuvo éxito, relee el listado.
// Un error de la relectura queda en Err() pero la escritura se considera exitosa.
func (s *BorrowerStore) write(ctx context.Context, mutate func() error) error {
	s.begin()
	if err := mutate(); err != nil {
		s.finish(err)
		return err
	}
	s.finish(s.load(ctx))
	return nil
}

// BulkLoad sube el archivo de carga masiva y relee el listado.
func (s *BorrowerStore) BulkLoad(ctx context.Context, filename string, content []byte) (*entity.BulkLoadResult, error) {
	s.begin()
	res, err := s.api.BulkLoad(ctx, filename, content)
	if err != nil {
		s.finish(err)
		return nil, err
	}
	s.log.Info().Str("archivo", filename).Int("aceptados", res.Accepted).Int("rechazados", res.Rejected).Msg("carga masiva")
	s.finish(s.load(ctx))
	return res, nil
}

// FetchLoadLogs reemplaza los logs de carga.
func (s *BorrowerStore) FetchLoadLogs(ctx context.Context) error {
	s.begin()
	logs, err := s.api.LoadLogs(ctx)
	if err == nil {
		s.mu.Lock()
		s.logs = logs
		s.mu.Unlock()
	}
	s.finish(err)
	return err
}

// FetchMe carga el perfil del prestatario autenticado.
func (s *BorrowerStore) FetchMe(ctx context.Context) (*entity.Borrower, error) {
	s.begin()
	me, err := s.api.Me(ctx)
	if err == nil {
		s.mu.Lock()
		s.me = me
		s.mu.Unlock()
	}
	s.finish(err)
	if err != nil {
		return nil, err
	}
	return s.Me(), nil
}

// EstimateDelinquency juicio puntual de morosidad. No se guarda: vale solo para la vista actual.
func (s *BorrowerStore) EstimateDelinquency(ctx context.Context, borrowerID int64) (*entity.Delinquency, error) {
	return s.api.Delinquency(ctx, borrowerID)
}

// Reset descarta todo el estado en memoria.
func (s *BorrowerStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items, s.me, s.logs = nil, nil, nil
	s.resetState()
}
