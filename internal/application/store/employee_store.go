package store

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// EmployeeStore caché de empleados (solo administradores).
type EmployeeStore struct {
	state
	api   ports.EmployeeAPI
	items []entity.Employee
}

var _ ports.Resetter = (*EmployeeStore)(nil)

// NewEmployeeStore construye el store vacío.
func NewEmployeeStore(api ports.EmployeeAPI, log *logger.Logger) *EmployeeStore {
	return &EmployeeStore{state: newState(log, "store.empleados"), api: api}
}

// Items copia de la caché.
func (s *EmployeeStore) Items() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// FetchAll reemplaza la caché con el listado completo.
func (s *EmployeeStore) FetchAll(ctx context.Context) error {
	s.begin()
	err := s.load(ctx)
	s.finish(err)
	return err
}

func (s *EmployeeStore) load(ctx context.Context) error {
	items, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug().Int("cantidad", len(items)).Msg("empleados cargados")
	return nil
}

// Create registra y relee.
func (s *EmployeeStore) Create(ctx context.Context, in dto.CreateEmployeeRequest) error {
	return s.write(ctx, func() error { return s.api.Create(ctx, in) })
}

// Update modifica y relee.
func (s *EmployeeStore) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) error {
	return s.write(ctx, func() error { return s.api.Update(ctx, id, in) })
}

// Remove elimina y relee.
func (s *EmployeeStore) Remove(ctx context.Context, id int64) error {
	return s.write(ctx, func() error { return s.api.Delete(ctx, id) })
}

// write ejecuta la mutación y, si tuvo éxito, relee el listado.
// Un error de la relectura queda en Err() pero la escritura se considera exitosa.
func (s *EmployeeStore) write(ctx context.Context, mutate func() error) error {
	s.begin()
	if err := mutate(); err != nil {
		s.finish(err)
		return err
	}
	s.finish(s.load(ctx))
	return nil
}

// Reset descarta todo el estado en memoria.
func (s *EmployeeStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.resetState()
}
