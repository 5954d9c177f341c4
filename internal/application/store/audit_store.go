package store

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// AuditStore última página de registros de auditoría y el filtro que la produjo.
type AuditStore struct {
	state
	api   ports.AuditAPI
	query dto.AuditQuery
	items []entity.AuditLog
}

var _ ports.Resetter = (*AuditStore)(nil)

// NewAuditStore construye el store vacío.
func NewAuditStore(api ports.AuditAPI, log *logger.Logger) *AuditStore {
	return &AuditStore{state: newState(log, "store.auditoria"), api: api}
}

// Items copia de la última página.
func (s *AuditStore) Items() []entity.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Query filtro vigente.
func (s *AuditStore) Query() dto.AuditQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Fetch lee con el filtro indicado y lo recuerda para las relecturas.
func (s *AuditStore) Fetch(ctx context.Context, q dto.AuditQuery) error {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
	s.begin()
	err := s.load(ctx)
	s.finish(err)
	return err
}

func (s *AuditStore) load(ctx context.Context) error {
	q := s.Query()
	items, err := s.api.Logs(ctx, q)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug().Int("cantidad", len(items)).Str("usuario", q.User).Msg("auditoría cargada")
	return nil
}

// Register abre un registro y relee con el filtro vigente.
func (s *AuditStore) Register(ctx context.Context, in dto.RegisterAuditRequest) (int64, error) {
	s.begin()
	id, err := s.api.Register(ctx, in)
	if err != nil {
		s.finish(err)
		return 0, err
	}
	s.finish(s.load(ctx))
	return id, nil
}

// Finish cierra la sesión auditada y relee.
func (s *AuditStore) Finish(ctx context.Context, id int64) error {
	s.begin()
	if err := s.api.Finish(ctx, id); err != nil {
		s.finish(err)
		return err
	}
	s.finish(s.load(ctx))
	return nil
}

// Reset descarta todo el estado en memoria.
func (s *AuditStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.query = dto.AuditQuery{}
	s.resetState()
}
