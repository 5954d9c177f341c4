package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// NoticeStore avisos pendientes e historial. Para un PRESTATARIO se descartan los ajenos
// aunque el servicio los devuelva.
type NoticeStore struct {
	state
	api     ports.NoticeAPI
	viewer  ports.IdentitySource
	pending []entity.Notice
	history []entity.Notice
}

var _ ports.Resetter = (*NoticeStore)(nil)

// NewNoticeStore construye el store vacío. viewer nil = sin filtro por prestatario.
func NewNoticeStore(api ports.NoticeAPI, viewer ports.IdentitySource, log *logger.Logger) *NoticeStore {
	return &NoticeStore{state: newState(log, "store.avisos"), api: api, viewer: viewer}
}

// Pending copia de los avisos sin enviar.
func (s *NoticeStore) Pending() []entity.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.pending)
}

// History copia del historial.
func (s *NoticeStore) History() []entity.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.history)
}

// FetchAll lee pendientes e historial en paralelo; reemplaza ambos solo si las dos lecturas terminan bien.
func (s *NoticeStore) FetchAll(ctx context.Context) error {
	s.begin()
	err := s.load(ctx)
	s.finish(err)
	return err
}

func (s *NoticeStore) load(ctx context.Context) error {
	var pending, history []entity.Notice
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = s.api.Pending(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.api.History(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	pending, history = s.own(pending), s.own(history)
	s.mu.Lock()
	s.pending, s.history = pending, history
	s.mu.Unlock()
	s.log.Debug().Int("pendientes", len(pending)).Int("historial", len(history)).Msg("avisos cargados")
	return nil
}

func (s *NoticeStore) own(items []entity.Notice) []entity.Notice {
	if s.viewer == nil {
		return items
	}
	id := s.viewer.Identity()
	if id == nil || id.Role != entity.RoleBorrower {
		return items
	}
	out := make([]entity.Notice, 0, len(items))
	for _, n := range items {
		if id.BorrowerID != nil && n.BorrowerID != nil && *n.BorrowerID == *id.BorrowerID {
			out = append(out, n)
		}
	}
	return out
}

// Send despacha los pendientes del tipo y relee.
func (s *NoticeStore) Send(ctx context.Context, kind entity.NoticeKind) (int, error) {
	return s.batch(ctx, func() (int, error) { return s.api.Send(ctx, kind) })
}

// Generate crea los avisos del tipo que falten y relee.
func (s *NoticeStore) Generate(ctx context.Context, kind entity.NoticeKind) (int, error) {
	return s.batch(ctx, func() (int, error) { return s.api.Generate(ctx, kind) })
}

func (s *NoticeStore) batch(ctx context.Context, run func() (int, error)) (int, error) {
	s.begin()
	n, err := run()
	if err != nil {
		s.finish(err)
		return 0, err
	}
	s.finish(s.load(ctx))
	return n, nil
}

// Reset descarta todo el estado en memoria.
func (s *NoticeStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending, s.history = nil, nil
	s.resetState()
}
