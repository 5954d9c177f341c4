package preferences

import (
	"sync"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// ThemeKey clave persistida de la preferencia de tema.
const ThemeKey = "banco_theme"

// Theme modo de presentación.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Store preferencia de tema persistida como string plano.
type Store struct {
	mu    sync.Mutex
	kv    ports.KeyValueStore
	log   *logger.Logger
	theme Theme
}

// NewStore lee el valor persistido; cualquier cosa distinta de "dark" es light.
func NewStore(kv ports.KeyValueStore, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{kv: kv, log: log.Named("preferences"), theme: Light}
	if v, ok, err := kv.Get(ThemeKey); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo leer el tema")
	} else if ok && Theme(v) == Dark {
		s.theme = Dark
	}
	return s
}

// Theme tema actual.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Toggle alterna light/dark y persiste el nuevo valor.
func (s *Store) Toggle() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := Dark
	if s.theme == Dark {
		next = Light
	}
	if err := s.kv.Set(ThemeKey, string(next)); err != nil {
		return s.theme, err
	}
	s.theme = next
	return next, nil
}
