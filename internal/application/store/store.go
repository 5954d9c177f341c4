package store

import (
	"sync"

	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// state campos comunes a todos los stores: indicador de carga y último error visible.
// Cada store protege su propia porción de datos con el mismo mutex.
//
// Contrato común:
//   - las lecturas reemplazan la caché completa solo si la llamada tuvo éxito;
//   - toda escritura exitosa vuelve a leer del servicio (nunca se parchea la caché a mano);
//   - una falla deja la caché anterior intacta y guarda el mensaje traducido por el gateway.
//
// No hay cancelación ni deduplicación: si dos lecturas se solapan, gana la última en resolver.
type state struct {
	mu      sync.RWMutex
	loading bool
	errMsg  string
	log     *logger.Logger
}

func newState(log *logger.Logger, name string) state {
	if log == nil {
		log = logger.Nop()
	}
	return state{log: log.Named(name)}
}

func (s *state) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *state) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
	}
	s.mu.Unlock()
	if err != nil {
		s.log.Debug().Err(err).Msg("operación fallida")
	}
}

// Loading indica una operación en curso.
func (s *state) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err último mensaje de error ("" si la última operación terminó bien).
func (s *state) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *state) resetState() {
	s.loading = false
	s.errMsg = ""
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
