package navigation

import (
	"sync"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// Router ubicación actual del cliente y destino de las redirecciones globales.
// Una redirección dura descarta el estado en memoria de los componentes registrados.
type Router struct {
	mu        sync.Mutex
	location  string
	pending   string
	resetters []ports.Resetter
	log       *logger.Logger
}

var _ ports.Navigator = (*Router)(nil)

// NewRouter construye el router en la ubicación inicial.
func NewRouter(initial string, log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	return &Router{location: initial, log: log.Named("navigation")}
}

// Register agrega componentes a descartar en una redirección dura.
func (r *Router) Register(rs ...ports.Resetter) {
	r.mu.Lock()
	r.resetters = append(r.resetters, rs...)
	r.mu.Unlock()
}

// Navigate cambio de ubicación iniciado por el usuario.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	r.location = path
	r.mu.Unlock()
}

// Redirect cambio de ubicación forzado (gateway).
func (r *Router) Redirect(path string, hard bool) {
	r.mu.Lock()
	r.location = path
	r.pending = path
	resetters := append([]ports.Resetter(nil), r.resetters...)
	r.mu.Unlock()

	r.log.Info().Str("destino", path).Bool("dura", hard).Msg("redirección")
	if !hard {
		return
	}
	for _, rs := range resetters {
		rs.Reset()
	}
}

// Location ubicación actual.
func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// TakeRedirect devuelve y limpia la última redirección forzada pendiente.
func (r *Router) TakeRedirect() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.pending
	r.pending = ""
	return p, p != ""
}
