package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// Destinos de las redirecciones globales.
const (
	PathLogin        = "/login"
	PathAccessDenied = "/acceso-denegado"
)

// Failure falla de una llamada remota tal como la ve el cliente HTTP.
type Failure struct {
	Method      string
	Path        string
	Status      int    // 0 = sin respuesta (timeout, red)
	BodyMessage string // campo "message" del cuerpo
	BodyError   string // campo "error" del cuerpo
	BodyDetail  string // campo "detail" del cuerpo
	Err         error  // error de transporte
}

// RawMessage mensaje crudo: message, luego error, luego el texto de transporte, luego un default.
func (f Failure) RawMessage() string {
	if s := strings.TrimSpace(f.BodyMessage); s != "" {
		return f.BodyMessage
	}
	if s := strings.TrimSpace(f.BodyError); s != "" {
		return f.BodyError
	}
	if f.Err != nil && f.Err.Error() != "" {
		return f.Err.Error()
	}
	return MsgDefaultRaw
}

// Gateway único punto donde las fallas remotas se convierten en texto para el usuario.
type Gateway struct {
	notifier ports.Notifier
	session  ports.SessionTerminator
	nav      ports.Navigator
	log      *logger.Logger
	metrics  *Metrics
}

// New construye el gateway.
func New(notifier ports.Notifier, session ports.SessionTerminator, nav ports.Navigator, log *logger.Logger, metrics *Metrics) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{notifier: notifier, session: session, nav: nav, log: log.Named("gateway"), metrics: metrics}
}

// Handle traduce la falla, la registra, la publica como notificación de error y aplica la
// política de status (401 cierra sesión y redirige a login; 403 redirige sin cerrar sesión).
// Devuelve el error que recibe quien hizo la llamada.
func (g *Gateway) Handle(ctx context.Context, f Failure) *APIError {
	raw := f.RawMessage()
	category := Classify(f.Status, raw)

	msg := Translate(raw)
	if category == CategoryTransport {
		msg = MsgEmpty
	}

	ev := g.log.Error().
		Str("metodo", f.Method).
		Str("ruta", f.Path).
		Int("status", f.Status).
		Str("categoria", string(category)).
		Str("raw", raw)
	if f.BodyDetail != "" {
		ev = ev.Str("detail", f.BodyDetail)
	}
	if f.Err != nil {
		ev = ev.Err(f.Err)
	}
	ev.Msg("error en llamada a la API")

	g.metrics.observe(category)
	if g.notifier != nil {
		g.notifier.Enqueue(msg, entity.SeverityError)
	}

	switch f.Status {
	case http.StatusUnauthorized:
		if g.session != nil {
			g.session.Logout()
		}
		if g.nav != nil {
			g.nav.Redirect(PathLogin, true)
		}
	case http.StatusForbidden:
		if g.nav != nil {
			g.nav.Redirect(PathAccessDenied, false)
		}
	}

	return &APIError{Status: f.Status, Category: category, Message: msg, Raw: raw, Detail: f.BodyDetail}
}
