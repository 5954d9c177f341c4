// Package cli cliente de terminal: cada comando es una ruta protegida por las guardas de navegación.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/banco-cliente/internal/application/gateway"
	"github.com/jhoicas/banco-cliente/internal/application/guard"
	"github.com/jhoicas/banco-cliente/internal/application/lifecycle"
	"github.com/jhoicas/banco-cliente/internal/application/navigation"
	"github.com/jhoicas/banco-cliente/internal/application/notification"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/application/preferences"
	"github.com/jhoicas/banco-cliente/internal/application/session"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// Deps componentes compartidos del cliente.
type Deps struct {
	Session      *session.Store
	Router       *navigation.Router
	Queue        *notification.Queue
	Theme        *preferences.Store
	Borrowers    *store.BorrowerStore
	Loans        *store.LoanStore
	Installments *store.InstallmentStore
	Requests     *store.LoanRequestStore
	Refis        *store.RefinancingStore
	Reports      *store.ReportStore
	Employees    *store.EmployeeStore
	Audits       *store.AuditStore
	Notices      *store.NoticeStore
	Registration ports.RegistrationAPI
	// RegistrationSecret palabra que habilita el autorregistro.
	RegistrationSecret string
	// AutoHide > 0 presenta las notificaciones de a una en segundo plano y las retira al vencer.
	// Con 0 se vuelcan todas al terminar cada comando.
	AutoHide time.Duration
	// Metrics contadores del gateway para "diagnostico"; nil = no disponibles.
	Metrics prometheus.Gatherer
	// DelinquencyConcurrency consultas de morosidad simultáneas del listado de prestatarios.
	DelinquencyConcurrency int
	Log                    *logger.Logger
}

// App intérprete de comandos.
type App struct {
	Deps
	out          io.Writer
	detail       *lifecycle.LoanDetail
	overview     *lifecycle.BorrowerOverview
	desk         *lifecycle.RequestDesk
	borrowerDesk *lifecycle.BorrowerDesk
	signup       *lifecycle.RegistrationDesk
	commands     map[string]*command
	order        []*command

	outMu      sync.Mutex
	presenting atomic.Bool
}

// errUsage argumentos faltantes o mal formados.
var errUsage = errors.New("uso incorrecto")

// New construye el intérprete y las vistas compuestas sobre los stores.
func New(deps Deps, out io.Writer) *App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.Named("cli")
	a := &App{
		Deps:         deps,
		out:          out,
		detail:       lifecycle.NewLoanDetail(deps.Loans, deps.Installments, deps.Refis, deps.Queue, deps.Log),
		overview:     lifecycle.NewBorrowerOverview(deps.Borrowers, deps.DelinquencyConcurrency, deps.Log),
		desk:         lifecycle.NewRequestDesk(deps.Requests, deps.Refis, deps.Queue),
		borrowerDesk: lifecycle.NewBorrowerDesk(deps.Requests, deps.Refis, deps.Queue),
		signup:       lifecycle.NewRegistrationDesk(deps.Registration, deps.RegistrationSecret, deps.Queue),
		commands:     map[string]*command{},
	}
	a.register()
	return a
}

// Run lee comandos línea a línea hasta "salir", fin de la entrada o cancelación de ctx.
// Con AutoHide > 0 un visor en segundo plano presenta las notificaciones mientras dura la lectura.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	if a.AutoHide > 0 {
		pctx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		a.presenting.Store(true)
		go func() {
			defer close(done)
			_ = a.Queue.Present(pctx, a.AutoHide, a.show)
		}()
		defer func() {
			cancel()
			<-done
			a.presenting.Store(false)
		}()
	}
	a.printf("Banco cliente. Escriba \"ayuda\" para ver los comandos.\n")
	scanner := bufio.NewScanner(in)
	for {
		a.printf("%s", a.prompt())
		if !scanner.Scan() {
			a.printf("\n")
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := a.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

func (a *App) prompt() string {
	who := "anónimo"
	if id := a.Session.Identity(); id != nil {
		who = id.Username
	}
	return fmt.Sprintf("banco[%s %s]> ", who, a.Router.Location())
}

// Execute interpreta una línea. Devuelve true si el usuario pidió salir.
// Sin visor activo, después de cada comando se muestran las notificaciones pendientes, de a una.
func (a *App) Execute(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	if !a.presenting.Load() {
		defer a.drain()
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printf("Comando desconocido: %s. Escriba \"ayuda\".\n", args[0])
		return false
	}
	if cmd.quit {
		return true
	}
	args = args[1:]
	if len(args) < cmd.minArgs {
		a.printf("Uso: %s\n", cmd.usage)
		return false
	}

	if cmd.path != nil {
		path := cmd.path(args)
		if d := guard.Check(a.Session, path); !d.Allowed {
			a.Router.Navigate(d.Redirect)
			a.printRedirect(d.Redirect)
			return false
		}
		a.Router.Navigate(path)
	}

	if err := cmd.run(ctx, args); err != nil {
		a.showError(cmd, err)
	}
	// un login fallido ya deja la sesión en /login
	if to, ok := a.Router.TakeRedirect(); ok && cmd.name != "login" {
		a.printRedirect(to)
	}
	return false
}

// showError muestra errores locales. Los errores remotos ya llegaron como notificación por el gateway
// y las validaciones de las vistas encolan su propio mensaje.
func (a *App) showError(cmd *command, err error) {
	a.Log.Debug().Err(err).Str("comando", cmd.name).Msg("comando fallido")
	switch {
	case errors.Is(err, errUsage):
		a.printf("Uso: %s\n", cmd.usage)
	case errors.Is(err, domain.ErrInvalidInput):
	default:
		if _, remote := gateway.AsAPIError(err); !remote {
			a.printf("Error: %s\n", err)
		}
	}
}

func (a *App) printRedirect(to string) {
	switch to {
	case gateway.PathLogin:
		a.printf("Sesión requerida. Inicie sesión con \"login <usuario> <clave>\".\n")
	case gateway.PathAccessDenied:
		a.printf("Acceso denegado: su rol no permite esta operación.\n")
	default:
		a.printf("Redirigido a %s.\n", to)
	}
}

func (a *App) drain() { a.Queue.Drain(a.show) }

func (a *App) show(n entity.Notification) {
	a.printf("[%s] %s\n", severityLabel(n.Severity), n.Message)
}

func severityLabel(s entity.Severity) string {
	switch s {
	case entity.SeverityError:
		return "error"
	case entity.SeveritySuccess:
		return "ok"
	case entity.SeverityWarning:
		return "aviso"
	default:
		return "info"
	}
}

// printf única salida del intérprete; el visor escribe desde otra goroutine.
func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	_, _ = fmt.Fprintf(a.out, format, args...)
}
