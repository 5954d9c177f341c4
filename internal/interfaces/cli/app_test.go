package cli_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/application/gateway"
	"github.com/jhoicas/banco-cliente/internal/application/navigation"
	"github.com/jhoicas/banco-cliente/internal/application/notification"
	"github.com/jhoicas/banco-cliente/internal/application/preferences"
	"github.com/jhoicas/banco-cliente/internal/application/session"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/remote"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/storage"
	"github.com/jhoicas/banco-cliente/internal/interfaces/cli"
	"github.com/jhoicas/banco-cliente/internal/sandbox"
	"github.com/jhoicas/banco-cliente/pkg/config"
)

type fiberTransport struct{ app *fiber.App }

func (t fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}

type harness struct {
	app    *cli.App
	out    *bytes.Buffer
	router *navigation.Router
	deps   cli.Deps
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv, err := sandbox.New(sandbox.Options{
		Name:           "sandbox-cli",
		JWT:            auth.JWTConfig{Secret: "cli-secret", Issuer: "banco-cli", ExpMinutes: 60},
		MaxActiveLoans: 2,
		BcryptCost:     bcrypt.MinCost,
		Clock:          func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	kv := storage.NewMemory()
	sess := session.NewStore(kv, nil)
	queue := notification.NewQueue()
	router := navigation.NewRouter("/", nil)
	reg := prometheus.NewRegistry()
	gw := gateway.New(queue, sess, router, nil, gateway.NewMetrics(reg))
	client := remote.NewClient(config.APIConfig{BaseURL: "http://sandbox", TimeoutMS: 5000}, sess, gw, nil,
		remote.WithHTTPClient(&http.Client{Transport: fiberTransport{app: srv.App}}))
	authAPI := remote.NewAuthAPI(client)
	sess.SetAuthenticator(authAPI)

	deps := cli.Deps{
		Session:      sess,
		Router:       router,
		Queue:        queue,
		Theme:        preferences.NewStore(kv, nil),
		Borrowers:    store.NewBorrowerStore(remote.NewBorrowerAPI(client), nil),
		Loans:        store.NewLoanStore(remote.NewLoanAPI(client), nil),
		Installments: store.NewInstallmentStore(remote.NewInstallmentAPI(client), nil),
		Requests:     store.NewLoanRequestStore(remote.NewLoanRequestAPI(client), nil),
		Refis:        store.NewRefinancingStore(remote.NewRefinancingAPI(client), nil),
		Reports:      store.NewReportStore(remote.NewReportAPI(client), nil),
		Employees:    store.NewEmployeeStore(remote.NewEmployeeAPI(client), nil),
		Audits:       store.NewAuditStore(remote.NewAuditAPI(client), nil),
		Notices:      store.NewNoticeStore(remote.NewNoticeAPI(client), sess, nil),
		Registration: authAPI,
		Metrics:      reg,

		RegistrationSecret: "BasesDeDatos2",
	}
	router.Register(deps.Borrowers, deps.Loans, deps.Installments, deps.Requests, deps.Refis, deps.Reports,
		deps.Employees, deps.Audits, deps.Notices)

	out := &bytes.Buffer{}
	return &harness{app: cli.New(deps, out), out: out, router: router, deps: deps}
}

// exec ejecuta una línea y devuelve solo lo que imprimió.
func (h *harness) exec(t *testing.T, line string) string {
	t.Helper()
	h.out.Reset()
	quit := h.app.Execute(context.Background(), line)
	require.False(t, quit)
	return h.out.String()
}

func TestComandoProtegidoSinSesion(t *testing.T) {
	h := newHarness(t)

	out := h.exec(t, "prestamos")

	assert.Contains(t, out, "Sesión requerida")
	assert.Equal(t, "/login", h.router.Location())
}

func TestLoginYListadoDePrestatarios(t *testing.T) {
	h := newHarness(t)

	out := h.exec(t, "login empleado empleado123")
	assert.Contains(t, out, "Bienvenido, empleado (EMPLEADO).")
	assert.Equal(t, "/prestatarios", h.router.Location())

	out = h.exec(t, "prestatarios")
	assert.Contains(t, out, "4567891")
	assert.Contains(t, out, "Ana Pérez")
	assert.Contains(t, out, "Luis Gómez")
}

func TestLoginFallidoMuestraNotificacion(t *testing.T) {
	h := newHarness(t)

	out := h.exec(t, "login empleado mala")

	assert.Contains(t, out, "[error] "+auth.MsgBadCredentials)
	assert.NotContains(t, out, "Sesión requerida")
}

func TestPrestatarioSinAccesoAReportes(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "login ana ana123")

	out := h.exec(t, "reporte morosos")

	assert.Contains(t, out, "Acceso denegado")
	assert.Equal(t, "/acceso-denegado", h.router.Location())
}

func TestSolicitudValidadaYAprobada(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "login ana ana123")

	out := h.exec(t, "solicitar abc 3")
	assert.Contains(t, out, "[error] El monto debe ser un número positivo.")

	out = h.exec(t, "solicitar 1000 3")
	assert.Contains(t, out, "[ok] Solicitud creada y enviada para aprobación.")
	assert.Contains(t, out, "PENDIENTE")

	h.exec(t, "logout")
	h.exec(t, "login empleado empleado123")

	out = h.exec(t, "bandeja")
	assert.Contains(t, out, "1000.00")

	out = h.exec(t, "aprobar 1")
	assert.Contains(t, out, "[ok] Solicitud de préstamo aprobada. Se generó el préstamo #1 y sus cuotas asociadas.")

	out = h.exec(t, "cuotas 1")
	assert.Contains(t, out, "2025-02-15")
	assert.Equal(t, 3, strings.Count(out, "PENDIENTE"))
}

func TestTopeDePrestamosTraducido(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "login empleado empleado123")

	for i := 0; i < 2; i++ {
		out := h.exec(t, "prestamo-crear 1 1000 3")
		require.Contains(t, out, "[ok] Préstamo creado correctamente.")
	}
	out := h.exec(t, "prestamo-crear 1 1000 3")

	assert.Contains(t, out, "[error] "+gateway.MsgActiveLoanCap)
	assert.NotContains(t, out, "ORA-20001")
}

func TestEntradaInvalida(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.exec(t, "comando-x"), "Comando desconocido")
	assert.Contains(t, h.exec(t, "login solo-usuario"), "Uso: login <usuario> <clave>")

	h.exec(t, "login empleado empleado123")
	assert.Contains(t, h.exec(t, "prestamo abc"), "Uso: prestamo <id>")
}

func TestTemaPersistido(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "login luis luis123")

	assert.Contains(t, h.exec(t, "tema"), "Tema: dark")
	assert.Contains(t, h.exec(t, "tema"), "Tema: light")
}

func TestRun_TerminaConSalir(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run(context.Background(), strings.NewReader("ayuda\nsalir\nprestamos\n"))

	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "COMANDO")
	assert.NotContains(t, h.out.String(), "Sesión requerida", "nada se ejecuta después de salir")
}

func TestAutorregistroYLogin(t *testing.T) {
	h := newHarness(t)

	out := h.exec(t, "registro-prestatario otra nuevo clave clave 9990001 Eva Rojas")
	assert.Contains(t, out, "[error] Palabra secreta incorrecta")

	out = h.exec(t, "registro-prestatario BasesDeDatos2 nuevo clave otra 9990001 Eva Rojas")
	assert.Contains(t, out, "[error] Las contraseñas no coinciden.")

	out = h.exec(t, "registro-prestatario BasesDeDatos2 nuevo clave clave 9990001 Eva Rojas")
	assert.Contains(t, out, "[ok] Prestatario y usuario registrados correctamente.")
	assert.Contains(t, out, "Usuario nuevo creado con rol PRESTATARIO")

	out = h.exec(t, "registro-empleado BasesDeDatos2 cajero clave clave Raúl Díaz Caja")
	assert.Contains(t, out, "[ok] Empleado y usuario registrados correctamente.")

	out = h.exec(t, "login nuevo clave")
	assert.Contains(t, out, "Bienvenido, nuevo (PRESTATARIO).")
}

func TestEmpleados_AdminABM(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "login empleado empleado123")
	assert.Contains(t, h.exec(t, "empleado-nuevo Raúl Díaz"), "Acceso denegado")

	h.exec(t, "logout")
	h.exec(t, "login admin admin123")
	out := h.exec(t, "empleado-nuevo Raúl Díaz Cajero 3500 30")
	assert.Contains(t, out, "[ok] Empleado registrado correctamente.")

	out = h.exec(t, "empleados")
	assert.Contains(t, out, "Raúl Díaz")
	assert.Contains(t, out, "3500.00")

	assert.Contains(t, h.exec(t, "empleado-editar 1 cargo Jefe de caja"), "[ok] Empleado actualizado.")
	assert.Contains(t, h.exec(t, "empleados"), "Jefe de caja")
	assert.Contains(t, h.exec(t, "empleado-editar 1 color azul"), "Uso: empleado-editar")

	assert.Contains(t, h.exec(t, "empleado-baja 1"), "[ok] Empleado eliminado.")
	assert.Contains(t, h.exec(t, "empleados"), "(sin registros)")
}

func TestAuditoria_RegistrarYFinalizar(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "login empleado empleado123")

	out := h.exec(t, "auditoria-registrar login usuarios inicio de turno")
	assert.Contains(t, out, "Registro de auditoría #1")

	out = h.exec(t, "auditoria empleado")
	assert.Contains(t, out, "LOGIN")
	assert.Contains(t, out, "usuarios")

	out = h.exec(t, "auditoria-finalizar 1")
	assert.Contains(t, out, "[ok] Sesión auditada finalizada.")
	assert.Contains(t, out, "00:00:00")

	assert.Contains(t, h.exec(t, "auditoria-finalizar 1"), "[error] La sesión ya fue finalizada.")
}

func TestNotificaciones_GenerarEnviarYVisibilidad(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "login empleado empleado123")
	require.Contains(t, h.exec(t, "prestamo-crear 1 1000 3"), "[ok] Préstamo creado correctamente.")
	require.Contains(t, h.exec(t, "prestamo-cancelar 1"), "[ok] Préstamo cancelado.")

	assert.Contains(t, h.exec(t, "notificaciones-generar cancelacion"), "Avisos CANCELACION generados: 1")
	assert.Contains(t, h.exec(t, "notificaciones-generar cancelacion"), "Avisos CANCELACION generados: 0")
	assert.Contains(t, h.exec(t, "notificaciones-generar otra"), "Uso: notificaciones-generar")

	h.exec(t, "logout")
	h.exec(t, "login luis luis123")
	assert.NotContains(t, h.exec(t, "notificaciones"), "fue cancelado")
	assert.Contains(t, h.exec(t, "notificaciones-enviar cancelacion"), "Acceso denegado")

	h.exec(t, "logout")
	h.exec(t, "login ana ana123")
	assert.Contains(t, h.exec(t, "notificaciones"), "El préstamo 1 fue cancelado.")

	h.exec(t, "logout")
	h.exec(t, "login empleado empleado123")
	assert.Contains(t, h.exec(t, "notificaciones-enviar cancelacion"), "Avisos CANCELACION enviados: 1")
}

func TestDiagnostico_CuentaFallasDelGateway(t *testing.T) {
	h := newHarness(t)

	h.exec(t, "login empleado mala")
	out := h.exec(t, "diagnostico")

	assert.Contains(t, out, "banco_cliente_gateway_errores_total")
	assert.Contains(t, out, "categoria=")
}

// syncBuffer el visor escribe desde otra goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_VisorRetiraNotificacionesAlVencer(t *testing.T) {
	h := newHarness(t)
	deps := h.deps
	deps.AutoHide = 20 * time.Millisecond
	out := &syncBuffer{}
	app := cli.New(deps, out)

	in, w := io.Pipe()
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background(), in) }()

	_, err := io.WriteString(w, "login empleado mala\n")
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "[error] "+auth.MsgBadCredentials)
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return deps.Queue.Len() == 0 }, time.Second, 5*time.Millisecond)

	_, err = io.WriteString(w, "salir\n")
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.NoError(t, w.Close())
}

func TestDescartar_SinVisorNoHayPendientes(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.exec(t, "descartar"), "No hay notificaciones.")
}
