package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/sandbox"
)

func newSandbox(t *testing.T) *sandbox.Server {
	t.Helper()
	srv, err := sandbox.New(sandbox.Options{
		Name:           "sandbox-test",
		JWT:            auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer, ExpMinutes: testExpMin},
		MaxActiveLoans: 2,
		BcryptCost:     bcrypt.MinCost,
		Clock:          func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) },
		Registry:       prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return srv
}

// call envía una petición JSON y devuelve el estado y el cuerpo decodificado.
func call(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	status, body := call(t, app, http.MethodPost, "/api/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, status, body)
	require.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	tok, _ := data["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestLogin_VarianteSuccess(t *testing.T) {
	srv := newSandbox(t)
	login(t, srv.App, "empleado", "empleado123")

	status, body := call(t, srv.App, http.MethodPost, "/api/auth/login", "", `{"username":"empleado","password":"mala"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, auth.MsgBadCredentials, body["message"])
}

func TestRutaProtegida_SinToken401(t *testing.T) {
	srv := newSandbox(t)
	status, body := call(t, srv.App, http.MethodGet, "/api/prestamos", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["ok"])
}

func TestReportes_PrestatarioRecibe403(t *testing.T) {
	srv := newSandbox(t)
	tok := login(t, srv.App, "ana", "ana123")

	status, body := call(t, srv.App, http.MethodGet, "/api/reportes/prestamos", tok, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Acceso denegado.", body["error"])
}

func TestSolicitudes_TopeDePrestamosActivosConCodigoORA(t *testing.T) {
	srv := newSandbox(t)
	tok := login(t, srv.App, "empleado", "empleado123")

	approve := func(n int) (int, map[string]any) {
		status, created := call(t, srv.App, http.MethodPost, "/api/solicitudes", tok,
			`{"monto":1000,"nro_cuotas":`+strconv.Itoa(n)+`,"id_prestatario":1}`)
		require.Equal(t, http.StatusCreated, status, created)
		id := int64(created["result"].(map[string]any)["id_solicitud_prestamo"].(float64))
		return call(t, srv.App, http.MethodPut, "/api/solicitudes/"+strconv.FormatInt(id, 10)+"/aprobar", tok, "{}")
	}

	for i := 1; i <= 2; i++ {
		status, body := approve(3)
		require.Equal(t, http.StatusOK, status, body)
		assert.Equal(t, true, body["ok"])
	}

	status, body := approve(3)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["ok"])
	msg, _ := body["error"].(string)
	assert.True(t, strings.HasPrefix(msg, "ORA-20001: "), msg)
	assert.Contains(t, msg, "2 préstamos activos")

	status, body = call(t, srv.App, http.MethodGet, "/api/solicitudes?estado=PENDIENTE", tok, "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["result"], 1, "la solicitud rechazada por el tope sigue pendiente")
}

func TestPrestamos_IDInvalido400(t *testing.T) {
	srv := newSandbox(t)
	tok := login(t, srv.App, "empleado", "empleado123")

	status, body := call(t, srv.App, http.MethodGet, "/api/prestamos/abc", tok, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Identificador inválido.", body["error"])
}

func TestHealthYMetrics(t *testing.T) {
	srv := newSandbox(t)

	status, body := call(t, srv.App, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), testutil.ToFloat64(srv.Metrics.Requests().WithLabelValues("GET", "/health", "200")))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := srv.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "banco_sandbox_http_peticiones_total")
}

func TestAutorregistro_PrestatarioYEmpleado(t *testing.T) {
	srv := newSandbox(t)
	status, body := call(t, srv.App, http.MethodPost, "/api/auth/register-prestatario", "",
		`{"username":"marta","password":"clave","prestatario":{"ci":"7778889","nombre":"Marta","apellido":"Rojas"}}`)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "Prestatario y usuario registrados correctamente.", body["message"])
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "PRESTATARIO", user["role"])
	login(t, srv.App, "marta", "clave")

	status, body = call(t, srv.App, http.MethodPost, "/api/auth/register-empleado", "",
		`{"username":"eva","password":"clave","empleado":{"nombre":"Eva","apellido":"Paz","cargo":"Créditos"}}`)
	require.Equal(t, http.StatusCreated, status, body)
	employee := body["data"].(map[string]any)["empleado"].(map[string]any)
	assert.Equal(t, "Créditos", employee["cargo"])

	status, body = call(t, srv.App, http.MethodPost, "/api/auth/register-empleado", "",
		`{"username":"eva","password":"x","empleado":{"nombre":"Eva","apellido":"Paz"}}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "El usuario ya existe.", body["message"])
}

func TestEmpleados_SoloAdmin(t *testing.T) {
	srv := newSandbox(t)
	emp := login(t, srv.App, "empleado", "empleado123")
	status, _ := call(t, srv.App, http.MethodGet, "/api/empleados", emp, "")
	assert.Equal(t, http.StatusForbidden, status)

	adm := login(t, srv.App, "admin", "admin123")
	status, body := call(t, srv.App, http.MethodPost, "/api/empleados", adm, `{"nombre":"Eva","apellido":"Paz","salario":3500}`)
	require.Equal(t, http.StatusCreated, status, body)
	id := int64(body["data"].(map[string]any)["id_empleado"].(float64))
	path := "/api/empleados/" + strconv.FormatInt(id, 10)

	status, body = call(t, srv.App, http.MethodPut, path, adm, `{"cargo":"Cajera"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Cajera", body["data"].(map[string]any)["cargo"])

	status, body = call(t, srv.App, http.MethodGet, "/api/empleados", adm, "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, _ = call(t, srv.App, http.MethodDelete, path, adm, "")
	assert.Equal(t, http.StatusOK, status)
	status, body = call(t, srv.App, http.MethodGet, path, adm, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Empleado no encontrado.", body["message"])
}

func TestAuditoria_RegistrarYFinalizar(t *testing.T) {
	srv := newSandbox(t)
	tok := login(t, srv.App, "empleado", "empleado123")

	status, body := call(t, srv.App, http.MethodPost, "/api/auditoria/registrar", tok, `{"usuario":"empleado","operacion":"LOGIN"}`)
	require.Equal(t, http.StatusCreated, status, body)
	id := body["result"].(map[string]any)["id_audit"].(float64)

	status, body = call(t, srv.App, http.MethodGet, "/api/auditoria/logs?usuario=empleado", tok, "")
	require.Equal(t, http.StatusOK, status)
	logs := body["result"].([]any)
	require.Len(t, logs, 1)
	assert.NotEmpty(t, logs[0].(map[string]any)["ip"], "sin ip en el cuerpo se toma la de la petición")

	status, body = call(t, srv.App, http.MethodPost, "/api/auditoria/finalizar", tok, `{"id_audit":`+strconv.Itoa(int(id))+`}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "00:00:00", body["result"].(map[string]any)["duracion_sesion"])

	ana := login(t, srv.App, "ana", "ana123")
	status, _ = call(t, srv.App, http.MethodGet, "/api/auditoria/logs", ana, "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestNotificaciones_GenerarYEnviar(t *testing.T) {
	srv := newSandbox(t)
	tok := login(t, srv.App, "empleado", "empleado123")
	status, body := call(t, srv.App, http.MethodPost, "/api/solicitudes", tok, `{"monto":300,"nro_cuotas":3,"id_prestatario":1}`)
	require.Equal(t, http.StatusCreated, status, body)
	id := int64(body["result"].(map[string]any)["id_solicitud_prestamo"].(float64))
	status, body = call(t, srv.App, http.MethodPut, "/api/solicitudes/"+strconv.FormatInt(id, 10)+"/aprobar", tok, "{}")
	require.Equal(t, http.StatusOK, status, body)
	loanID := int64(body["result"].(map[string]any)["prestamo"].(map[string]any)["id_prestamo"].(float64))
	status, _ = call(t, srv.App, http.MethodDelete, "/api/prestamos/"+strconv.FormatInt(loanID, 10), tok, "")
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, srv.App, http.MethodPost, "/api/notificaciones/notificar-cancelacion", tok, "")
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, float64(1), body["result"].(map[string]any)["cantidad"])

	ana := login(t, srv.App, "ana", "ana123")
	status, body = call(t, srv.App, http.MethodGet, "/api/notificaciones/pendientes", ana, "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["result"], 1)
	status, _ = call(t, srv.App, http.MethodPost, "/api/notificaciones/enviar", ana, `{"tipo":"CANCELACION"}`)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = call(t, srv.App, http.MethodPost, "/api/notificaciones/enviar", tok, `{"tipo":"CANCELACION"}`)
	require.Equal(t, http.StatusOK, status, body)
	status, body = call(t, srv.App, http.MethodGet, "/api/notificaciones/pendientes", ana, "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["result"])
}
