package remote_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/gateway"
	"github.com/jhoicas/banco-cliente/internal/application/navigation"
	"github.com/jhoicas/banco-cliente/internal/application/notification"
	"github.com/jhoicas/banco-cliente/internal/application/session"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/remote"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/storage"
	"github.com/jhoicas/banco-cliente/pkg/config"
	pkgjwt "github.com/jhoicas/banco-cliente/pkg/jwt"
)

type harness struct {
	client *remote.Client
	sess   *session.Store
	queue  *notification.Queue
	router *navigation.Router
}

func newHarness(t *testing.T, handler http.HandlerFunc, timeoutMS int) *harness {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	h := &harness{
		sess:   session.NewStore(storage.NewMemory(), nil),
		queue:  notification.NewQueue(),
		router: navigation.NewRouter("/", nil),
	}
	gw := gateway.New(h.queue, h.sess, h.router, nil, gateway.NewMetrics(nil))
	h.client = remote.NewClient(config.APIConfig{BaseURL: srv.URL, TimeoutMS: timeoutMS}, h.sess, gw, nil)
	h.sess.SetAuthenticator(remote.NewAuthAPI(h.client))
	return h
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate("x", pkgjwt.Subject{ID: 1, Username: "u", Role: role}, "test", 60)
	require.NoError(t, err)
	return tok
}

func TestLogin_SinBearerYGuardaToken(t *testing.T) {
	tok := tokenFor(t, "EMPLEADO")
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, 200, `{"success":true,"data":{"token":"`+tok+`"},"message":null}`)
	}, 1000)

	require.NoError(t, h.sess.Login(context.Background(), "u", "p"))
	assert.Equal(t, tok, h.sess.Token())
	assert.True(t, h.sess.IsEmployee())
}

func TestGet_AdjuntaBearerYMapea(t *testing.T) {
	tok := tokenFor(t, "EMPLEADO")
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			writeJSON(w, 200, `{"success":true,"data":{"token":"`+tok+`"},"message":null}`)
		case "/api/prestamos":
			assert.Equal(t, "Bearer "+tok, r.Header.Get("Authorization"))
			writeJSON(w, 200, `{"ok":true,"result":[{"ID_PRESTAMO":1,"ESTADO":"ACTIVO","TOTAL_PRESTADO":500}]}`)
		}
	}, 1000)
	require.NoError(t, h.sess.Login(context.Background(), "u", "p"))

	loans, err := remote.NewLoanAPI(h.client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "500", loans[0].Principal.String())
	assert.Zero(t, h.queue.Len())
}

func TestOKFalseEn200PasaPorElGateway(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"ok":false,"error":"La solicitud ya fue procesada"}`)
	}, 1000)

	_, err := remote.NewLoanRequestAPI(h.client).Approve(context.Background(), 3)

	require.Error(t, err)
	assert.Equal(t, "La solicitud ya fue procesada", err.Error())
	head, ok := h.queue.Current()
	require.True(t, ok)
	assert.Equal(t, "La solicitud ya fue procesada", head.Message)
}

func TestReglaDeNegocioTraducida(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 400, `{"ok":false,"error":"ORA-20001: El prestatario ya tiene 2 préstamos activos"}`)
	}, 1000)

	_, err := remote.NewLoanRequestAPI(h.client).Approve(context.Background(), 3)

	apiErr, ok := gateway.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, gateway.MsgActiveLoanCap, apiErr.Message)
	assert.Equal(t, gateway.CategoryBusiness, apiErr.Category)
}

func TestStatus401CierraSesion(t *testing.T) {
	tok := tokenFor(t, "PRESTATARIO")
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			writeJSON(w, 200, `{"success":true,"data":{"token":"`+tok+`"},"message":null}`)
			return
		}
		writeJSON(w, 401, `{"ok":false,"error":"Token expirado"}`)
	}, 1000)
	require.NoError(t, h.sess.Login(context.Background(), "u", "p"))
	h.router.Navigate("/prestamos")

	_, err := remote.NewLoanAPI(h.client).Mine(context.Background())

	assert.True(t, gateway.IsUnauthorized(err))
	assert.Empty(t, h.sess.Token())
	assert.Nil(t, h.sess.Identity())
	assert.Equal(t, "/login", h.router.Location())
}

func TestTimeoutEsFallaDeTransporte(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, 200, `{"ok":true,"result":[]}`)
	}, 20)

	_, err := remote.NewLoanAPI(h.client).List(context.Background())

	apiErr, ok := gateway.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, gateway.CategoryTransport, apiErr.Category)
	assert.Equal(t, gateway.MsgEmpty, apiErr.Message)
}

func TestRespuestaNoJSONConError(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(502)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}, 1000)

	_, err := remote.NewBorrowerAPI(h.client).List(context.Background())

	apiErr, ok := gateway.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 502, apiErr.Status)
	assert.Equal(t, "la solicitud falló con código 502", apiErr.Raw)
}

func TestCargaMasivaMultipart(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		f, hdr, err := r.FormFile("archivo")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "clientes.csv", hdr.Filename)
		assert.Contains(t, string(body), "Ana")
		writeJSON(w, 200, `{"ok":true,"result":{"total":2,"aceptados":1,"rechazados":1,"detalles":[{"linea":2,"motivo":"CI duplicada"}],"id_log_pk":8}}`)
	}, 1000)

	res, err := remote.NewBorrowerAPI(h.client).BulkLoad(context.Background(), "clientes.csv", []byte("ci,nombre\n1,Ana\n1,Ana\n"))

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Details, 1)
	assert.Equal(t, "CI duplicada", res.Details[0].Reason)
	assert.Equal(t, int64(8), res.LogID)
}

func TestListSolicitudes_FiltrosEnQuery(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PENDIENTE", r.URL.Query().Get("estado"))
		assert.Equal(t, "4", r.URL.Query().Get("id_prestatario"))
		writeJSON(w, 200, `{"ok":true,"result":[]}`)
	}, 1000)
	id := int64(4)

	_, err := remote.NewLoanRequestAPI(h.client).List(context.Background(), dto.LoanApplicationFilter{Status: "PENDIENTE", BorrowerID: &id})
	require.NoError(t, err)
}

func TestAutorregistroSinBearer(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register-prestatario", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, 201, `{"success":true,"data":{"user":{"username":"marta","role":"PRESTATARIO","id_prestatario":3}},"message":"ok"}`)
	}, 1000)

	reg, err := remote.NewAuthAPI(h.client).RegisterBorrower(context.Background(), dto.RegisterBorrowerRequest{Username: "marta", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "marta", reg.Username)
	require.NotNil(t, reg.BorrowerID)
	assert.Equal(t, int64(3), *reg.BorrowerID)
}

func TestAuditoriaLogs_SoloFiltrosPresentes(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "ana", q.Get("usuario"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.False(t, q.Has("offset"))
		assert.False(t, q.Has("tabla"))
		writeJSON(w, 200, `{"ok":true,"result":[{"id_audit":1,"usuario":"ana"}]}`)
	}, 1000)

	logs, err := remote.NewAuditAPI(h.client).Logs(context.Background(), dto.AuditQuery{User: "ana", Limit: 20})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "ana", logs[0].User)
}

func TestAvisosGenerar_RutaPorTipo(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notificaciones/notificar-mora", r.URL.Path)
		writeJSON(w, 200, `{"ok":true,"result":{"tipo":"MORA","cantidad":2}}`)
	}, 1000)

	n, err := remote.NewNoticeAPI(h.client).Generate(context.Background(), entity.NoticeDelinquency)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = remote.NewNoticeAPI(h.client).Generate(context.Background(), entity.NoticeKind("SMS"))
	assert.Error(t, err)
}
