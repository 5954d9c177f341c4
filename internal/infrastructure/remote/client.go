package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/application/gateway"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/pkg/config"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

func init() {
	// el servicio espera montos numéricos, no strings
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	maxBodyBytes    = 4 << 20
	headerRequestID = "X-Request-ID"
)

// FailureHandler recibe toda falla remota y devuelve el error ya normalizado.
type FailureHandler interface {
	Handle(ctx context.Context, f gateway.Failure) *gateway.APIError
}

// Client cliente HTTP del servicio de préstamos. Todas las llamadas pasan por aquí:
// bearer token, un único timeout, normalización de envelopes y gateway de errores.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     ports.TokenSource
	failures   FailureHandler
	log        *logger.Logger
}

// Option ajuste opcional del cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests). Si no trae timeout se aplica el configurado.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		timeout := c.httpClient.Timeout
		c.httpClient = h
		if c.httpClient.Timeout == 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient construye el cliente. tokens puede ser nil (sin autenticación).
func NewClient(cfg config.APIConfig, tokens ports.TokenSource, failures FailureHandler, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		tokens:     tokens,
		failures:   failures,
		log:        log.Named("remote"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call descriptor de una llamada.
type call struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	anonymous   bool // sin bearer (login)
}

// Get GET con query opcional.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, call{method: http.MethodGet, path: path, query: query}, out)
}

// Post POST con cuerpo JSON.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out, false)
}

// Put PUT con cuerpo JSON.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out, false)
}

// Delete DELETE sin cuerpo.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, call{method: http.MethodDelete, path: path}, out)
}

// PostAnonymous POST sin bearer token (autenticación).
func (c *Client) PostAnonymous(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out, true)
}

// PostFile POST multipart con un único archivo en field.
func (c *Client) PostFile(ctx context.Context, path, field, filename string, content []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("remote: crear multipart: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("remote: escribir multipart: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("remote: cerrar multipart: %w", err)
	}
	return c.do(ctx, call{method: http.MethodPost, path: path, body: &buf, contentType: w.FormDataContentType()}, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any, anonymous bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote: serializar cuerpo: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, call{method: method, path: path, body: body, contentType: "application/json", anonymous: anonymous}, out)
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, cl.body)
	if err != nil {
		return fmt.Errorf("remote: crear request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if !cl.anonymous && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.log.Debug().Str("request_id", requestID).Str("metodo", cl.method).Str("ruta", cl.path).Msg("llamada remota")

	failure := gateway.Failure{Method: cl.method, Path: cl.path}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		failure.Err = err
		return c.failures.Handle(ctx, failure)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		failure.Status = resp.StatusCode
		failure.Err = fmt.Errorf("leer respuesta: %w", err)
		return c.failures.Handle(ctx, failure)
	}

	env, envErr := parseEnvelope(raw)
	failure.Status = resp.StatusCode
	failure.BodyMessage = env.message
	failure.BodyError = env.errText
	failure.BodyDetail = env.detail

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		failure.Err = fmt.Errorf("la solicitud falló con código %d", resp.StatusCode)
		return c.failures.Handle(ctx, failure)
	}
	if envErr != nil {
		failure.Err = envErr
		return c.failures.Handle(ctx, failure)
	}
	if !env.ok {
		return c.failures.Handle(ctx, failure)
	}
	if out == nil || len(env.payload) == 0 {
		return nil
	}
	return decodePayload(env.payload, out)
}

// decodePayload decodifica preservando números como json.Number (montos exactos).
func decodePayload(payload []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("remote: decodificar payload: %w", err)
	}
	return nil
}
