package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// AppConfig opciones del servidor sandbox.
type AppConfig struct {
	Name string
	Log  *logger.Logger
	// Registry recibe las métricas HTTP y se expone en /metrics. nil = sin /metrics.
	Registry *prometheus.Registry
}

// Metrics métricas de las peticiones HTTP.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics registra las métricas en reg. Con reg nil no se registran.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "banco_sandbox",
			Subsystem: "http",
			Name:      "peticiones_total",
			Help:      "Peticiones atendidas por método, ruta y estado.",
		}, []string{"metodo", "ruta", "estado"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "banco_sandbox",
			Subsystem: "http",
			Name:      "duracion_segundos",
			Help:      "Latencia de las peticiones por ruta.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"ruta"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.latency)
	}
	return m
}

// Requests expone el CounterVec (para testutil).
func (m *Metrics) Requests() *prometheus.CounterVec { return m.requests }

// NewApp construye la aplicación fiber con recover, request id, log de peticiones, /health y /metrics.
// Las rutas de negocio se registran después con Router.
func NewApp(cfg AppConfig) (*fiber.App, *Metrics) {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	// un *Registry nil dentro de la interfaz no es nil
	var reg prometheus.Registerer
	if cfg.Registry != nil {
		reg = cfg.Registry
	}
	metrics := NewMetrics(reg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    maxUploadBytes + 1<<20,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger(log.Named("http"), metrics))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	if cfg.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}
	return app, metrics
}

// errorHandler errores no controlados (404 de ruta, panics recuperados) con la variante {ok:false}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := msgInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return fail(c, code, message)
}

func requestLogger(log *logger.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		route := c.Route().Path
		elapsed := time.Since(start)

		metrics.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.latency.WithLabelValues(route).Observe(elapsed.Seconds())

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		if cause, ok := c.Locals(localErr).(error); ok {
			ev = ev.Err(cause)
		}
		ev.Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("petición atendida")
		return nil
	}
}
