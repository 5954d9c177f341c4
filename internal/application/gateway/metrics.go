package gateway

import "github.com/prometheus/client_golang/prometheus"

// Metrics contadores del gateway.
type Metrics struct {
	errors *prometheus.CounterVec
}

// NewMetrics registra los contadores en reg. Con reg nil no se registran (tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "banco_cliente",
			Subsystem: "gateway",
			Name:      "errores_total",
			Help:      "Fallas remotas normalizadas por el gateway, por categoría.",
		}, []string{"categoria"}),
	}
	if reg != nil {
		reg.MustRegister(m.errors)
	}
	return m
}

func (m *Metrics) observe(c Category) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(string(c)).Inc()
}

// Errors expone el CounterVec (para testutil).
func (m *Metrics) Errors() *prometheus.CounterVec { return m.errors }
