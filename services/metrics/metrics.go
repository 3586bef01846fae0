package metricsvc

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scholarsync"

// Outcome label values.
const (
	OK      = "ok"
	Failed  = "failed"
	Invalid = "invalid"
)

// Metrics counts what the console does; exposed on the debug server.
type Metrics struct {
	registry *prometheus.Registry

	logins   *prometheus.CounterVec
	restores *prometheus.CounterVec
	forms    *prometheus.CounterVec
	requests *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		restores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_restores_total",
			Help:      "Session restores by outcome.",
		}, []string{"outcome"}),
		forms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Form dialog submissions by form and outcome.",
		}, []string{"form", "outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
	}
	m.registry.MustRegister(
		m.logins, m.restores, m.forms, m.requests,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Login(outcome string) { m.logins.WithLabelValues(outcome).Inc() }

func (m *Metrics) Restore(outcome string) { m.restores.WithLabelValues(outcome).Inc() }

func (m *Metrics) Form(name, outcome string) { m.forms.WithLabelValues(name, outcome).Inc() }

func (m *Metrics) Request(method string, code int) {
	m.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
