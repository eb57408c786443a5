package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "regmock"

// Config controls the metrics listener.
type Config struct {
	// Enabled starts a separate listener serving /metrics.
	Enabled bool `conf:"metrics"`

	Host string `conf:"metrics_host"`
	Port int    `conf:"metrics_port"`
}

// Metrics counts the responses of the mock registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// New creates the request counter on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Number of requests served, by route and status code.",
	}, []string{"route", "code"})

	return &Metrics{
		registry: reg,
		requests: requests,
	}
}

// ObserveRequest counts a response for the given route.
func (m *Metrics) ObserveRequest(route string, status int) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler serves the collected metrics in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}
