package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported on /metrics.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ProviderRequests *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec
	ProviderTokens   *prometheus.CounterVec
	ProviderCircuit  *prometheus.GaugeVec

	ScenariosGenerated *prometheus.CounterVec
	ScenarioPoolHits   prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
}

var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

// Get returns the process-wide collectors, registering them on first use.
func Get() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "endpoint", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "Duration of HTTP requests",
					Buckets: []float64{0.1, 0.5, 1, 2, 5},
				},
				[]string{"method", "endpoint"},
			),
			ProviderRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "bizsim_provider_requests_total",
					Help: "Total number of model provider requests",
				},
				[]string{"provider", "model", "result"},
			),
			ProviderLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "bizsim_provider_request_duration_seconds",
					Help:    "Model provider request duration in seconds",
					Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
				},
				[]string{"provider", "model"},
			),
			ProviderTokens: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "bizsim_provider_tokens_total",
					Help: "Tokens consumed by model providers",
				},
				[]string{"provider", "model", "type"},
			),
			ProviderCircuit: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "bizsim_provider_circuit_open",
					Help: "1 while a provider's circuit breaker is open",
				},
				[]string{"provider"},
			),
			ScenariosGenerated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "bizsim_scenarios_generated_total",
					Help: "Scenarios produced, by source",
				},
				[]string{"source"},
			),
			ScenarioPoolHits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "bizsim_scenario_pool_hits_total",
				Help: "Scenarios served from the generated scenario pool",
			}),
			CacheHits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "bizsim_cache_hits_total",
				Help: "Social proof cache hits",
			}),
			CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
				Name: "bizsim_cache_misses_total",
				Help: "Social proof cache misses",
			}),
		}
	})
	return sharedMetrics
}

func (m *Metrics) RecordHTTP(method, endpoint, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

func (m *Metrics) RecordProvider(provider, model string, success bool, seconds float64) {
	result := "success"
	if !success {
		result = "error"
	}
	m.ProviderRequests.WithLabelValues(provider, model, result).Inc()
	m.ProviderLatency.WithLabelValues(provider, model).Observe(seconds)
}

func (m *Metrics) RecordTokens(provider, model string, input, output int) {
	if input > 0 {
		m.ProviderTokens.WithLabelValues(provider, model, "input").Add(float64(input))
	}
	if output > 0 {
		m.ProviderTokens.WithLabelValues(provider, model, "output").Add(float64(output))
	}
}

func (m *Metrics) SetCircuitOpen(provider string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	m.ProviderCircuit.WithLabelValues(provider).Set(v)
}
