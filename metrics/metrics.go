package metrics

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PromMetrics struct {
	Decisions          *prometheus.CounterVec
	OnChainLookupError prometheus.Counter
	OnChainLookup      prometheus.Histogram
}

// NewPromMetrics registers the resolver metrics on reg.
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	// labels
	var (
		decisionLabels = []string{"gateway", "result", "stage"}
	)

	m := &PromMetrics{
		Decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_resolver_decisions_total",
			Help: "Availability decisions by gateway, result and deciding stage",
		}, decisionLabels),
		OnChainLookupError: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gateway_resolver_onchain_lookup_errors_total",
			Help: "Failed lookups of the on-chain configuration",
		}),
		OnChainLookup: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gateway_resolver_onchain_lookup_seconds",
			Help:    "Duration of on-chain configuration lookups",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.Decisions, m.OnChainLookupError, m.OnChainLookup)
	return m
}

// InitPromMetrics registers the metrics on a fresh registry and serves /metrics on port.
func InitPromMetrics(port int16) *PromMetrics {
	reg := prometheus.NewRegistry()
	m := NewPromMetrics(reg)

	// Expose /metrics HTTP endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()

	return m
}

func (m *PromMetrics) ObserveDecision(gateway, stage string, enabled bool) {
	if m == nil {
		return
	}
	result := "disabled"
	if enabled {
		result = "enabled"
	}
	m.Decisions.WithLabelValues(gateway, result, stage).Inc()
}

func (m *PromMetrics) ObserveOnChainLookup(seconds float64, err error) {
	if m == nil {
		return
	}
	m.OnChainLookup.Observe(seconds)
	if err != nil {
		m.OnChainLookupError.Inc()
	}
}
