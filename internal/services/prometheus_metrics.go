package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	chatRequests        *prometheus.CounterVec
	chatDuration        prometheus.Histogram
	toolExecutions      *prometheus.CounterVec
	storeProbes         *prometheus.CounterVec
	assistantTurns      *prometheus.CounterVec
	circuitBreakerState prometheus.Gauge
}

// NewPrometheusMetrics registers the metric set against the given registerer.
// Production uses prometheus.DefaultRegisterer; tests pass a fresh registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		chatRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_requests_total",
				Help: "Total number of chat requests by outcome",
			},
			[]string{"outcome"},
		),
		chatDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chat_request_duration_milliseconds",
				Help:    "Chat request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		toolExecutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_executions_total",
				Help: "Total number of tool executions by tool and outcome",
			},
			[]string{"tool", "outcome"},
		),
		storeProbes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_probes_total",
				Help: "Total number of store reachability probes by store and outcome",
			},
			[]string{"store", "outcome"},
		),
		assistantTurns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assistant_turns_total",
				Help: "Total number of reasoning-service turns by turn and outcome",
			},
			[]string{"turn", "outcome"},
		),
		circuitBreakerState: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "assistant_circuit_breaker_state",
				Help: "Reasoning-service circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordChatRequest(outcome string, duration time.Duration) {
	m.chatRequests.WithLabelValues(outcome).Inc()
	m.chatDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordToolExecution(tool, outcome string) {
	m.toolExecutions.WithLabelValues(tool, outcome).Inc()
}

func (m *PrometheusMetrics) RecordStoreProbe(store string, reachable bool) {
	outcome := "reachable"
	if !reachable {
		outcome = "unreachable"
	}
	m.storeProbes.WithLabelValues(store, outcome).Inc()
}

func (m *PrometheusMetrics) RecordAssistantTurn(turn, outcome string) {
	m.assistantTurns.WithLabelValues(turn, outcome).Inc()
}

func (m *PrometheusMetrics) SetCircuitBreakerState(state CircuitBreakerState) {
	m.circuitBreakerState.Set(float64(state))
}
