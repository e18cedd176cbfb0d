package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Assistant turn metrics
	AssistantTurns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlvip_assistant_turns_total",
			Help: "Total number of assistant conversation turns",
		},
		[]string{"outcome"}, // outcome: answer|needs_confirmation|error
	)

	// Model metrics
	ModelCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlvip_model_calls_total",
			Help: "Total number of chat completion calls",
		},
		[]string{"provider", "model", "status"}, // status: success|error
	)

	ModelLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nlvip_model_latency_seconds",
			Help:    "Chat completion latency in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "model"},
	)

	// Tool metrics
	ToolExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlvip_tool_executions_total",
			Help: "Total number of tool executions",
		},
		[]string{"tool", "status"}, // status: success|error
	)

	ToolLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nlvip_tool_latency_seconds",
			Help:    "Tool execution latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"tool"},
	)

	// Confirmation metrics
	ConfirmBatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlvip_confirm_batches_total",
			Help: "Total number of confirmed execution batches",
		},
		[]string{"status"}, // status: success|partial_failure|rejected
	)
)

// Init registers all metrics with Prometheus
func Init() {
	prometheus.MustRegister(AssistantTurns)
	prometheus.MustRegister(ModelCalls)
	prometheus.MustRegister(ModelLatency)
	prometheus.MustRegister(ToolExecutions)
	prometheus.MustRegister(ToolLatency)
	prometheus.MustRegister(ConfirmBatches)
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordModelCall records a chat completion call
func RecordModelCall(provider, model string, latency time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ModelCalls.WithLabelValues(provider, model, status).Inc()
	ModelLatency.WithLabelValues(provider, model).Observe(latency.Seconds())
}

// RecordToolExecution records a tool execution
func RecordToolExecution(tool string, latency time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ToolExecutions.WithLabelValues(tool, status).Inc()
	ToolLatency.WithLabelValues(tool).Observe(latency.Seconds())
}
