// Package metrics defines the prometheus collectors shared by the bridge channel and
// the dispatch registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Bridge execution outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeNonZero     = "non_zero"
	OutcomeTimeout     = "timeout"
	OutcomeError       = "error"
	OutcomeUnreachable = "unreachable"
)

var (
	// BridgeExecutions counts adb process executions by outcome
	BridgeExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "android_mcp_bridge_executions_total",
			Help: "Total number of adb invocations by outcome.",
		},
		[]string{"subcommand", "outcome"},
	)

	// BridgeLatency records adb process wall time
	BridgeLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "android_mcp_bridge_latency_seconds",
			Help:    "Latency of adb invocations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"subcommand"},
	)

	// OperationInvocations counts dispatched operations by status (success, failure kind)
	OperationInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "android_mcp_operation_invocations_total",
			Help: "Total number of dispatched operations by status.",
		},
		[]string{"operation", "status"},
	)

	// OperationLatency records handler latency
	OperationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "android_mcp_operation_latency_seconds",
			Help:    "Latency of dispatched operations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(BridgeExecutions)
	prometheus.MustRegister(BridgeLatency)
	prometheus.MustRegister(OperationInvocations)
	prometheus.MustRegister(OperationLatency)
}
