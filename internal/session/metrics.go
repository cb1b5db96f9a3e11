package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Exposed on /metrics through the default Prometheus registry.
var (
	historyOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "session_history_operations_total",
		Help: "History store operations by backend, operation and outcome.",
	}, []string{"backend", "op", "outcome"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "session_active",
		Help: "Sessions currently held by the in-memory history store.",
	})
)

func observeOp(backend, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	historyOps.WithLabelValues(backend, op, outcome).Inc()
}
