package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitgrid_actions_total",
		Help: "Dispatched grid actions by action name and outcome.",
	}, []string{"action", "outcome"})

	reconcileRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habitgrid_reconcile_runs_total",
		Help: "Full reconciliation passes over the grid.",
	})

	reconcileWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habitgrid_reconcile_cell_writes_total",
		Help: "Retroactive cell value writes produced by reconciliation.",
	})
)

func observe(action string, outcome string) {
	if action == "" {
		action = "unknown"
	}
	actionsTotal.WithLabelValues(action, outcome).Inc()
}
