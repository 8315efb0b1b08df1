package controller

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeOK = "ok"

var ledgerOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "virtual_teller",
		Name:      "ledger_operations_total",
		Help:      "Ledger operations by name and outcome",
	},
	[]string{"operation", "outcome"},
)

func recordOutcome(operation, code string) {
	outcome := outcomeOK
	if code != "" {
		outcome = strings.ToLower(code)
	}
	ledgerOperationsTotal.WithLabelValues(operation, outcome).Inc()
}
