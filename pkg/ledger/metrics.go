package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

var transactionsRecorded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_transactions_total",
		Help: "Number of transactions recorded in the audit log.",
	},
	[]string{"kind"},
)

// Collectors returns the Prometheus collectors of the ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{transactionsRecorded}
}
