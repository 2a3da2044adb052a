package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsOpened    prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Transaction metrics
	TransactionsApplied *prometheus.CounterVec
	TransactionDuration prometheus.Histogram
	TransactionAmount   prometheus.Histogram
	LedgerErrors        *prometheus.CounterVec

	// Notification metrics
	NotificationsPublished *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Account metrics
		AccountsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankcore_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankcore_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		// Transaction metrics
		TransactionsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankcore_transactions_applied_total",
				Help: "Total number of transactions applied by direction",
			},
			[]string{"direction"},
		),
		TransactionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankcore_transaction_duration_seconds",
			Help:    "Duration of transaction operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankcore_transaction_amount",
			Help:    "Transaction amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		LedgerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankcore_ledger_errors_total",
				Help: "Total number of ledger errors by type",
			},
			[]string{"error_type"},
		),

		// Notification metrics
		NotificationsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankcore_notifications_published_total",
				Help: "Total notification publish attempts by topic and status",
			},
			[]string{"topic", "status"},
		),
	}
}
