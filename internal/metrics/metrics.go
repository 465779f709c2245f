package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger gateway metrics - Track calls to the settlement network
var (
	LedgerCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrofund_ledger_calls_total",
			Help: "Total number of ledger gateway calls by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	LedgerCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrofund_ledger_call_duration_seconds",
			Help:    "Time taken by a ledger gateway call",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"op"},
	)
)

// Business metrics - Track lifecycle transitions
var (
	CampaignsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agrofund_campaigns_created_total",
		Help: "Total number of campaigns created",
	})

	CampaignsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agrofund_campaigns_approved_total",
		Help: "Total number of campaigns approved",
	})

	InvestmentsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrofund_investments_recorded_total",
			Help: "Total number of investments recorded, by whether tokenization completed",
		},
		[]string{"degraded"},
	)

	MicroloanTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrofund_microloan_transitions_total",
			Help: "Total number of microloan lifecycle transitions by target status",
		},
		[]string{"status"},
	)
)

// Error metrics - Track failures
var (
	StaleSnapshots = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agrofund_stale_snapshots_total",
		Help: "Total number of record store saves rejected as stale",
	})

	EventPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agrofund_event_publish_errors_total",
		Help: "Total number of domain events that could not be published",
	})
)
