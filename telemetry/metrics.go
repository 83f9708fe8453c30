package telemetry

import (
	// External Packages
	"github.com/prometheus/client_golang/prometheus"
)

// Publisher metrics
var (
	transactionsGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_generated_total",
			Help: "Total number of synthetic transactions generated.",
		},
	)

	transactionsSentTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_sent_total",
			Help: "Total number of transactions accepted by the producer queue.",
		},
	)

	transactionsDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_dropped_total",
			Help: "Total number of transactions never accepted by the producer, partitioned by reason.",
		},
		[]string{"reason"}, // reasons: validation_error | closed | cancelled | unknown
	)

	backpressurePausesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "backpressure_pauses_total",
			Help: "Total number of pauses taken because the producer queue was full.",
		},
	)

	deliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deliveries_total",
			Help: "Total number of delivery outcomes, partitioned by outcome and failure reason.",
		},
		[]string{"outcome", "reason"}, // outcome: acknowledged | failed
	)

	inFlightMessages = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "in_flight_messages",
			Help: "Accepted messages whose delivery outcome is not yet known.",
		},
	)

	undeliveredMessages = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "undelivered_messages",
			Help: "Messages still unconfirmed when the shutdown flush timed out.",
		},
	)
)

// InitMetrics called on startup
func InitMetrics() {
	prometheus.MustRegister(
		transactionsGeneratedTotal,
		transactionsSentTotal,
		transactionsDroppedTotal,
		backpressurePausesTotal,
		deliveriesTotal,
		inFlightMessages,
		undeliveredMessages,
	)
}
