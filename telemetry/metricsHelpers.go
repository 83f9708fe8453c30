package telemetry

func IncTransactionsGenerated() {
	transactionsGeneratedTotal.Inc()
}

func IncTransactionsSent() {
	transactionsSentTotal.Inc()
}

// Increments the dropped counter with a bounded reason.
func IncTransactionsDropped(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	transactionsDroppedTotal.WithLabelValues(reason).Inc()
}

func IncBackpressurePauses() {
	backpressurePausesTotal.Inc()
}

// Counts an acknowledged delivery.
func IncDeliveryAcknowledged() {
	deliveriesTotal.WithLabelValues("acknowledged", "").Inc()
}

// Counts a failed delivery. Reasons come from kafka.ErrorType.
func IncDeliveryFailed(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	deliveriesTotal.WithLabelValues("failed", reason).Inc()
}

func SetInFlight(n int64) {
	inFlightMessages.Set(float64(n))
}

func SetUndelivered(n int64) {
	undeliveredMessages.Set(float64(n))
}
