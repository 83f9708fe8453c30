package kafka

import (
	// Go Internal Packages
	"context"
	"errors"

	// External Packages
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	// ErrQueueFull is returned synchronously by Send when the outbound
	// buffer is at capacity. The caller should poll and retry.
	ErrQueueFull = &metricError{
		metric:  "queue_full",
		message: "producer queue full",
	}

	// ErrClosed is returned by Send after Close.
	ErrClosed = &metricError{
		metric:  "closed",
		message: "publisher closed",
	}

	// ErrValidation indicates configuration or record validation failed.
	ErrValidation = &metricError{
		metric:  "validation_error",
		message: "validation error",
	}

	// ErrBroker indicates the broker rejected the record.
	ErrBroker = &metricError{
		metric:  "broker_error",
		message: "broker error",
	}

	// ErrTimeout indicates the record was not acknowledged in time.
	ErrTimeout = &metricError{
		metric:  "timeout",
		message: "timeout",
	}
)

// metricError is a sentinel carrying a label usable in metrics.
type metricError struct {
	metric  string
	message string
}

func (e *metricError) Error() string {
	return e.message
}

func (e *metricError) Metric() string {
	return e.metric
}

func (e *metricError) Is(target error) bool {
	if t, ok := target.(*metricError); ok {
		return e.message == t.message
	}
	return false
}

// ErrorType returns a bounded metric label for err, walking the error chain.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}

	var me *metricError
	if errors.As(err, &me) {
		return me.Metric()
	}

	var ke *kerr.Error
	switch {
	case errors.Is(err, kgo.ErrMaxBuffered):
		return ErrQueueFull.Metric()
	case errors.Is(err, kgo.ErrRecordTimeout), errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout.Metric()
	case errors.Is(err, kgo.ErrClientClosed):
		return ErrClosed.Metric()
	case errors.Is(err, kgo.ErrRecordRetries), errors.As(err, &ke):
		return ErrBroker.Metric()
	}
	return "unknown"
}
