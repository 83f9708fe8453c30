package kafka

import (
	// Go Internal Packages
	"context"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
)

// kafkaClient is the subset of *kgo.Client the publisher drives. Tests swap
// it for a fake.
type kafkaClient interface {
	// TryProduce buffers a record without blocking; the promise is invoked
	// from a client goroutine once the record resolves.
	TryProduce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))

	// Flush waits until every buffered record has resolved or ctx is done.
	Flush(ctx context.Context) error

	// BufferedProduceRecords returns the number of unresolved records.
	BufferedProduceRecords() int64

	Close()
}

var _ kafkaClient = (*kgo.Client)(nil)

type clientFactory func(opts ...kgo.Opt) (kafkaClient, error)

func defaultClientFactory(opts ...kgo.Opt) (kafkaClient, error) {
	return kgo.NewClient(opts...)
}
