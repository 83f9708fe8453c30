package kafka

import (
	// Go Internal Packages
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	// Local Packages
	models "tx-publisher/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type ProducerConfig struct {
	Brokers        []string
	Topic          string
	ClientID       string
	Acks           Acks
	Idempotence    bool
	QueueCapacity  int
	Compression    Compression
	Linger         time.Duration
	RequestTimeout time.Duration
	RecordRetries  int
}

// DeliveryFunc receives the outcome of one accepted Send.
type DeliveryFunc func(report models.DeliveryReport)

type delivery struct {
	report   models.DeliveryReport
	callback DeliveryFunc
}

// Publisher sends records to a single topic with at-least-once, ordered per
// key delivery. Delivery callbacks are only invoked from PollDeliveries and
// Flush, on the caller's goroutine, exactly once per accepted Send.
//
// Send, PollDeliveries and Flush are meant to be driven by one goroutine.
type Publisher struct {
	Client kafkaClient
	Config *ProducerConfig
	Logger *zap.Logger

	mu       sync.Mutex
	resolved []delivery
	ready    chan struct{}
	inFlight atomic.Int64
	closed   atomic.Bool
}

// NewPublisher validates conf and creates the underlying franz-go client.
// The client connects lazily, so an unreachable broker is not an error here.
func NewPublisher(conf *ProducerConfig, logger *zap.Logger, metrics *kprom.Metrics) (*Publisher, error) {
	var extra []kgo.Opt
	if metrics != nil {
		extra = append(extra, kgo.WithHooks(metrics))
	}
	return newPublisher(conf, logger, defaultClientFactory, extra...)
}

func newPublisher(conf *ProducerConfig, logger *zap.Logger, factory clientFactory, extra ...kgo.Opt) (*Publisher, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	opts := append(conf.kgoOpts(logger), extra...)
	client, err := factory(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}

	return &Publisher{
		Client: client,
		Config: conf,
		Logger: logger,
		ready:  make(chan struct{}, 1),
	}, nil
}

// Send enqueues the record and returns immediately. It fails with
// ErrQueueFull when QueueCapacity records are already unresolved; nothing is
// enqueued in that case.
func (p *Publisher) Send(key, value []byte, onDelivery DeliveryFunc) error {
	if p.closed.Load() {
		return ErrClosed
	}
	if len(key) == 0 {
		return errors.Join(ErrValidation, fmt.Errorf("record key is empty"))
	}

	capacity := int64(p.Config.QueueCapacity)
	if capacity > 0 && p.Client.BufferedProduceRecords() >= capacity {
		return ErrQueueFull
	}

	record := &kgo.Record{Topic: p.Config.Topic, Key: key, Value: value}
	p.inFlight.Add(1)

	// Accepted records outlive the caller's context; Flush bounds their lifetime.
	p.Client.TryProduce(context.Background(), record, func(r *kgo.Record, err error) {
		p.resolve(r, err, onDelivery)
	})
	return nil
}

// resolve runs on a franz-go goroutine.
func (p *Publisher) resolve(r *kgo.Record, err error, callback DeliveryFunc) {
	report := models.DeliveryReport{
		Topic:     r.Topic,
		Partition: r.Partition,
		Offset:    r.Offset,
		Key:       r.Key,
		Err:       err,
	}

	p.mu.Lock()
	p.resolved = append(p.resolved, delivery{report: report, callback: callback})
	p.mu.Unlock()

	select {
	case p.ready <- struct{}{}:
	default:
	}
}

// PollDeliveries invokes the callbacks of every resolved record. With a
// positive timeout and nothing resolved yet, it first waits for a resolution,
// the timeout, or ctx, whichever comes first. It returns the callbacks served.
func (p *Publisher) PollDeliveries(ctx context.Context, timeout time.Duration) int {
	if timeout > 0 && p.pending() == 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()

	wait:
		// A token may be left over from records an earlier call already served.
		for p.pending() == 0 {
			select {
			case <-p.ready:
			case <-timer.C:
				break wait
			case <-ctx.Done():
				break wait
			}
		}
	}
	return p.serve()
}

// Flush waits up to timeout for every accepted record to resolve, serves
// their callbacks and returns how many are still unresolved.
func (p *Publisher) Flush(timeout time.Duration) int {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := p.Client.Flush(ctx); err != nil {
		p.Logger.Warn("flush incomplete", zap.Duration("timeout", timeout), zap.Error(err))
	}

	p.serve()
	return int(p.inFlight.Load())
}

// Buffered returns the number of accepted sends whose callback has not run.
func (p *Publisher) Buffered() int {
	return int(p.inFlight.Load())
}

// Close releases the client. Unresolved records fail.
func (p *Publisher) Close() {
	if p.closed.Swap(true) {
		return
	}
	p.Client.Close()
}

func (p *Publisher) pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.resolved)
}

func (p *Publisher) serve() int {
	p.mu.Lock()
	batch := p.resolved
	p.resolved = nil
	p.mu.Unlock()

	for _, d := range batch {
		p.inFlight.Add(-1)
		if d.callback != nil {
			d.callback(d.report)
		}
	}
	return len(batch)
}

// Validate checks the producer configuration.
func (c *ProducerConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.Join(ErrValidation, fmt.Errorf("brokers list is required"))
	}
	for i, broker := range c.Brokers {
		if strings.TrimSpace(broker) == "" {
			return errors.Join(ErrValidation, fmt.Errorf("broker %d is empty", i))
		}
	}
	if c.Topic == "" {
		return errors.Join(ErrValidation, fmt.Errorf("topic is required"))
	}
	if err := ValidateAcks(c.Acks); err != nil {
		return err
	}
	if err := ValidateCompression(c.Compression); err != nil {
		return err
	}
	if c.Idempotence && c.Acks != "" && c.Acks != AcksAll {
		return errors.Join(ErrValidation,
			fmt.Errorf("idempotent writes require acks '%s', got '%s'", AcksAll, c.Acks))
	}
	if c.QueueCapacity < 0 {
		return errors.Join(ErrValidation, fmt.Errorf("queue capacity cannot be negative"))
	}
	return nil
}

// kgoOpts converts the configuration to franz-go client options.
func (c *ProducerConfig) kgoOpts(logger *zap.Logger) []kgo.Opt {
	opts := []kgo.Opt{
		kgo.SeedBrokers(c.Brokers...),
		kgo.DefaultProduceTopic(c.Topic),
		kgo.RequiredAcks(c.Acks.kgoAcks()),
		kgo.ProducerBatchCompression(c.Compression.codec()),
		kgo.WithLogger(newKgoLogger(logger)),
	}

	if !c.Idempotence {
		opts = append(opts, kgo.DisableIdempotentWrite())
	}
	if c.ClientID != "" {
		opts = append(opts, kgo.ClientID(c.ClientID))
	}
	// Kept above QueueCapacity so saturation surfaces from Send, not a promise.
	if c.QueueCapacity > 0 {
		opts = append(opts, kgo.MaxBufferedRecords(c.QueueCapacity+1))
	}
	if c.Linger > 0 {
		opts = append(opts, kgo.ProducerLinger(c.Linger))
	}
	if c.RequestTimeout > 0 {
		opts = append(opts, kgo.ProduceRequestTimeout(c.RequestTimeout))
	}
	if c.RecordRetries > 0 {
		opts = append(opts, kgo.RecordRetries(c.RecordRetries))
	}
	return opts
}
