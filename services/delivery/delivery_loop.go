package delivery

import (
	// Go Internal Packages
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	// Local Packages
	kafka "tx-publisher/kafka"
	models "tx-publisher/models"
	telemetry "tx-publisher/telemetry"

	// External Packages
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sinkTimeout bounds each stats checkpoint write.
const sinkTimeout = 5 * time.Second

// ErrUndelivered is returned by Run when the shutdown flush timed out with
// messages still unconfirmed.
var ErrUndelivered = errors.New("messages undelivered at shutdown")

type State int32

const (
	Running State = iota
	Draining
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

type Generator interface {
	Generate() models.Transaction
}

type Encoder interface {
	Encode(tx models.Transaction) (key, value []byte, err error)
}

type Publisher interface {
	Send(key, value []byte, onDelivery kafka.DeliveryFunc) error
	PollDeliveries(ctx context.Context, timeout time.Duration) int
	Flush(timeout time.Duration) int
	Buffered() int
}

type StatsSink interface {
	SaveStats(ctx context.Context, stats models.RunStats) error
}

type Config struct {
	Interval        time.Duration // pause between records
	BackoffTimeout  time.Duration // longest wait for queue space per attempt
	FlushTimeout    time.Duration
	MaxRecords      int // 0 runs until cancelled
	CheckpointEvery int // 0 disables periodic stats
}

// Loop generates, encodes and publishes transactions one at a time until its
// context is cancelled, then drains the publisher.
type Loop struct {
	Config    *Config
	Logger    *zap.Logger
	Generator Generator
	Encoder   Encoder
	Publisher Publisher
	Sinks     []StatsSink

	state atomic.Int32
	stats models.RunStats
}

func NewLoop(conf *Config, logger *zap.Logger, gen Generator, enc Encoder, pub Publisher, sinks ...StatsSink) *Loop {
	return &Loop{
		Config:    conf,
		Logger:    logger,
		Generator: gen,
		Encoder:   enc,
		Publisher: pub,
		Sinks:     sinks,
	}
}

func (l *Loop) State() State {
	return State(l.state.Load())
}

// Run blocks until ctx is cancelled, MaxRecords is reached or encoding
// fails, and always drains before returning. The returned error wraps
// ErrUndelivered when the flush left messages unconfirmed.
func (l *Loop) Run(ctx context.Context) (models.RunStats, error) {
	l.stats = models.RunStats{RunID: uuid.NewString(), StartedAt: time.Now().UTC()}
	l.setState(Running)

	err := l.produce(ctx)

	l.setState(Draining)
	l.drain()
	l.setState(Stopped)

	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
	defer cancel()
	l.checkpoint(sinkCtx)

	if err != nil {
		return l.stats, err
	}
	if l.stats.Undelivered > 0 {
		return l.stats, fmt.Errorf("%w: %d messages", ErrUndelivered, l.stats.Undelivered)
	}
	return l.stats, nil
}

func (l *Loop) produce(ctx context.Context) error {
	for ctx.Err() == nil {
		tx := l.Generator.Generate()
		l.stats.Generated++
		telemetry.IncTransactionsGenerated()
		l.Logger.Info("generated transaction", transactionFields(tx)...)

		key, value, err := l.Encoder.Encode(tx)
		if err != nil {
			l.Logger.Error("cannot encode transaction",
				zap.String("transaction_id", tx.TransactionID), zap.Error(err))
			return err
		}

		l.publish(ctx, key, value)
		l.Publisher.PollDeliveries(ctx, 0)
		l.updateInFlight()

		if every := int64(l.Config.CheckpointEvery); every > 0 && l.stats.Generated%every == 0 {
			l.checkpoint(ctx)
		}
		if l.Config.MaxRecords > 0 && l.stats.Generated >= int64(l.Config.MaxRecords) {
			l.Logger.Info("record limit reached", zap.Int("max_records", l.Config.MaxRecords))
			return nil
		}
		l.pace(ctx)
	}
	return nil
}

// publish hands one record to the publisher, retrying the same bytes while
// the queue is full. It gives up only on cancellation or a non queue-full
// error.
func (l *Loop) publish(ctx context.Context, key, value []byte) {
	for {
		err := l.Publisher.Send(key, value, l.onDelivery)
		switch {
		case err == nil:
			l.stats.Sent++
			telemetry.IncTransactionsSent()
			return

		case errors.Is(err, kafka.ErrQueueFull):
			l.stats.Pauses++
			telemetry.IncBackpressurePauses()
			l.Logger.Warn("producer queue full, waiting",
				zap.ByteString("key", key), zap.Duration("timeout", l.Config.BackoffTimeout))

			l.Publisher.PollDeliveries(ctx, l.Config.BackoffTimeout)
			l.updateInFlight()
			if ctx.Err() != nil {
				l.stats.Dropped++
				telemetry.IncTransactionsDropped("cancelled")
				l.Logger.Warn("shutdown while waiting for queue space, transaction not sent",
					zap.ByteString("key", key))
				return
			}

		default:
			l.stats.Dropped++
			telemetry.IncTransactionsDropped(kafka.ErrorType(err))
			l.Logger.Error("cannot send transaction, dropping it",
				zap.ByteString("key", key), zap.Error(err))
			return
		}
	}
}

// onDelivery runs on the loop goroutine, from PollDeliveries or Flush.
func (l *Loop) onDelivery(report models.DeliveryReport) {
	if report.Err != nil {
		l.stats.Failed++
		telemetry.IncDeliveryFailed(kafka.ErrorType(report.Err))
		l.Logger.Error("message delivery failed",
			zap.String("topic", report.Topic),
			zap.ByteString("key", report.Key),
			zap.Error(report.Err))
		return
	}

	l.stats.Acknowledged++
	telemetry.IncDeliveryAcknowledged()
	l.Logger.Info(fmt.Sprintf("message delivered to %s [%d]", report.Topic, report.Partition),
		zap.Int64("offset", report.Offset),
		zap.ByteString("key", report.Key))
}

func (l *Loop) pace(ctx context.Context) {
	if l.Config.Interval <= 0 {
		return
	}
	timer := time.NewTimer(l.Config.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (l *Loop) drain() {
	l.Logger.Info("flushing producer", zap.Duration("timeout", l.Config.FlushTimeout))

	remaining := l.Publisher.Flush(l.Config.FlushTimeout)
	l.stats.Undelivered = int64(remaining)
	l.updateInFlight()
	telemetry.SetUndelivered(l.stats.Undelivered)

	if remaining > 0 {
		l.Logger.Error("flush timed out, messages may be lost", zap.Int("undelivered", remaining))
		return
	}
	l.Logger.Info("all messages delivered",
		zap.Int64("acknowledged", l.stats.Acknowledged), zap.Int64("failed", l.stats.Failed))
}

func (l *Loop) checkpoint(ctx context.Context) {
	l.stats.UpdatedAt = time.Now().UTC()
	for _, sink := range l.Sinks {
		if err := sink.SaveStats(ctx, l.stats); err != nil {
			l.Logger.Warn("cannot save run stats", zap.String("run_id", l.stats.RunID), zap.Error(err))
		}
	}
}

func (l *Loop) setState(s State) {
	l.state.Store(int32(s))
	l.stats.State = s.String()
	l.Logger.Info("delivery loop state changed",
		zap.String("run_id", l.stats.RunID), zap.Stringer("state", s))
}

func (l *Loop) updateInFlight() {
	telemetry.SetInFlight(int64(l.Publisher.Buffered()))
}

func transactionFields(tx models.Transaction) []zap.Field {
	return []zap.Field{
		zap.String("transaction_id", tx.TransactionID),
		zap.String("user_id", tx.UserID),
		zap.String("transaction_type", tx.TransactionType),
		zap.Stringer("amount", tx.Amount),
		zap.String("currency", tx.Currency),
		zap.Stringer("transaction_date", tx.TransactionDate),
		zap.String("category", tx.Category),
		zap.String("merchant", tx.Merchant),
		zap.String("location", tx.Location),
	}
}
