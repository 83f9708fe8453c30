package config

import (
	// Go Internal Packages
	"time"

	// Local Packages
	errors "tx-publisher/errors"
	kafka "tx-publisher/kafka"
)

var DefaultConfig = []byte(`
application: "tx-publisher"

logger:
  level: "info"

is_prod_mode: false

kafka:
  brokers:
    - "localhost:9092"
  topic: "financial_transactions"
  client_id: "tx-publisher"
  acks: "all"
  idempotence: true
  queue_capacity: 10000
  compression: "snappy"
  linger: "5ms"
  request_timeout: "10s"
  record_retries: 0

publisher:
  interval: "1s"
  backoff_timeout: "1s"
  flush_timeout: "10s"
  max_records: 0
  checkpoint_every: 100
  validate_payload: false
  seed: 0

metrics:
  enabled: true
  address: ":9100"

mongo:
  enabled: false
  uri: "mongodb://localhost:27017"
  database: "mybase"

redis:
  enabled: false
  uri: "localhost:6379"
  password: ""
  ttl: "168h"
`)

type Config struct {
	Application string    `koanf:"application"`
	Logger      Logger    `koanf:"logger"`
	IsProdMode  bool      `koanf:"is_prod_mode"`
	Kafka       Kafka     `koanf:"kafka"`
	Publisher   Publisher `koanf:"publisher"`
	Metrics     Metrics   `koanf:"metrics"`
	Mongo       Mongo     `koanf:"mongo"`
	Redis       Redis     `koanf:"redis"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Kafka struct {
	Brokers        []string      `koanf:"brokers"`
	Topic          string        `koanf:"topic"`
	ClientID       string        `koanf:"client_id"`
	Acks           string        `koanf:"acks"`
	Idempotence    bool          `koanf:"idempotence"`
	QueueCapacity  int           `koanf:"queue_capacity"`
	Compression    string        `koanf:"compression"`
	Linger         time.Duration `koanf:"linger"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	RecordRetries  int           `koanf:"record_retries"`
}

type Publisher struct {
	Interval        time.Duration `koanf:"interval"`
	BackoffTimeout  time.Duration `koanf:"backoff_timeout"`
	FlushTimeout    time.Duration `koanf:"flush_timeout"`
	MaxRecords      int           `koanf:"max_records"`
	CheckpointEvery int           `koanf:"checkpoint_every"`
	ValidatePayload bool          `koanf:"validate_payload"`
	Seed            uint64        `koanf:"seed"`
}

type Metrics struct {
	Enabled bool   `koanf:"enabled"`
	Address string `koanf:"address"`
}

type Mongo struct {
	Enabled  bool   `koanf:"enabled"`
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type Redis struct {
	Enabled  bool          `koanf:"enabled"`
	URI      string        `koanf:"uri"`
	Password string        `koanf:"password"`
	TTL      time.Duration `koanf:"ttl"`
}

// ProducerConfig maps the kafka section onto the publisher client options.
func (k Kafka) ProducerConfig() *kafka.ProducerConfig {
	return &kafka.ProducerConfig{
		Brokers:        k.Brokers,
		Topic:          k.Topic,
		ClientID:       k.ClientID,
		Acks:           kafka.Acks(k.Acks),
		Idempotence:    k.Idempotence,
		QueueCapacity:  k.QueueCapacity,
		Compression:    kafka.Compression(k.Compression),
		Linger:         k.Linger,
		RequestTimeout: k.RequestTimeout,
		RecordRetries:  k.RecordRetries,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}

	if len(c.Kafka.Brokers) == 0 {
		ve.Add("kafka.brokers", "cannot be empty")
	}
	if c.Kafka.Topic == "" {
		ve.Add("kafka.topic", "cannot be empty")
	}
	if err := kafka.ValidateAcks(kafka.Acks(c.Kafka.Acks)); err != nil {
		ve.Add("kafka.acks", err.Error())
	}
	if err := kafka.ValidateCompression(kafka.Compression(c.Kafka.Compression)); err != nil {
		ve.Add("kafka.compression", err.Error())
	}
	if c.Kafka.Idempotence && c.Kafka.Acks != "" && c.Kafka.Acks != string(kafka.AcksAll) {
		ve.Add("kafka.idempotence", "requires kafka.acks to be 'all'")
	}
	if c.Kafka.QueueCapacity < 0 {
		ve.Add("kafka.queue_capacity", "cannot be negative")
	}

	if c.Publisher.Interval < 0 {
		ve.Add("publisher.interval", "cannot be negative")
	}
	if c.Publisher.BackoffTimeout <= 0 {
		ve.Add("publisher.backoff_timeout", "must be positive")
	}
	if c.Publisher.FlushTimeout <= 0 {
		ve.Add("publisher.flush_timeout", "must be positive")
	}
	if c.Publisher.MaxRecords < 0 {
		ve.Add("publisher.max_records", "cannot be negative")
	}
	if c.Publisher.CheckpointEvery < 0 {
		ve.Add("publisher.checkpoint_every", "cannot be negative")
	}

	if c.Metrics.Enabled && c.Metrics.Address == "" {
		ve.Add("metrics.address", "cannot be empty")
	}
	if c.Mongo.Enabled && c.Mongo.URI == "" {
		ve.Add("mongo.uri", "cannot be empty")
	}
	if c.Mongo.Enabled && c.Mongo.Database == "" {
		ve.Add("mongo.database", "cannot be empty")
	}
	if c.Redis.Enabled && c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}

	return ve.Err()
}
