package config

import (
	// Go Internal Packages
	"testing"
	"time"

	// Local Packages
	errors "tx-publisher/errors"
	kafka "tx-publisher/kafka"

	// External Packages
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefault(t *testing.T) Config {
	t.Helper()
	k := koanf.New(".")
	require.NoError(t, k.Load(rawbytes.Provider(DefaultConfig), yaml.Parser()))

	var c Config
	require.NoError(t, k.Unmarshal("", &c))
	return c
}

func TestDefaultConfig(t *testing.T) {
	c := loadDefault(t)
	require.NoError(t, c.Validate())

	assert.Equal(t, []string{"localhost:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "financial_transactions", c.Kafka.Topic)
	assert.Equal(t, "all", c.Kafka.Acks)
	assert.True(t, c.Kafka.Idempotence)
	assert.Equal(t, time.Second, c.Publisher.Interval)
	assert.Equal(t, 10*time.Second, c.Publisher.FlushTimeout)
	assert.Equal(t, 5*time.Millisecond, c.Kafka.Linger)
	assert.Equal(t, 168*time.Hour, c.Redis.TTL)

	pc := c.Kafka.ProducerConfig()
	assert.Equal(t, kafka.AcksAll, pc.Acks)
	assert.Equal(t, kafka.CompressionSnappy, pc.Compression)
	assert.NoError(t, pc.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		field  string
	}{
		{"no brokers", func(c *Config) { c.Kafka.Brokers = nil }, "kafka.brokers"},
		{"no topic", func(c *Config) { c.Kafka.Topic = "" }, "kafka.topic"},
		{"bad acks", func(c *Config) { c.Kafka.Acks = "two" }, "kafka.acks"},
		{"bad compression", func(c *Config) { c.Kafka.Compression = "rar" }, "kafka.compression"},
		{"idempotence needs acks all", func(c *Config) { c.Kafka.Acks = "leader" }, "kafka.idempotence"},
		{"zero flush timeout", func(c *Config) { c.Publisher.FlushTimeout = 0 }, "publisher.flush_timeout"},
		{"zero backoff", func(c *Config) { c.Publisher.BackoffTimeout = 0 }, "publisher.backoff_timeout"},
		{"negative interval", func(c *Config) { c.Publisher.Interval = -time.Second }, "publisher.interval"},
		{"negative max records", func(c *Config) { c.Publisher.MaxRecords = -1 }, "publisher.max_records"},
		{"mongo without uri", func(c *Config) { c.Mongo.Enabled = true; c.Mongo.URI = "" }, "mongo.uri"},
		{"redis without uri", func(c *Config) { c.Redis.Enabled = true; c.Redis.URI = "" }, "redis.uri"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadDefault(t)
			tt.modify(&c)

			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(errors.Invalid, err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateZeroIntervalDisablesPacing(t *testing.T) {
	c := loadDefault(t)
	c.Publisher.Interval = 0
	assert.NoError(t, c.Validate())
}
