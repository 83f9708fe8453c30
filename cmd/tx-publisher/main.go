package main

import (
	// Go Internal Packages
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	// Local Packages
	codec "tx-publisher/codec"
	config "tx-publisher/config"
	kafka "tx-publisher/kafka"
	mongodb "tx-publisher/repositories/mongodb"
	redis "tx-publisher/repositories/redis"
	delivery "tx-publisher/services/delivery"
	generator "tx-publisher/services/generator"
	telemetry "tx-publisher/telemetry"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

const (
	exitLoopError   = 2
	exitUndelivered = 3
)

// LoadSecrets Loads the secret variables and overrides the config
func LoadSecrets(k config.Config) config.Config {
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		k.Kafka.Brokers = strings.Split(brokers, ",")
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		k.Mongo.URI = uri
	}
	if uri := os.Getenv("REDIS_URI"); uri != "" {
		k.Redis.URI = uri
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		k.Redis.Password = password
	}
	if prod := os.Getenv("IS_PROD_MODE"); prod != "" {
		k.IsProdMode = prod == "true"
	}
	return k
}

// LoadConfig loads the default configuration and overrides it with the config file
// specified by the path defined in the config flag
func LoadConfig() *koanf.Koanf {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k
}

func main() {
	os.Exit(run())
}

func run() int {
	k := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Update and Validate config before starting
	appKonf = LoadSecrets(appKonf)
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		k.Print()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(appKonf.Logger.Level))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.OutputPaths = []string{"stdout"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := kprom.NewMetrics("txpub")
	if appKonf.Metrics.Enabled {
		telemetry.InitMetrics()
		go func() {
			if err := telemetry.Serve(ctx, appKonf.Metrics.Address, metrics.Handler(), logger); err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	var sinks []delivery.StatsSink
	if appKonf.Mongo.Enabled {
		mongoClient, err := mongodb.Connect(ctx, appKonf.Mongo.URI)
		if err != nil {
			logger.Fatal("cannot create mongo client", zap.Error(err))
		}
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
		sinks = append(sinks, mongodb.NewRunRepository(mongoClient, appKonf.Mongo.Database))
	}
	if appKonf.Redis.Enabled {
		redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
		if err != nil {
			logger.Fatal("cannot create redis client", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		sinks = append(sinks, redis.NewStatsRepository(redisClient, logger, appKonf.Redis.TTL))
	}

	publisher, err := kafka.NewPublisher(appKonf.Kafka.ProducerConfig(), logger, metrics)
	if err != nil {
		logger.Fatal("cannot create transactions publisher", zap.Error(err))
	}
	defer publisher.Close()

	encoder, err := codec.NewEncoder(appKonf.Publisher.ValidatePayload)
	if err != nil {
		logger.Fatal("cannot create transactions encoder", zap.Error(err))
	}

	loopConf := &delivery.Config{
		Interval:        appKonf.Publisher.Interval,
		BackoffTimeout:  appKonf.Publisher.BackoffTimeout,
		FlushTimeout:    appKonf.Publisher.FlushTimeout,
		MaxRecords:      appKonf.Publisher.MaxRecords,
		CheckpointEvery: appKonf.Publisher.CheckpointEvery,
	}
	txGenerator := generator.New(appKonf.Publisher.Seed)
	loop := delivery.NewLoop(loopConf, logger, txGenerator, encoder, publisher, sinks...)

	stats, err := loop.Run(ctx)
	fields := []zap.Field{
		zap.String("run_id", stats.RunID),
		zap.Int64("generated", stats.Generated),
		zap.Int64("sent", stats.Sent),
		zap.Int64("acknowledged", stats.Acknowledged),
		zap.Int64("failed", stats.Failed),
		zap.Int64("dropped", stats.Dropped),
		zap.Int64("undelivered", stats.Undelivered),
	}
	switch {
	case err == nil:
		logger.Info("publisher stopped", fields...)
		return 0
	case errors.Is(err, delivery.ErrUndelivered):
		logger.Error("publisher stopped with undelivered messages", append(fields, zap.Error(err))...)
		return exitUndelivered
	default:
		logger.Error("publisher stopped on error", append(fields, zap.Error(err))...)
		return exitLoopError
	}
}
