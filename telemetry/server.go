package telemetry

import (
	// Go Internal Packages
	"context"
	"errors"
	"net/http"
	"time"

	// External Packages
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Serve exposes /metrics and, when given, the Kafka client metrics on
// /metrics/kafka until ctx is done.
func Serve(ctx context.Context, addr string, kafkaMetrics http.Handler, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if kafkaMetrics != nil {
		mux.Handle("/metrics/kafka", kafkaMetrics)
	}

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics server started", zap.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
