package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/umalmyha/fleetcases/internal/events"
	"github.com/umalmyha/fleetcases/internal/infra"
	"github.com/umalmyha/fleetcases/internal/push"
	"github.com/umalmyha/fleetcases/internal/repository"
	"github.com/umalmyha/fleetcases/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP API and push channel",
	RunE:  runServe,
}

//nolint:funlen // function wires every connection of the server
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	shutdownTelemetry := telemetry.Setup(ctx, cfg.TelemetryCfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
		defer cancel()

		if err := shutdownTelemetry(ctx); err != nil {
			logrus.Errorf("failed to flush traces - %v", err)
		}
	}()

	mongoClient, disconnect, err := connectMongo(ctx, cfg.MongoCfg)
	if err != nil {
		return err
	}
	defer disconnect()

	if err := repository.EnsureIndexes(ctx, mongoClient.Database(cfg.MongoCfg.Database)); err != nil {
		return err
	}

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		logrus.Info("redis address is not configured, lookups are read from mongodb directly")
	}

	producer := events.NewKafkaProducer(events.ParseBrokers(cfg.KafkaCfg.Brokers), cfg.KafkaCfg.Topic)
	defer func() {
		if err := producer.Close(); err != nil {
			logrus.Errorf("failed to close kafka producer - %v", err)
		}
	}()

	publishers := make([]events.Publisher, 0, 2)
	if producer.Enabled() {
		publishers = append(publishers, producer)
	}

	var hub *push.Hub
	if cfg.PushCfg.Enabled {
		hub = push.NewHub()
		publishers = append(publishers, hub)
	}

	e, err := infra.Router(cfg, infra.Deps{
		Mongo:     mongoClient,
		Redis:     redisClient,
		Publisher: events.Fanout(publishers...),
		Hub:       hub,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPCfg.Port),
		Handler: otelhttp.NewHandler(e, cfg.TelemetryCfg.ServiceName),
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("server is listening on %s", srv.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to stop server gracefully - %w", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutting down the server, unexpected error occurred - %w", err)
		}
	}
	return nil
}
