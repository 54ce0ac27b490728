package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/cmd"
	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/kafka"
	"backoffice/internal/adapters/out/metrics"
	"backoffice/internal/adapters/out/postgres/activitylogrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/purchaserepo"
	"backoffice/internal/adapters/out/postgres/statushistory"
	"backoffice/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector, err := metrics.NewCollector(registry)
	if err != nil {
		log.Fatalf("Error registering metrics: %v", err)
	}

	publisher, closePublisher := newPublisher(configs, logger)
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Error("Failed to close kafka writer", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, collector, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	handlers := app.HTTPHandlers()
	handlers.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	startWebServer(ctx, httpin.NewServer(handlers, logger), configs.HTTPPort, logger)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&purchaserepo.PurchaseDTO{},
		&purchaserepo.PurchaseLineDTO{},
		&statushistory.EntryDTO{},
		&activitylogrepo.ActivityLogDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}

// newPublisher returns a Kafka publisher, or a no-op one when no broker is set.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.StatusEventPublisher, func() error) {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Warn("KAFKA_HOST is empty, status events will not be published")
		return kafka.NewNopPublisher(logger), func() error { return nil }
	}

	writer := kafka.NewWriter(brokers, configs.KafkaStatusChangedTopic)
	return kafka.NewStatusEventPublisher(writer, logger), writer.Close
}

func startWebServer(ctx context.Context, server *httpin.Server, port string, logger *slog.Logger) {
	e := httpin.NewEcho(logger)
	if err := server.Register(e); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
