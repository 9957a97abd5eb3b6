package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/cnab-ledger/internal/cnab"
	"github.com/grachmannico95/cnab-ledger/internal/config"
	"github.com/grachmannico95/cnab-ledger/internal/eventbus"
	"github.com/grachmannico95/cnab-ledger/internal/handler"
	"github.com/grachmannico95/cnab-ledger/internal/server"
	"github.com/grachmannico95/cnab-ledger/internal/service"
	"github.com/grachmannico95/cnab-ledger/internal/storage"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	decoder := cnab.NewDecoder(cfg.Ingest.UTCOffsetHours)

	ledger, err := storage.Open(ctx, cfg.Storage, decoder.Location(), log)
	if err != nil {
		log.Fatal(ctx, "Failed to open storage",
			"driver", cfg.Storage.Driver,
			"error", err,
		)
	}
	uploads := storage.NewUploadStore()
	log.Info(ctx, "Storage initialized",
		"driver", cfg.Storage.Driver,
	)

	ingestor := service.NewTransactionIngestor(ledger, log)
	processor := service.NewCNABProcessor(decoder, ingestor, log)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
		RetryDelay:    cfg.Worker.RetryDelay,
		MaxRetryDelay: cfg.Worker.RetryMaxDelay,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	batchConsumer := eventbus.NewBatchConsumer(
		uploads,
		processor,
		log,
		cfg.Worker.PoolSize,
		cfg.Worker.BatchTimeout,
	)
	log.Info(ctx, "Batch consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	if err := bus.Subscribe(eventbus.EventTypeCNABBatch, batchConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	ingestionService := service.NewIngestionService(uploads, processor, bus, log)
	ledgerService := service.NewLedgerService(ledger, cfg.Query.MaxPageSize, log)
	log.Info(ctx, "Services initialized")

	cnabHandler := handler.NewCNABHandler(ingestionService, cfg.Ingest.MaxFileSizeBytes(), log)
	storeHandler := handler.NewStoreHandler(ledgerService, cfg.Query.DefaultPageSize, log)
	healthHandler := handler.NewHealthHandler(ledger, log)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, cnabHandler, storeHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// HTTP first so no new batches are queued, then drain the workers
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	if err := ledger.Close(); err != nil {
		log.Error(shutdownCtx, "Storage close error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
