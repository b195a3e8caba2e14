package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/remitflow/wallet-backend/internal/adapter/backend"
	grpcadapter "github.com/remitflow/wallet-backend/internal/adapter/grpc"
	"github.com/remitflow/wallet-backend/internal/adapter/metrics"
	"github.com/remitflow/wallet-backend/internal/adapter/repository/postgres"
	"github.com/remitflow/wallet-backend/internal/adapter/rest"
	"github.com/remitflow/wallet-backend/internal/config"
	"github.com/remitflow/wallet-backend/internal/domain"
	"github.com/remitflow/wallet-backend/internal/logging"
	"github.com/remitflow/wallet-backend/internal/usecase/corridor"
	"github.com/remitflow/wallet-backend/internal/usecase/quote"
	"github.com/remitflow/wallet-backend/internal/usecase/transfer"
)

const (
	dbConnectTimeout = 10 * time.Second
	shutdownTimeout  = 15 * time.Second
)

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}
	log := logrus.NewEntry(logger)

	// 2. Corridor tables (built-in unless overridden)
	registry := corridor.Default()
	if cfg.CorridorsFile != "" {
		tables, err := config.LoadCorridors(cfg.CorridorsFile)
		if err != nil {
			log.Fatalf("Failed to load corridors: %v", err)
		}
		registry, err = corridor.NewRegistry(tables.Allowed, tables.Blocked)
		if err != nil {
			log.Fatalf("Invalid corridor tables in %s: %v", cfg.CorridorsFile, err)
		}
		log.WithField("file", cfg.CorridorsFile).Info("Corridor tables loaded")
	}

	// 3. Fee policy
	feeRate, err := cfg.ParsedFeeRate()
	if err != nil {
		log.Fatalf("Invalid fee rate: %v", err)
	}
	calculator, err := quote.NewCalculator(feeRate)
	if err != nil {
		log.Fatalf("Invalid fee rate: %v", err)
	}

	// 4. External collaborators
	backendClient := backend.New(backend.Config{
		BaseURL: cfg.BackendURL,
		Token:   cfg.BackendToken,
		Timeout: cfg.BackendTimeout,
	})

	var rates domain.ExchangeRateProvider = backendClient
	var db *postgres.DB
	if cfg.RateSource == config.RateSourcePostgres {
		ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
		db, err = postgres.NewDB(ctx, cfg.DB.ConnString())
		if err == nil {
			err = db.EnsureSchema(ctx)
		}
		cancel()
		if err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
		rates = postgres.NewRateRepository(db)
	}
	log.WithField("rate_source", cfg.RateSource).Info("Exchange rate provider configured")

	// 5. Services (Use Cases)
	m := metrics.New()
	transferService := transfer.NewTransferService(registry, calculator, rates, backendClient, m, log)

	// 6. gRPC server
	grpcServer, healthServer := grpcadapter.NewGRPCServer(grpcadapter.NewServer(transferService), grpcadapter.Options{
		APIToken: cfg.APIToken,
		Log:      log.WithField("component", "grpc"),
		Recorder: m,
		Limiter:  grpcadapter.NewPeerRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	go func() {
		log.Infof("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// 7. HTTP server (corridor lookups, health, metrics)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           rest.NewHandler(transferService, m.Handler(), log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve HTTP server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(log, grpcServer, healthServer, httpServer)

	if db != nil {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(log *logrus.Entry, grpcServer *grpclib.Server, healthServer *health.Server, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Infof("Received signal: %v. Shutting down gracefully...", sig)

	// Fail health probes before draining
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("HTTP server shutdown")
	}
	log.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")
}
