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

	"github.com/Kishanjee7/finhealth/internal/application/usecase"
	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/port"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/benchmark"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/config"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/i18n"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/kafka"
	pgRepo "github.com/Kishanjee7/finhealth/internal/infrastructure/postgres"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/telemetry"
	grpcPresentation "github.com/Kishanjee7/finhealth/internal/presentation/grpc"
	"github.com/Kishanjee7/finhealth/internal/presentation/rest"
	pkgkafka "github.com/Kishanjee7/finhealth/pkg/kafka"
	"github.com/Kishanjee7/finhealth/pkg/observability"
	pkgpostgres "github.com/Kishanjee7/finhealth/pkg/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("finhealthd exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("starting finhealthd",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"grpc_enabled", cfg.GRPCEnabled,
		"benchmark_source", cfg.Benchmark.Source,
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{IncludeRuntime: true})
	if err != nil {
		return err
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort flush
	recorder, err := telemetry.NewRecorder(meterProvider)
	if err != nil {
		return err
	}

	readiness := map[string]rest.ReadinessCheck{}

	// Benchmark table, loaded once at startup.
	var source port.BenchmarkSource
	switch cfg.Benchmark.Source {
	case config.BenchmarkSourceFile:
		source = benchmark.NewFileSource(cfg.Benchmark.File)
	case config.BenchmarkSourcePostgres:
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		defer dbCancel()

		pool, err := pkgpostgres.NewPool(dbCtx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		logger.Info("connected to database")

		if err := pkgpostgres.RunMigrations(cfg.Database.DSN(), pgRepo.Migrations, pgRepo.MigrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		source = pgRepo.NewBenchmarkRepository(pool)
		readiness["database"] = func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		}
	default:
		source = benchmark.EmbeddedSource{}
	}

	table, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load benchmark table: %w", err)
	}
	logger.Info("benchmark table loaded",
		"industries", len(table.Industries()),
		"default_industry", table.DefaultIndustry(),
	)

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load label catalog: %w", err)
	}

	// Event publisher.
	var publisher port.EventPublisher = kafka.NewLogPublisher(logger)
	if cfg.Kafka.Enabled {
		producer, err := pkgkafka.NewProducer(pkgkafka.Config{
			ClientID:      cfg.ServiceName,
			Brokers:       cfg.Kafka.Brokers,
			SASLEnabled:   cfg.Kafka.SASLUsername != "",
			SASLMechanism: cfg.Kafka.SASLMechanism,
			SASLUsername:  cfg.Kafka.SASLUsername,
			SASLPassword:  cfg.Kafka.SASLPassword,
			TLS:           cfg.Kafka.TLS,
			TLSCAFile:     cfg.Kafka.TLSCAFile,

			AutoCreateTopics: cfg.Kafka.AutoCreate,
		})
		if err != nil {
			return fmt.Errorf("create kafka producer: %w", err)
		}
		defer func() { _ = producer.Close() }() //nolint:errcheck // best-effort close
		publisher = kafka.NewPublisher(producer, cfg.Kafka.Topic, logger)
		logger.Info("publishing analysis events", "topic", cfg.Kafka.Topic)
	}

	// Wire domain services and use cases.
	engine := newEngine(cfg, table)
	obs := usecase.Observer{Logger: logger, Recorder: recorder}
	useCases := usecase.Set{
		FullAnalysis:      usecase.NewRunFullAnalysis(engine, publisher, catalog, obs),
		ComputeMetrics:    usecase.NewComputeMetrics(engine, catalog, obs),
		CompareBenchmarks: usecase.NewCompareBenchmarks(engine, catalog, obs),
		AssessRisk:        usecase.NewAssessRisk(engine, catalog, obs),
		ScoreCredit:       usecase.NewScoreCredit(engine, catalog, obs),
		Forecast:          usecase.NewForecast(engine, obs),
		ListIndustries:    usecase.NewListIndustries(engine),
	}

	// HTTP server (API, health checks and metrics).
	var limiter *rest.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = rest.NewRateLimiter(cfg.RateLimitRPS)
	}
	router := rest.NewRouter(
		rest.NewAnalysisHandler(useCases, logger),
		rest.NewHealthHandler(cfg.ServiceName, logger, readiness),
		metricsHandler,
		limiter,
		logger,
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC server.
	var grpcServer *grpcPresentation.Server
	if cfg.GRPCEnabled {
		grpcServer, err = grpcPresentation.NewServer(grpcPresentation.NewAnalysisHandler(useCases, logger), logger, grpcPresentation.ServerConfig{
			ServiceName: cfg.ServiceName,
			TLSCertFile: cfg.GRPCTLSCertFile,
			TLSKeyFile:  cfg.GRPCTLSKeyFile,
			Reflection:  cfg.GRPCReflection,
		})
		if err != nil {
			return err
		}
	}

	// Start servers.
	errCh := make(chan error, 2)

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Serve(cfg.GRPCAddress()); err != nil {
				errCh <- fmt.Errorf("gRPC server error: %w", err)
			}
		}()
	}

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		logger.Error("server error", "error", serveErr)
	}

	// Graceful shutdown.
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("finhealthd stopped")
	return serveErr
}

func newEngine(cfg config.Config, table model.BenchmarkTable) *service.AnalysisOrchestrator {
	engine := service.NewAnalysisOrchestrator(
		service.NewMetricsCalculator(),
		service.NewBenchmarkComparator(table),
		service.NewHealthScoreAggregator(cfg.Analysis.Weights),
		service.NewRiskAssessor(cfg.Analysis.Risk),
		service.NewCreditScorer(service.DefaultCreditPolicy()),
		service.NewForecastEngine(cfg.Analysis.DefaultForecastPeriods),
	)
	lang, _ := valueobject.LanguageFromString(cfg.Analysis.DefaultLanguage)
	engine.SetDefaultLanguage(lang)
	return engine
}
