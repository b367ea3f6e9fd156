package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"purchase-engine/config"
	"purchase-engine/internal/adapter/broker"
	httpHandler "purchase-engine/internal/adapter/http/handler"
	"purchase-engine/internal/adapter/http/middleware"
	"purchase-engine/internal/adapter/storage/memory"
	pgStorage "purchase-engine/internal/adapter/storage/postgres"
	redisStorage "purchase-engine/internal/adapter/storage/redis"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/service"
	"purchase-engine/internal/telemetry"
	"purchase-engine/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// stores is the storage backend selected by storage.driver.
type stores struct {
	wallets     ports.WalletStore
	inventory   ports.InventoryStore
	orders      ports.OrderStore
	commissions ports.CommissionStore
	audit       ports.AuditRepository
	health      ports.HealthChecker
	close       func()
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		db, s := memory.NewStores()
		log.Warn().Msg("Using in-memory storage, state is lost on restart")
		return &stores{
			wallets:     s.Wallets,
			inventory:   s.Inventory,
			orders:      s.Orders,
			commissions: s.Commissions,
			audit:       s.Audit,
			health:      db,
			close:       func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	if cfg.Storage.Migrate {
		if err := pgStorage.Migrate(pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("applying migrations: %w", err)
		}
	}
	log.Info().Msg("PostgreSQL connected")

	return &stores{
		wallets:     pgStorage.NewWalletStore(pool),
		inventory:   pgStorage.NewInventoryStore(pool),
		orders:      pgStorage.NewOrderStore(pool),
		commissions: pgStorage.NewCommissionStore(pool),
		audit:       pgStorage.NewAuditRepository(pool),
		health:      pgStorage.NewHealthCheck(pool),
		close:       pool.Close,
	}, nil
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, cfg.Tracing.ServiceName)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Purchase Engine")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Purchase Engine stopped with error")
	}
	log.Info().Msg("Server exited")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// Tracing
	if cfg.Tracing.Enabled {
		tp, err := telemetry.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Tracer shutdown failed")
			}
		}()
		log.Info().Str("endpoint", cfg.Tracing.JaegerEndpoint).Msg("Tracing enabled")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := telemetry.NewMetrics(registry)

	// Storage
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()
	healthCheckers := []ports.HealthChecker{st.health}

	deps := httpHandler.RouterDeps{
		IdempotencyTTL: cfg.Purchase.IdempotencyTTL,
		RateLimitRules: middleware.DefaultRateLimitRules(int64(cfg.RateLimit.Limit), cfg.RateLimit.Window),
		Metrics:        metrics,
		Gatherer:       registry,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	}

	// Redis (idempotency + rate limiting)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("connecting to Redis: %w", err)
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		deps.IdempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		deps.RateLimiter = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, purchase idempotency and rate limiting are off")
	}

	// Events
	var events ports.EventPublisher = broker.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		events = broker.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger.Component(log, "kafka"))
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka publisher ready")
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Error().Err(err).Msg("Closing event publisher failed")
		}
	}()

	// Core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		return fmt.Errorf("initializing encryption service: %w", err)
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	platformOwner, _ := cfg.Purchase.PlatformOwner() // checked by config.Validate
	policy, _ := cfg.Dispute.Policy()
	settings := service.PurchaseSettings{
		PlatformOwnerID: platformOwner,
		CurrencyScale:   cfg.Purchase.CurrencyScale,
		SagaTimeout:     cfg.Purchase.SagaTimeout,
	}

	ledgerSvc := service.NewLedgerService(st.wallets, cfg.Purchase.Currency, cfg.Purchase.CurrencyScale, metrics, logger.Component(log, "ledger"))
	commissionSvc := service.NewCommissionResolver(st.commissions, logger.Component(log, "commission"))
	inventorySvc := service.NewInventoryService(st.inventory, encSvc, cfg.Purchase.Currency, cfg.Purchase.CurrencyScale, metrics, logger.Component(log, "inventory"))
	purchaseSvc := service.NewPurchaseService(inventorySvc, commissionSvc, ledgerSvc, st.orders, events, settings, metrics, logger.Component(log, "purchase"))
	disputeSvc := service.NewDisputeService(st.orders, ledgerSvc, inventorySvc, events, policy, settings, metrics, logger.Component(log, "dispute"))
	reconSvc := service.NewReconciliationService(st.inventory, st.wallets, ledgerSvc, service.SweepSettings{
		ReservationTimeout: cfg.Purchase.ReservationTimeout,
		Interval:           cfg.Purchase.SweepInterval,
		Batch:              cfg.Purchase.SweepBatch,
	}, metrics, logger.Component(log, "sweeper"))
	auditSvc := service.NewAuditService(st.audit, logger.Component(log, "audit"))

	if _, err := ledgerSvc.EnsureWallet(ctx, platformOwner); err != nil {
		return fmt.Errorf("ensuring platform wallet: %w", err)
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	deps.PurchaseSvc = purchaseSvc
	deps.DisputeSvc = disputeSvc
	deps.LedgerSvc = ledgerSvc
	deps.ReconSvc = reconSvc
	deps.CommissionSvc = commissionSvc
	deps.Inventory = inventorySvc
	deps.TokenSvc = tokenSvc
	deps.HealthCheckers = healthCheckers
	deps.AuditSvc = auditSvc
	router := httpHandler.SetupRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return reconSvc.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
		return nil
	})

	return g.Wait()
}
