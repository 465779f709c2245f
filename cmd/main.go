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

	httpadapter "agrofund/internal/adapter/http"
	"agrofund/internal/adapter/events"
	"agrofund/internal/adapter/jsonfile"
	"agrofund/internal/adapter/ledger/instrumented"
	"agrofund/internal/adapter/ledger/retry"
	"agrofund/internal/adapter/ledger/simulated"
	"agrofund/internal/adapter/ledger/stellar"
	"agrofund/internal/adapter/memory"
	"agrofund/internal/adapter/postgres"
	"agrofund/internal/adapter/redis"
	"agrofund/internal/adapter/security"
	"agrofund/internal/adapter/sqlite"
	"agrofund/internal/adapter/usecase"
	"agrofund/internal/config"
	"agrofund/internal/core/port"
	"agrofund/internal/db"
)

// main is the entry point of the agrofund service. It loads configuration,
// opens the configured record store (running migrations where needed),
// builds the ledger gateway and the use cases, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
//
// Running the binary as "agrofund token [subject]" prints a signed admin
// token instead.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		opts := cfg.Log.HandlerOptions()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	auth := httpadapter.NewAdminAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, logger)
	if len(os.Args) > 1 && os.Args[1] == "token" {
		subject := "admin"
		if len(os.Args) > 2 {
			subject = os.Args[2]
		}
		token, err := auth.IssueToken(subject, time.Now())
		if err != nil {
			logger.Error("issue admin token", slog.Any("error", err))
			return
		}
		fmt.Println(token)
		exitCode = 0
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("record store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	ledger, err := openLedger(cfg, logger)
	if err != nil {
		logger.Error("ledger gateway error", slog.Any("error", err))
		return
	}

	vault, err := security.NewSeedVault(cfg.Vault.Key)
	if err != nil {
		logger.Error("seed vault error", slog.Any("error", err))
		return
	}
	if !vault.Enabled() {
		logger.Warn("VAULT_KEY not set, farmer seeds are stored in plain text")
	}

	publisher, err := openPublisher(cfg, logger)
	if err != nil {
		logger.Error("event publisher error", slog.Any("error", err))
		return
	}
	defer publisher.Close()

	deps := usecase.Deps{
		Records: usecase.NewRecords(store),
		Ledger:  ledger,
		Vault:   vault,
		Events:  publisher,
		Logger:  logger,
	}
	svc := httpadapter.Services{
		Campaigns:   usecase.NewCampaignUseCase(deps),
		Investments: usecase.NewInvestmentUseCase(deps),
		Microloans:  usecase.NewMicroloanUseCase(deps),
		Balances:    usecase.NewBalanceUseCase(deps),
	}

	if cfg.SeedDemo {
		demo := db.Demo{
			Campaigns:   svc.Campaigns,
			Investments: svc.Investments,
			Microloans:  svc.Microloans,
			Balances:    svc.Balances,
		}
		if err = db.Seed(ctx, demo, logger); err != nil {
			logger.Error("demo seed error", slog.Any("error", err))
		}
	}

	handler := httpadapter.NewHandler(svc, auth, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Normalized()),
			slog.String("ledger", cfg.Ledger.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore opens the record store selected by STORE_DRIVER. The returned
// function releases the store and any pool behind it.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.RecordStore, func(), error) {
	switch cfg.Store.Normalized() {
	case "memory":
		logger.Warn("memory record store selected, records are lost on restart")
		s := memory.NewStore()
		return s, func() { _ = s.Close() }, nil

	case "sqlite":
		if cfg.SQLite.RunMigrations {
			if err := db.MigrateSQLite(cfg.SQLite.Path); err != nil {
				return nil, nil, fmt.Errorf("sqlite migrations: %w", err)
			}
			logger.Info("sqlite migrations applied")
		}
		conn, err := db.NewSQLite(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		s := sqlite.NewRecordStore(conn)
		return s, func() { _ = s.Close() }, nil

	case "postgres":
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err := db.MigratePostgres(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("postgres migrations: %w", err)
			}
			logger.Info("postgres migrations applied")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRecordStore(pool), pool.Close, nil

	case "redis":
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		s := redis.NewRecordStore(client, cfg.Redis.Key)
		return s, func() { _ = s.Close() }, nil

	default:
		s, err := jsonfile.NewStore(cfg.Store.JSONPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
}

// openLedger builds the gateway chain: backend, retries for queries, metrics.
func openLedger(cfg config.Config, logger *slog.Logger) (port.Ledger, error) {
	var backend port.Ledger
	if cfg.Ledger.IsStellar() {
		gw, err := stellar.New(cfg.Ledger, logger)
		if err != nil {
			return nil, err
		}
		backend = gw
	} else {
		logger.Warn("simulated ledger selected, balances live in memory")
		backend = simulated.New(simulated.WithStartingBalance(cfg.Ledger.StartingBalance))
	}
	strategy := retry.NewStrategy(cfg.Retry, logger)
	return instrumented.Wrap(retry.WrapLedger(backend, strategy)), nil
}

type closingPublisher interface {
	port.EventPublisher
	Close() error
}

func openPublisher(cfg config.Config, logger *slog.Logger) (closingPublisher, error) {
	if !cfg.Kafka.Enabled() {
		return events.NewLoggingPublisher(logger), nil
	}
	p, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, err
	}
	logger.Info("publishing events to kafka", slog.String("topic", cfg.Kafka.Topic))
	return p, nil
}
