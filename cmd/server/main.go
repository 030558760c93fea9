// Package main is the entry point for the todo list service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/events"
	adapthttp "github.com/jsamuelsen11/go-todolist-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen11/go-todolist-service/internal/app"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/password"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/resilience"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	natsFlushTimeout      = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeResources(injector, cfg, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then the backends they use.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	<-serverErr

	closeResources(injector, cfg, logger)

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := providers.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. The providers are
// nil when telemetry is disabled; metrics is always set.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		// Instruments on the global no-op provider keep callers nil-free.
		metrics, err := telemetry.NewMetrics(otel.GetMeterProvider())
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}
		return &otelProviders{metrics: metrics}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerPersistence(injector, cfg, logger)
	registerEvents(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)
}

func registerPersistence(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*gormstore.Store, error) {
		store, err := gormstore.Open(gormstore.Options{
			Driver:          cfg.Database.Driver,
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogQueries:      cfg.Database.LogQueries,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("database ready", slog.String("driver", cfg.Database.Driver))
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return gormstore.NewUserRepository(do.MustInvoke[*gormstore.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoListRepository, error) {
		return gormstore.NewTodoListRepository(do.MustInvoke[*gormstore.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoItemRepository, error) {
		return gormstore.NewTodoItemRepository(do.MustInvoke[*gormstore.Store](i)), nil
	})
}

func registerEvents(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Events.NATS.Enabled {
		do.Provide(injector, func(_ do.Injector) (*nats.Conn, error) {
			return events.ConnectNATS(cfg.Events.NATS, logger)
		})

		do.Provide(injector, func(i do.Injector) (*events.NATSForwarder, error) {
			conn := do.MustInvoke[*nats.Conn](i)
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			guard := resilience.New("nats", resilience.Policy{
				Retry:          cfg.Events.NATS.Retry,
				CircuitBreaker: cfg.Events.NATS.CircuitBreaker,
				RateLimit:      cfg.Events.NATS.RateLimit,
			}, metrics, logger)
			return events.NewNATSForwarder(conn, cfg.Events.NATS.SubjectPrefix, cfg.Events.NATS.FlushTimeout, guard), nil
		})
	}

	if cfg.Events.Redis.Enabled {
		do.Provide(injector, func(_ do.Injector) (*redis.Client, error) {
			return events.NewRedisClient(cfg.Events.Redis), nil
		})

		do.Provide(injector, func(i do.Injector) (*events.CompletionStats, error) {
			rdb := do.MustInvoke[*redis.Client](i)
			return events.NewCompletionStats(rdb, cfg.Events.Redis.KeyPrefix), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.EventPublisher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		d := events.NewDispatcher(cfg.Events.MaxWorkers, metrics, logger)
		d.Subscribe(events.NewLogSubscriber(logger))
		d.Subscribe(events.NewCompletionMetrics(metrics))
		if cfg.Events.NATS.Enabled {
			d.Subscribe(do.MustInvoke[*events.NATSForwarder](i))
		}
		if cfg.Events.Redis.Enabled {
			d.Subscribe(do.MustInvoke[*events.CompletionStats](i))
		}
		return d, nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.TodoListService, error) {
		return app.NewTodoListService(
			do.MustInvoke[*gormstore.Store](i),
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.TodoListRepository](i),
			do.MustInvoke[ports.EventPublisher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoItemService, error) {
		return app.NewTodoItemService(
			do.MustInvoke[*gormstore.Store](i),
			do.MustInvoke[ports.TodoListRepository](i),
			do.MustInvoke[ports.TodoItemRepository](i),
			do.MustInvoke[ports.EventPublisher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(
			do.MustInvoke[*gormstore.Store](i),
			do.MustInvoke[ports.UserRepository](i),
			password.NewHasher(cfg.Password.BcryptCost),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.DefaultCheckTimeout)
		registry.Register(do.MustInvoke[*gormstore.Store](i))
		if cfg.Events.NATS.Enabled {
			registry.Register(do.MustInvoke[*events.NATSForwarder](i))
		}
		if cfg.Events.Redis.Enabled {
			registry.Register(do.MustInvoke[*events.CompletionStats](i))
		}
		return registry, nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		// Left as an untyped nil when Redis is off so the handler sees no counter.
		var stats handlers.CompletionCounter
		if cfg.Events.Redis.Enabled {
			stats = do.MustInvoke[*events.CompletionStats](i)
		}

		return adapthttp.Handlers{
			Lists:  handlers.NewListHandler(do.MustInvoke[ports.TodoListService](i)),
			Items:  handlers.NewItemHandler(do.MustInvoke[ports.TodoItemService](i)),
			Users:  handlers.NewUserHandler(do.MustInvoke[ports.UserService](i), stats),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		auth := middleware.Authenticate(middleware.AuthConfig{
			Secret: cfg.Auth.JWTSecret,
			Issuer: cfg.Auth.Issuer,
		})

		return adapthttp.NewRouter(h, auth,
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// closeResources releases the backends. It runs once the server is gone,
// so every provider has already been resolved.
func closeResources(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Events.NATS.Enabled {
		if conn, err := do.Invoke[*nats.Conn](injector); err == nil {
			if err := conn.FlushTimeout(natsFlushTimeout); err != nil {
				logger.Warn("nats flush error", slog.Any("error", err))
			}
			conn.Close()
		}
	}

	if cfg.Events.Redis.Enabled {
		if rdb, err := do.Invoke[*redis.Client](injector); err == nil {
			if err := rdb.Close(); err != nil {
				logger.Warn("redis close error", slog.Any("error", err))
			}
		}
	}

	if store, err := do.Invoke[*gormstore.Store](injector); err == nil {
		if err := store.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}
}
