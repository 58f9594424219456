// Package api boots the sales order query API: it loads the dataset once,
// builds the immutable in-memory store and the query service on top of it,
// and serves the read-only HTTP surface.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	salesserver "github.com/salesdata/orders-api/go"

	"github.com/salesdata/orders-api/internal/domains/orders/adapters/dataset"
	"github.com/salesdata/orders-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/salesdata/orders-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/salesdata/orders-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/salesdata/orders-api/internal/domains/orders/application"
	"github.com/salesdata/orders-api/internal/domains/orders/domain"
	platformobservability "github.com/salesdata/orders-api/internal/platform/observability"
	platformpostgres "github.com/salesdata/orders-api/internal/platform/postgres"
)

// Run boots the query API with observability, the order store, and the HTTP
// routes wired. The store is built once here; a dataset that fails to load or
// validate aborts startup.
func Run(ctx context.Context) error {
	const serviceName = "sales-orders-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg := LoadConfig()

	orders, cleanup, err := loadOrders(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load order dataset: %w", err)
	}
	defer cleanup()

	store, err := memory.NewStore(orders)
	if err != nil {
		return fmt.Errorf("order dataset rejected: %w", err)
	}
	logger.Info("order store loaded", slog.Int("orders", store.Len()))

	coreService := ordersapp.NewService(store)
	orderService := ordersobs.New(
		coreService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	handlers := salesserver.ApiHandleFunctions{
		OrdersAPI: salesserver.NewOrdersAPI(orderService),
	}

	router := salesserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("sales orders API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("sales orders API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// loadOrders reads the dataset from postgres when a DSN is configured and
// from the bundled JSON file otherwise. Either way this happens exactly once;
// the store never refreshes while the process runs.
func loadOrders(ctx context.Context, cfg Config, logger *slog.Logger) ([]domain.Order, func(), error) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db != nil {
		source, err := orderspostgres.NewSource(db)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		orders, err := source.LoadAll(ctx)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		logger.Info("orders loaded from postgres", slog.Int("orders", len(orders)))
		return orders, cleanup, nil
	}

	orders, err := dataset.LoadFile(cfg.SalesDataPath)
	if err != nil {
		return nil, func() {}, err
	}
	logger.Info("orders loaded from JSON dataset", slog.String("path", cfg.SalesDataPath), slog.Int("orders", len(orders)))
	return orders, func() {}, nil
}
