// Package tools boots the tool relay: a thin HTTP server that lists the
// registered query tools and forwards invocations to the query API.
package tools

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/salesdata/orders-api/internal/clients/http/salesapi"
	orderstools "github.com/salesdata/orders-api/internal/domains/orders/adapters/tools"
	platformobservability "github.com/salesdata/orders-api/internal/platform/observability"
	sharederrors "github.com/salesdata/orders-api/internal/shared/errors"
)

// Run boots the tool relay server.
func Run(ctx context.Context) error {
	const serviceName = "sales-orders-tools"
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

	client, err := salesapi.NewClient(cfg.SalesAPIBaseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build sales API client: %w", err)
	}
	_, registry := orderstools.NewToolset(client, cfg.SalesAPIBaseURL)

	router := NewRouter(registry, logger)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("tool relay listening", slog.String("addr", addr), slog.String("salesAPI", cfg.SalesAPIBaseURL))
	if err := router.Run(addr); err != nil {
		logger.Error("tool relay server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// NewRouter returns a gin engine exposing the tool registry: GET /tools lists
// the catalog, POST /tools/:name invokes one tool with a JSON parameter body.
func NewRouter(registry *orderstools.Registry, logger *slog.Logger) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/tools", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tools": registry.List()})
	})

	router.POST("/tools/:name", func(c *gin.Context) {
		name := c.Param("name")
		params, err := io.ReadAll(c.Request.Body)
		if err != nil {
			sharederrors.Respond(c, sharederrors.ErrBadRequest.WithDetail("unable to read request body"))
			return
		}
		result, known := registry.Invoke(c.Request.Context(), name, params)
		if !known {
			sharederrors.Respond(c, sharederrors.NewNotFoundProblem("tool", name))
			return
		}
		if logger != nil {
			logger.Info("tool invoked", slog.String("tool", name))
		}
		c.JSON(http.StatusOK, result)
	})

	return router
}
