package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/salesdata/orders-api/internal/domains/orders/application/types"
	"github.com/salesdata/orders-api/internal/domains/orders/domain"
	"github.com/salesdata/orders-api/internal/domains/orders/ports"
)

const tracerName = "github.com/salesdata/orders-api/internal/domains/orders/adapters/observability/service"

// Service decorates the query engine with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core query engine.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Orders(ctx context.Context) []domain.Order {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.Orders")
	defer span.End()

	result := s.inner.Orders(ctx)
	s.finish(ctx, span, "orders", len(result))
	return result
}

func (s *Service) OrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.OrderByID",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	result, err := s.inner.OrderByID(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logInfo(ctx, "order lookup missed", slog.String("order.id", orderID))
		s.metrics.record(ctx, "order_by_id")
		return nil, err
	}
	s.finish(ctx, span, "order_by_id", 1)
	return result, nil
}

func (s *Service) OrdersByCustomerID(ctx context.Context, customerID string) []domain.Order {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.OrdersByCustomerID",
		trace.WithAttributes(attribute.String("customer.id", customerID)))
	defer span.End()

	result := s.inner.OrdersByCustomerID(ctx, customerID)
	s.finish(ctx, span, "orders_by_customer_id", len(result))
	return result
}

func (s *Service) OrdersByCustomerName(ctx context.Context, customerName string) []domain.Order {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.OrdersByCustomerName",
		trace.WithAttributes(attribute.String("customer.name", customerName)))
	defer span.End()

	result := s.inner.OrdersByCustomerName(ctx, customerName)
	s.finish(ctx, span, "orders_by_customer_name", len(result))
	return result
}

func (s *Service) TotalSpentByCustomer(ctx context.Context, customerName string) float64 {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.TotalSpentByCustomer",
		trace.WithAttributes(attribute.String("customer.name", customerName)))
	defer span.End()

	result := s.inner.TotalSpentByCustomer(ctx, customerName)
	span.SetAttributes(attribute.Float64("customer.total_spent", result))
	s.metrics.record(ctx, "total_spent_by_customer")
	return result
}

func (s *Service) TotalSpentByCustomerID(ctx context.Context, customerID string) float64 {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.TotalSpentByCustomerID",
		trace.WithAttributes(attribute.String("customer.id", customerID)))
	defer span.End()

	result := s.inner.TotalSpentByCustomerID(ctx, customerID)
	span.SetAttributes(attribute.Float64("customer.total_spent", result))
	s.metrics.record(ctx, "total_spent_by_customer_id")
	return result
}

func (s *Service) OrdersCountByCustomerName(ctx context.Context, customerName string) int {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.OrdersCountByCustomerName",
		trace.WithAttributes(attribute.String("customer.name", customerName)))
	defer span.End()

	result := s.inner.OrdersCountByCustomerName(ctx, customerName)
	s.finish(ctx, span, "orders_count_by_customer_name", result)
	return result
}

func (s *Service) OrdersCountByCustomerID(ctx context.Context, customerID string) int {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.OrdersCountByCustomerID",
		trace.WithAttributes(attribute.String("customer.id", customerID)))
	defer span.End()

	result := s.inner.OrdersCountByCustomerID(ctx, customerID)
	s.finish(ctx, span, "orders_count_by_customer_id", result)
	return result
}

func (s *Service) CustomersSalesSummary(ctx context.Context, sortBy types.SortKey, limit int) []types.CustomerSalesSummary {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.CustomersSalesSummary",
		trace.WithAttributes(attribute.String("summary.sort_by", string(sortBy)), attribute.Int("summary.limit", limit)))
	defer span.End()

	result := s.inner.CustomersSalesSummary(ctx, sortBy, limit)
	s.finish(ctx, span, "customers_sales_summary", len(result))
	return result
}

func (s *Service) ProductsSalesSummary(ctx context.Context, sortBy types.SortKey, limit int) []types.ProductSalesSummary {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.ProductsSalesSummary",
		trace.WithAttributes(attribute.String("summary.sort_by", string(sortBy)), attribute.Int("summary.limit", limit)))
	defer span.End()

	result := s.inner.ProductsSalesSummary(ctx, sortBy, limit)
	s.finish(ctx, span, "products_sales_summary", len(result))
	return result
}

func (s *Service) SummaryStats(ctx context.Context) types.SummaryStats {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.SummaryStats")
	defer span.End()

	result := s.inner.SummaryStats(ctx)
	span.SetAttributes(attribute.Int("stats.total_orders", result.TotalOrders))
	s.metrics.record(ctx, "order_summary_stats")
	return result
}

func (s *Service) OrdersAfterDate(ctx context.Context, date string) []domain.Order {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.OrdersAfterDate",
		trace.WithAttributes(attribute.String("filter.date", date)))
	defer span.End()

	result := s.inner.OrdersAfterDate(ctx, date)
	s.finish(ctx, span, "orders_after_date", len(result))
	return result
}

func (s *Service) OrdersBetweenDates(ctx context.Context, startDate, endDate string) []domain.Order {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.OrdersBetweenDates",
		trace.WithAttributes(attribute.String("filter.start_date", startDate), attribute.String("filter.end_date", endDate)))
	defer span.End()

	result := s.inner.OrdersBetweenDates(ctx, startDate, endDate)
	s.finish(ctx, span, "orders_between_dates", len(result))
	return result
}

func (s *Service) TopProductsByQuantity(ctx context.Context, limit int) []types.TopProduct {
	ctx, span := s.tracer.Start(ctx, "OrderQueries.TopProductsByQuantity",
		trace.WithAttributes(attribute.Int("summary.limit", limit)))
	defer span.End()

	result := s.inner.TopProductsByQuantity(ctx, limit)
	s.finish(ctx, span, "top_products_by_quantity", len(result))
	return result
}

func (s *Service) finish(ctx context.Context, span trace.Span, operation string, count int) {
	span.SetAttributes(attribute.Int("result.count", count))
	s.logInfo(ctx, "query executed", slog.String("operation", operation), slog.Int("result.count", count))
	s.metrics.record(ctx, operation)
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

type serviceMetrics struct {
	queriesExecuted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	queriesExecuted, _ := m.Int64Counter("orders.service.queries_executed",
		metric.WithDescription("Number of query operations executed against the order store"))
	return serviceMetrics{queriesExecuted: queriesExecuted}
}

func (m serviceMetrics) record(ctx context.Context, operation string) {
	if m.queriesExecuted != nil {
		m.queriesExecuted.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}

var _ ports.Service = (*Service)(nil)
