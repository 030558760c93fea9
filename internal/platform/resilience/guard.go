// Package resilience wraps outbound calls to external systems (the NATS
// event bus today) with a circuit breaker, a rate limiter, retry with
// exponential backoff, an OpenTelemetry span and call metrics.
//
// The pipeline order is:
//
//	Circuit Breaker → Rate Limiter → Span → Retry → fn
//
// Usage:
//
//	guard := resilience.New("nats", policy, metrics, logger)
//	err := guard.Do(ctx, "publish", func(ctx context.Context) error {
//		return conn.Publish(subject, payload)
//	})
//
// Errors wrapped with Permanent are returned without further attempts.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
)

// Policy groups the tuning knobs of a Guard.
type Policy struct {
	Retry          config.RetryConfig
	CircuitBreaker config.CircuitBreakerConfig
	RateLimit      config.RateLimitConfig
}

// Guard protects calls to one named dependency.
type Guard struct {
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil when rate limiting is disabled
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Guard for the dependency called name. A nil metrics skips
// metric recording.
func New(name string, policy Policy, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(policy.CircuitBreaker.HalfOpenLimit),
		Timeout:     policy.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= policy.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Caller cancellation says nothing about the dependency.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if policy.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(policy.RateLimit.RequestsPerSecond), max(policy.RateLimit.BurstSize, 1))
	}

	return &Guard{
		name:    name,
		breaker: cb,
		limiter: limiter,
		retry: retryPolicy{
			maxAttempts:     max(policy.Retry.MaxAttempts, 1),
			initialInterval: policy.Retry.InitialInterval,
			maxInterval:     policy.Retry.MaxInterval,
			multiplier:      policy.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs fn through the guard. The returned error is fn's last error,
// gobreaker.ErrOpenState / ErrTooManyRequests when the breaker rejects the
// call, or the context error when waiting is interrupted.
func (g *Guard) Do(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		if g.limiter != nil {
			if err := g.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		spanCtx, span := g.startSpan(ctx, operation)
		defer span.End()

		err := g.doWithRetry(spanCtx, operation, fn)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	g.recordMetrics(ctx, operation, start, err)

	var perm *permanentError
	if errors.As(err, &perm) {
		return perm.err
	}
	return err
}

// Name identifies the guarded dependency for health reporting.
func (g *Guard) Name() string {
	return g.name
}

// HealthCheck maps the breaker state to a health result without touching
// the dependency: closed is healthy, half-open is degraded, open is failing.
func (g *Guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.name, state)
	}
}

func (g *Guard) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(telemetry.ScopeName)
	return tracer.Start(ctx, g.name+" "+operation,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("peer.service", g.name),
			attribute.String("operation", operation),
		),
	)
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (g *Guard) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := telemetry.ResultSuccess
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err != nil:
		result = telemetry.ResultFailure
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(g.name+"."+operation),
		telemetry.AttrResult.String(result),
	)
	g.metrics.OutboundCallDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.OutboundCallTotal.Add(ctx, 1, attrs)
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
