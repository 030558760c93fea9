package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/resilience"
)

// natsConn is the part of *nats.Conn the forwarder uses.
type natsConn interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Status() nats.Status
}

// DefaultFlushTimeout bounds a flush when neither the caller's context nor
// the configuration supplies a limit.
const DefaultFlushTimeout = 2 * time.Second

// NATSForwarder publishes events to NATS on "<prefix>.<event name>".
type NATSForwarder struct {
	conn         natsConn
	prefix       string
	flushTimeout time.Duration
	guard        *resilience.Guard
}

// ConnectNATS opens a connection that keeps reconnecting in the background.
func ConnectNATS(cfg config.NATSConfig, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name("todolist-service"),
		nats.Timeout(cfg.ConnectTimeout),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", c.ConnectedUrlRedacted()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	return conn, nil
}

// NewNATSForwarder returns a forwarder publishing through guard. Flushes
// without a caller deadline wait at most flushTimeout; a non-positive value
// means DefaultFlushTimeout.
func NewNATSForwarder(conn natsConn, prefix string, flushTimeout time.Duration, guard *resilience.Guard) *NATSForwarder {
	if flushTimeout <= 0 {
		flushTimeout = DefaultFlushTimeout
	}
	return &NATSForwarder{conn: conn, prefix: prefix, flushTimeout: flushTimeout, guard: guard}
}

// Name implements ports.EventSubscriber and ports.HealthChecker.
func (f *NATSForwarder) Name() string { return "nats" }

// Handle implements ports.EventSubscriber. The publish is flushed so a
// broken connection surfaces as an error here rather than being buffered.
func (f *NATSForwarder) Handle(ctx context.Context, event domain.Event) error {
	data, err := encode(event)
	if err != nil {
		return err
	}
	subject := f.Subject(event)

	return f.guard.Do(ctx, "publish", func(ctx context.Context) error {
		if err := f.conn.Publish(subject, data); err != nil {
			if errors.Is(err, nats.ErrBadSubject) || errors.Is(err, nats.ErrMaxPayload) {
				return resilience.Permanent(err)
			}
			return fmt.Errorf("publishing to %s: %w", subject, err)
		}
		return f.flush(ctx)
	})
}

// flush waits for the server to acknowledge buffered publishes. nats.go
// refuses to flush on a context without a deadline.
func (f *NATSForwarder) flush(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.flushTimeout)
		defer cancel()
	}
	if err := f.conn.FlushWithContext(ctx); err != nil {
		if errors.Is(err, nats.ErrNoDeadlineContext) {
			return resilience.Permanent(err)
		}
		return fmt.Errorf("flushing nats connection: %w", err)
	}
	return nil
}

// Subject returns the subject event is published on.
func (f *NATSForwarder) Subject(event domain.Event) string {
	return f.prefix + "." + event.EventName()
}

// HealthCheck implements ports.HealthChecker. The connection must be up and
// the breaker must not be open or probing.
func (f *NATSForwarder) HealthCheck(ctx context.Context) error {
	if status := f.conn.Status(); status != nats.CONNECTED {
		return fmt.Errorf("nats: connection %s", status)
	}
	return f.guard.HealthCheck(ctx)
}
