package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	natssrv "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/events"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/resilience"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
)

// otherEvent is an event none of the subscribers act on.
type otherEvent struct{}

func (otherEvent) EventName() string     { return "todo.list.renamed" }
func (otherEvent) OccurredAt() time.Time { return time.Time{} }

func TestLogSubscriber(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sub := events.NewLogSubscriber(logging.New("info", "json", &buf))

	if err := sub.Handle(context.Background(), completedEvent()); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"event":"todo.item.completed"`, `"item_id":7`, `"list_id":3`, `"title":"Milk"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %q, want it to contain %s", out, want)
		}
	}
}

func TestCompletionMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}
	sub := events.NewCompletionMetrics(metrics)

	ctx := context.Background()
	_ = sub.Handle(ctx, completedEvent())
	_ = sub.Handle(ctx, otherEvent{})
	_ = sub.Handle(ctx, completedEvent())

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	var got int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "todo.items.completed" {
				for _, dp := range sum.DataPoints {
					got += dp.Value
				}
			}
		}
	}
	if got != 2 {
		t.Errorf("todo.items.completed = %d, want 2", got)
	}
}

// --- NATS ---

func runNATSServer(t *testing.T) *natssrv.Server {
	t.Helper()

	s, err := natssrv.NewServer(&natssrv.Options{Port: -1})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	go s.Start()
	if !s.ReadyForConnections(5 * time.Second) {
		s.Shutdown()
		t.Fatal("nats server not ready")
	}
	t.Cleanup(s.Shutdown)
	return s
}

func natsGuard() *resilience.Guard {
	return resilience.New("nats", resilience.Policy{
		Retry:          config.RetryConfig{MaxAttempts: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Second, HalfOpenLimit: 1},
	}, nil, discardLogger())
}

func TestNATSForwarder_Publishes(t *testing.T) {
	t.Parallel()

	srv := runNATSServer(t)
	cfg := config.NATSConfig{URL: srv.ClientURL(), ConnectTimeout: time.Second}

	conn, err := events.ConnectNATS(cfg, discardLogger())
	if err != nil {
		t.Fatalf("ConnectNATS() error = %v", err)
	}
	t.Cleanup(conn.Close)

	sub, err := conn.SubscribeSync("todolist.>")
	if err != nil {
		t.Fatalf("SubscribeSync() error = %v", err)
	}

	fwd := events.NewNATSForwarder(conn, "todolist", 0, natsGuard())
	event := completedEvent()

	if err := fwd.Handle(context.Background(), event); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	msg, err := sub.NextMsg(2 * time.Second)
	if err != nil {
		t.Fatalf("NextMsg() error = %v", err)
	}
	if msg.Subject != "todolist.todo.item.completed" {
		t.Errorf("subject = %q, want %q", msg.Subject, "todolist.todo.item.completed")
	}

	var got struct {
		Name    string `json:"name"`
		Payload struct {
			ItemID int64  `json:"item_id"`
			Title  string `json:"title"`
			UserID int64  `json:"user_id"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(msg.Data, &got); err != nil {
		t.Fatalf("decoding message: %v", err)
	}
	if got.Name != event.EventName() || got.Payload.ItemID != 7 || got.Payload.Title != "Milk" || got.Payload.UserID != 1 {
		t.Errorf("message = %+v, want completion of item 7 %q by user 1", got, "Milk")
	}

	if err := fwd.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

// fakeNATS records publishes and fails on demand. Like *nats.Conn it
// refuses to flush without a deadline.
type fakeNATS struct {
	publishErr error
	flushErr   error
	status     nats.Status
	published  []string
	flushes    int
	lastBudget time.Duration
}

func (f *fakeNATS) Publish(subject string, _ []byte) error {
	f.published = append(f.published, subject)
	return f.publishErr
}

func (f *fakeNATS) FlushWithContext(ctx context.Context) error {
	f.flushes++
	deadline, ok := ctx.Deadline()
	if !ok {
		return nats.ErrNoDeadlineContext
	}
	f.lastBudget = time.Until(deadline)
	return f.flushErr
}

func (f *fakeNATS) Status() nats.Status { return f.status }

func TestNATSForwarder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		publishErr    error
		flushErr      error
		wantAttempts  int
		wantErrTarget error
	}{
		{name: "transient error is retried", publishErr: nats.ErrConnectionClosed, wantAttempts: 2, wantErrTarget: nats.ErrConnectionClosed},
		{name: "bad subject is not retried", publishErr: nats.ErrBadSubject, wantAttempts: 1, wantErrTarget: nats.ErrBadSubject},
		{name: "failed flush is retried", flushErr: nats.ErrTimeout, wantAttempts: 2, wantErrTarget: nats.ErrTimeout},
		{name: "flush without deadline is not retried", flushErr: nats.ErrNoDeadlineContext, wantAttempts: 1, wantErrTarget: nats.ErrNoDeadlineContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conn := &fakeNATS{publishErr: tt.publishErr, flushErr: tt.flushErr, status: nats.CONNECTED}
			fwd := events.NewNATSForwarder(conn, "todolist", 0, natsGuard())

			err := fwd.Handle(context.Background(), completedEvent())

			if !errors.Is(err, tt.wantErrTarget) {
				t.Errorf("Handle() error = %v, want %v", err, tt.wantErrTarget)
			}
			if len(conn.published) != tt.wantAttempts {
				t.Errorf("publish attempts = %d, want %d", len(conn.published), tt.wantAttempts)
			}
		})
	}
}

func TestNATSForwarder_FlushDeadline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		flushTimeout time.Duration
		ctx          func() (context.Context, context.CancelFunc)
		wantMax      time.Duration
	}{
		{
			name:         "configured timeout without caller deadline",
			flushTimeout: 300 * time.Millisecond,
			ctx:          func() (context.Context, context.CancelFunc) { return context.Background(), func() {} },
			wantMax:      300 * time.Millisecond,
		},
		{
			name:    "default timeout without caller deadline",
			ctx:     func() (context.Context, context.CancelFunc) { return context.Background(), func() {} },
			wantMax: events.DefaultFlushTimeout,
		},
		{
			name:         "caller deadline is kept",
			flushTimeout: time.Hour,
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 500*time.Millisecond)
			},
			wantMax: 500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conn := &fakeNATS{status: nats.CONNECTED}
			fwd := events.NewNATSForwarder(conn, "todolist", tt.flushTimeout, natsGuard())
			ctx, cancel := tt.ctx()
			defer cancel()

			if err := fwd.Handle(ctx, completedEvent()); err != nil {
				t.Fatalf("Handle() error = %v, want nil", err)
			}
			if conn.flushes != 1 {
				t.Errorf("flushes = %d, want 1", conn.flushes)
			}
			if conn.lastBudget <= 0 || conn.lastBudget > tt.wantMax {
				t.Errorf("flush budget = %v, want within (0, %v]", conn.lastBudget, tt.wantMax)
			}
		})
	}
}

func TestNATSForwarder_HealthCheckDisconnected(t *testing.T) {
	t.Parallel()

	fwd := events.NewNATSForwarder(&fakeNATS{status: nats.RECONNECTING}, "todolist", 0, natsGuard())

	if err := fwd.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil, want error while reconnecting")
	}
	if got := fwd.Subject(otherEvent{}); got != "todolist.todo.list.renamed" {
		t.Errorf("Subject() = %q, want %q", got, "todolist.todo.list.renamed")
	}
}

// --- Redis ---

// fakeRedis is an in-memory stand-in for the few commands CompletionStats
// sends.
type fakeRedis struct {
	strings map[string]int64
	hashes  map[string]map[string]int64
	err     error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{strings: map[string]int64{}, hashes: map[string]map[string]int64{}}
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.strings[key]++
	return redis.NewIntResult(f.strings[key], nil)
}

func (f *fakeRedis) HIncrBy(_ context.Context, key, field string, incr int64) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	if f.hashes[key] == nil {
		f.hashes[key] = map[string]int64{}
	}
	f.hashes[key][field] += incr
	return redis.NewIntResult(f.hashes[key][field], nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.strings[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(itoa(v), nil)
}

func (f *fakeRedis) HGet(_ context.Context, key, field string) *redis.StringCmd {
	v, ok := f.hashes[key][field]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(itoa(v), nil)
}

func (f *fakeRedis) Ping(context.Context) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	return redis.NewStatusResult("PONG", nil)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestCompletionStats_Counts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rdb := newFakeRedis()
	stats := events.NewCompletionStats(rdb, "todolist:")

	first := completedEvent()
	second := completedEvent()
	second.UserID = 2
	for _, e := range []domain.Event{first, otherEvent{}, first, second} {
		if err := stats.Handle(ctx, e); err != nil {
			t.Fatalf("Handle(%s) error = %v", e.EventName(), err)
		}
	}

	if total, err := stats.Total(ctx); err != nil || total != 3 {
		t.Errorf("Total() = %d, %v; want 3, nil", total, err)
	}
	if n, err := stats.ForUser(ctx, 1); err != nil || n != 2 {
		t.Errorf("ForUser(1) = %d, %v; want 2, nil", n, err)
	}
	if n, err := stats.ForUser(ctx, 99); err != nil || n != 0 {
		t.Errorf("ForUser(99) = %d, %v; want 0, nil", n, err)
	}
	if _, ok := rdb.strings["todolist:items:completed"]; !ok {
		t.Error("total key not written under prefix")
	}
}

func TestCompletionStats_Failure(t *testing.T) {
	t.Parallel()

	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	stats := events.NewCompletionStats(rdb, "todolist:")

	if err := stats.Handle(context.Background(), completedEvent()); err == nil {
		t.Error("Handle() error = nil, want redis failure")
	}
	if err := stats.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil, want redis failure")
	}
	if stats.Name() != "redis" {
		t.Errorf("Name() = %q, want %q", stats.Name(), "redis")
	}
}
