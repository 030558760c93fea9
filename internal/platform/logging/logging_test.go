package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "yaml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      string
		logAt      slog.Level
		wantOutput bool
	}{
		{level: "debug", logAt: slog.LevelDebug, wantOutput: true},
		{level: "info", logAt: slog.LevelDebug, wantOutput: false},
		{level: "INFO", logAt: slog.LevelInfo, wantOutput: true},
		{level: "error", logAt: slog.LevelWarn, wantOutput: false},
		{level: "bogus", logAt: slog.LevelInfo, wantOutput: true},
		{level: "bogus", logAt: slog.LevelDebug, wantOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.logAt.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Log(context.Background(), tt.logAt, "msg")

			if got := buf.Len() > 0; got != tt.wantOutput {
				t.Errorf("output written = %v, want %v", got, tt.wantOutput)
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want source", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source", infoBuf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext(empty) should return slog.Default()")
	}

	first := slog.New(slog.DiscardHandler)
	second := slog.New(slog.DiscardHandler)
	ctx := logging.WithLogger(logging.WithLogger(context.Background(), first), second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext returned the overwritten logger")
	}
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf))
	ctx = logging.With(ctx, slog.Int64("user_id", 42))

	logging.FromContext(ctx).InfoContext(ctx, "listing todo lists")

	if !strings.Contains(buf.String(), `"user_id":42`) {
		t.Errorf("output = %q, want user_id attribute", buf.String())
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "password", attr: slog.String("password", "hunter22"), secret: "hunter22"},
		{name: "password hash", attr: slog.String("password_hash", "$2a$10$abcdefghij"), secret: "$2a$10$abcdefghij"},
		{name: "password prefix", attr: slog.String("password_confirm", "hunter22"), secret: "hunter22"},
		{name: "jwt secret", attr: slog.String("jwt_secret", "0123456789abcdef"), secret: "0123456789abcdef"},
		{name: "bearer value", attr: slog.String("raw_header", "Bearer eyJhbGciOiJIUzI1NiJ9"), secret: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.Int64("list_id", 12),
		slog.String("path", "/api/v1/lists/12/items"),
	)

	out := buf.String()
	if !strings.Contains(out, `"list_id":12`) || !strings.Contains(out, "/api/v1/lists/12/items") {
		t.Errorf("output = %q, want list_id and path kept", out)
	}
}
