package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want debug/text", cfg.Log)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want \"sqlite\"", cfg.Database.Driver)
	}
	if cfg.Password.BcryptCost != 4 {
		t.Errorf("Password.BcryptCost = %d, want 4", cfg.Password.BcryptCost)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_AUTH_JWT_SECRET", testSecret)

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
		t.Errorf("Telemetry = %+v, want enabled otlp with endpoint", cfg.Telemetry)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want \"postgres\" (from base)", cfg.Database.Driver)
	}
	if !cfg.Events.NATS.Enabled || !cfg.Events.Redis.Enabled {
		t.Errorf("Events = %+v, want NATS and Redis enabled", cfg.Events)
	}
	if cfg.Auth.JWTSecret != testSecret {
		t.Error("Auth.JWTSecret not taken from APP_AUTH_JWT_SECRET")
	}
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("prod")
	if err == nil || !strings.Contains(err.Error(), "auth.jwt_secret") {
		t.Fatalf("Load(\"prod\") error = %v, want auth.jwt_secret failure", err)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Events.NATS.Retry.MaxAttempts != 3 {
		t.Errorf("Events.NATS.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Events.NATS.Retry.MaxAttempts)
	}
	if cfg.Events.Redis.KeyPrefix != "todolist:" {
		t.Errorf("Events.Redis.KeyPrefix = %q, want \"todolist:\" (from base)", cfg.Events.Redis.KeyPrefix)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_EVENTS_NATS_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("APP_EVENTS_MAX_WORKERS", "2")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Events.NATS.Retry.MaxAttempts != 7 {
		t.Errorf("Events.NATS.Retry.MaxAttempts = %d, want 7", cfg.Events.NATS.Retry.MaxAttempts)
	}
	if cfg.Events.MaxWorkers != 2 {
		t.Errorf("Events.MaxWorkers = %d, want 2", cfg.Events.MaxWorkers)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("nonexistent"); err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: "telemetry.endpoint",
		},
		{name: "driver", mutate: func(c *config.Config) { c.Database.Driver = "mysql" }, wantErr: "database.driver"},
		{name: "dsn", mutate: func(c *config.Config) { c.Database.DSN = "" }, wantErr: "database.dsn"},
		{name: "short secret", mutate: func(c *config.Config) { c.Auth.JWTSecret = "short" }, wantErr: "auth.jwt_secret"},
		{name: "workers", mutate: func(c *config.Config) { c.Events.MaxWorkers = 0 }, wantErr: "events.max_workers"},
		{
			name: "nats without url",
			mutate: func(c *config.Config) {
				c.Events.NATS.Enabled = true
				c.Events.NATS.URL = ""
			},
			wantErr: "events.nats.url",
		},
		{
			name:   "disabled nats is not checked",
			mutate: func(c *config.Config) { c.Events.NATS.URL = "" },
		},
		{
			name: "redis without addr",
			mutate: func(c *config.Config) {
				c.Events.Redis.Enabled = true
				c.Events.Redis.Addr = ""
			},
			wantErr: "events.redis.addr",
		},
		{name: "bcrypt cost", mutate: func(c *config.Config) { c.Password.BcryptCost = 40 }, wantErr: "password.bcrypt_cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    "file::memory:",
		},
		Auth: config.AuthConfig{JWTSecret: testSecret},
		Events: config.EventsConfig{
			MaxWorkers: 4,
			NATS: config.NATSConfig{
				URL:           "nats://localhost:4222",
				SubjectPrefix: "todolist",
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 100 * time.Millisecond,
					MaxInterval:     2 * time.Second,
					Multiplier:      2.0,
				},
				CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
			},
			Redis: config.RedisConfig{Addr: "localhost:6379"},
		},
		Password: config.PasswordConfig{BcryptCost: 10},
	}
}
