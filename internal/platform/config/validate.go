package config

import (
	"errors"
	"fmt"
)

// Bcrypt accepts costs in [4, 31].
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// minJWTSecretLength is the shortest accepted HS256 secret, in bytes.
const minJWTSecretLength = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.Events.validate(),
		c.Password.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case "postgres", "sqlite":
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: postgres, sqlite; got %q", d.Driver))
	}
	if d.DSN == "" {
		errs = append(errs, errors.New("database.dsn must not be empty"))
	}
	if d.MaxOpenConns < 0 || d.MaxIdleConns < 0 {
		errs = append(errs, errors.New("database connection pool sizes must not be negative"))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if len(a.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretLength)
	}
	return nil
}

func (e *EventsConfig) validate() error {
	var errs []error

	if e.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("events.max_workers must be >= 1, got %d", e.MaxWorkers))
	}
	if e.NATS.Enabled {
		errs = append(errs, e.NATS.validate())
	}
	if e.Redis.Enabled && e.Redis.Addr == "" {
		errs = append(errs, errors.New("events.redis.addr must not be empty when redis is enabled"))
	}

	return errors.Join(errs...)
}

func (n *NATSConfig) validate() error {
	var errs []error

	if n.URL == "" {
		errs = append(errs, errors.New("events.nats.url must not be empty"))
	}
	if n.SubjectPrefix == "" {
		errs = append(errs, errors.New("events.nats.subject_prefix must not be empty"))
	}
	if n.FlushTimeout < 0 {
		errs = append(errs, errors.New("events.nats.flush_timeout must not be negative"))
	}
	if n.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("events.nats.retry.max_attempts must be >= 1, got %d", n.Retry.MaxAttempts))
	}
	if n.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("events.nats.retry.multiplier must be positive, got %f", n.Retry.Multiplier))
	}
	if n.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("events.nats.circuit_breaker.max_failures must be >= 1, got %d",
			n.CircuitBreaker.MaxFailures))
	}
	if n.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("events.nats.rate_limit.requests_per_second must not be negative"))
	}

	return errors.Join(errs...)
}

func (p *PasswordConfig) validate() error {
	if p.BcryptCost < minBcryptCost || p.BcryptCost > maxBcryptCost {
		return fmt.Errorf("password.bcrypt_cost must be between %d and %d, got %d",
			minBcryptCost, maxBcryptCost, p.BcryptCost)
	}
	return nil
}
