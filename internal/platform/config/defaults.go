package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultEventWorkers  = 4
	defaultBcryptCost    = 10
	defaultMaxOpenConns  = 10
	defaultMaxIdleConns  = 5
	defaultNATSRateLimit = 200
	defaultNATSBurst     = 50
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todolist-service",

		"database.driver":            "sqlite",
		"database.dsn":               "file:todolist.db?_busy_timeout=5000",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.log_queries":       false,

		"auth.jwt_secret": "",
		"auth.issuer":     "",

		"events.max_workers":                          defaultEventWorkers,
		"events.nats.enabled":                         false,
		"events.nats.url":                             "nats://localhost:4222",
		"events.nats.subject_prefix":                  "todolist",
		"events.nats.connect_timeout":                 "2s",
		"events.nats.flush_timeout":                   "2s",
		"events.nats.retry.max_attempts":              defaultRetryMaxAttempts,
		"events.nats.retry.initial_interval":          "100ms",
		"events.nats.retry.max_interval":              "2s",
		"events.nats.retry.multiplier":                defaultRetryMultiplier,
		"events.nats.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"events.nats.circuit_breaker.timeout":         "30s",
		"events.nats.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"events.nats.rate_limit.requests_per_second":  defaultNATSRateLimit,
		"events.nats.rate_limit.burst_size":           defaultNATSBurst,
		"events.redis.enabled":                        false,
		"events.redis.addr":                           "localhost:6379",
		"events.redis.password":                       "",
		"events.redis.db":                             0,
		"events.redis.key_prefix":                     "todolist:",

		"password.bcrypt_cost": defaultBcryptCost,
	}
}
