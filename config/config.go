package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

const (
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
)

// Config holds the environment driven settings of the service.
type Config struct {
	Port       string
	DBDriver   string
	SQLitePath string
	DBLogLevel string
	LogLevel   string
	LogFormat  string
	// TraceExporter selects where finished spans go. Spans are recorded either
	// way so trace ids reach the access log.
	TraceExporter string
	CorsOrigins   []string
	SeedDemoData  bool
}

// Load reads the process environment. Every invalid value is reported in a
// single error.
func Load() (Config, error) {
	cfg := Config{
		Port:          envOrDefault("PORT", "8080"),
		DBDriver:      strings.ToLower(envOrDefault("DB_DRIVER", DriverMySQL)),
		SQLitePath:    envOrDefault("SQLITE_PATH", "hotel_pricing.db"),
		DBLogLevel:    strings.ToLower(envOrDefault("DB_LOG_LEVEL", "warn")),
		LogLevel:      strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(envOrDefault("LOG_FORMAT", "text")),
		TraceExporter: strings.ToLower(envOrDefault("TRACE_EXPORTER", TraceExporterNone)),
		CorsOrigins:   parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
	}

	invalid := make([]string, 0, 4)

	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		invalid = append(invalid, "PORT")
	}
	if cfg.DBDriver != DriverMySQL && cfg.DBDriver != DriverSQLite {
		invalid = append(invalid, "DB_DRIVER")
	}
	switch cfg.DBLogLevel {
	case "silent", "error", "warn", "info":
	default:
		invalid = append(invalid, "DB_LOG_LEVEL")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "LOG_LEVEL")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		invalid = append(invalid, "LOG_FORMAT")
	}
	if cfg.TraceExporter != TraceExporterNone && cfg.TraceExporter != TraceExporterStdout {
		invalid = append(invalid, "TRACE_EXPORTER")
	}

	if raw := strings.TrimSpace(os.Getenv("SEED_DEMO_DATA")); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, "SEED_DEMO_DATA")
		}
		cfg.SeedDemoData = seed
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
