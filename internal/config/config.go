package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Catalog    CatalogConfig
	PostgreSQL PostgreSQLConfig
	Search     SearchConfig
	Chat       ChatConfig
	Logging    LoggingConfig

	// Warnings lists settings that were ignored in favour of their defaults.
	// They are reported once the logger is up.
	Warnings []string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int
	Host            string
	GinMode         string
	AllowedOrigins  string
	AllowedMethods  string
	AllowedHeaders  string
	ShutdownTimeout time.Duration
}

// CatalogConfig selects where the location catalog is loaded from
type CatalogConfig struct {
	Source string // memory | postgres
	// SeedOnStart writes the built-in locations to PostgreSQL before loading
	SeedOnStart bool
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, preferred over the parts below
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	SuggestionMinLength int
	SuggestionLimit     int
}

// ChatConfig holds assistant configuration
type ChatConfig struct {
	TypingDelay time.Duration
	MaxSessions int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Server: ServerConfig{
			Port:            env.getEnvAsInt("SERVER_PORT", 8080),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:         getEnv("GIN_MODE", "release"),
			AllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods:  getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders:  getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
			ShutdownTimeout: time.Duration(env.getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		},
		Catalog: CatalogConfig{
			Source:      strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceMemory)),
			SeedOnStart: env.getEnvAsBool("CATALOG_SEED_ON_START", false),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               env.getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "tunisia_clean"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     env.getEnvAsInt("PG_MAX_CONNECTIONS", 5),
			MaxIdleConnections: env.getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		Search: SearchConfig{
			SuggestionMinLength: env.getEnvAsInt("SEARCH_SUGGESTION_MIN_LENGTH", 2),
			SuggestionLimit:     env.getEnvAsInt("SEARCH_SUGGESTION_LIMIT", 5),
		},
		Chat: ChatConfig{
			TypingDelay: time.Duration(env.getEnvAsInt("CHAT_TYPING_DELAY_MS", 1000)) * time.Millisecond,
			MaxSessions: env.getEnvAsInt("CHAT_MAX_SESSIONS", 1000),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	cfg.Warnings = env.warnings

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the services cannot run with
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceMemory, CatalogSourcePostgres:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (want %s or %s)",
			c.Catalog.Source, CatalogSourceMemory, CatalogSourcePostgres)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.Server.Port)
	}
	if c.Search.SuggestionLimit <= 0 {
		return fmt.Errorf("SEARCH_SUGGESTION_LIMIT must be positive, got %d", c.Search.SuggestionLimit)
	}
	if c.Chat.MaxSessions <= 0 {
		return fmt.Errorf("CHAT_MAX_SESSIONS must be positive, got %d", c.Chat.MaxSessions)
	}
	if c.Chat.TypingDelay < 0 {
		return fmt.Errorf("CHAT_TYPING_DELAY_MS must not be negative")
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// SplitList splits a comma separated setting such as CORS_ALLOWED_METHODS
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper functions

// envReader records values that could not be parsed
type envReader struct {
	warnings []string
}

func (e *envReader) warn(format string, args ...any) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, args...))
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (e *envReader) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		e.warn("Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func (e *envReader) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		e.warn("Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
