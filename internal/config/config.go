package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Ledger    StoreConfig
	Identity  StoreConfig
	Assistant AssistantConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// StoreConfig describes one pooled connection to a relational store. The
// ledger and identity stores are configured independently so they can live
// on separate servers.
type StoreConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ProbeAttempts   int
	ProbeTimeout    time.Duration
	ProbeBackoff    time.Duration
}

// AssistantConfig configures the reasoning-service client.
type AssistantConfig struct {
	Model      string
	APIKey     string
	APIVersion string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Ledger:   loadStoreConfig("LEDGER_DB", "bank_transactions"),
		Identity: loadStoreConfig("IDENTITY_DB", "bank_users"),
		Assistant: AssistantConfig{
			Model:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			APIKey:     os.Getenv("GEMINI_API_KEY"),
			APIVersion: getEnv("GEMINI_API_VERSION", "v1"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

func loadStoreConfig(prefix, defaultName string) StoreConfig {
	return StoreConfig{
		Host:            getEnv(prefix+"_HOST", "localhost"),
		Port:            getEnv(prefix+"_PORT", "5432"),
		User:            getEnv(prefix+"_USER", "bank_assistant"),
		Password:        getEnv(prefix+"_PASSWORD", "bank_assistant"),
		Name:            getEnv(prefix+"_NAME", defaultName),
		SSLMode:         getEnv(prefix+"_SSL_MODE", "disable"),
		MaxConnections:  getIntEnv(prefix+"_MAX_CONNECTIONS", 25),
		MaxIdleConns:    getIntEnv(prefix+"_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getDurationEnv(prefix+"_CONN_MAX_LIFETIME", time.Hour),
		ProbeAttempts:   getIntEnv(prefix+"_PROBE_ATTEMPTS", 3),
		ProbeTimeout:    getDurationEnv(prefix+"_PROBE_TIMEOUT", 5*time.Second),
		ProbeBackoff:    getDurationEnv(prefix+"_PROBE_BACKOFF", 500*time.Millisecond),
	}
}

// Validate reports fatal misconfiguration. The process must not start
// without a reasoning-service API key outside development.
func (c *Config) Validate() error {
	if c.Assistant.Model == "" {
		return fmt.Errorf("GEMINI_MODEL must not be empty")
	}

	if c.Assistant.APIKey == "" && !c.IsDevelopment() {
		return fmt.Errorf("GEMINI_API_KEY environment variable must be set in %s environments", c.Server.Environment)
	}

	return nil
}

func (c *StoreConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
