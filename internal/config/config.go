package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `toml:"app"`
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	CORS      CORSConfig      `toml:"cors"`
	Funds     []string        `toml:"funds"`
	Snapshot  SnapshotConfig  `toml:"snapshot"`
	Reference ReferenceConfig `toml:"reference"`
}

// AppConfig holds application-wide settings
type AppConfig struct {
	Env          string `toml:"env"`
	LogLevel     string `toml:"log_level"`
	BaseCurrency string `toml:"base_currency"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `toml:"port"`
	Host string `toml:"host"`
	Addr string `toml:"-"` // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// SnapshotConfig controls the scheduled materialization of fund returns.
// Schedule is a standard five-field cron expression evaluated in UTC.
type SnapshotConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"`
}

// ReferenceConfig holds the value lists offered for company and investment fields.
type ReferenceConfig struct {
	Industries      []string `toml:"industries"`
	Countries       []string `toml:"countries"`
	InvestmentTypes []string `toml:"investment_types"`
	RoundStages     []string `toml:"round_stages"`
	Currencies      []string `toml:"currencies"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:          "production",
			LogLevel:     "info",
			BaseCurrency: "USD",
		},
		Server: ServerConfig{
			Port: "5001",
			Host: "localhost",
		},
		Database: DatabaseConfig{
			Path: "./data/portfolio.db",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Funds: []string{"Yang Fund 1", "Yang Fund 2", "Yang Fund 3"},
		Snapshot: SnapshotConfig{
			Enabled:  true,
			Schedule: "0 2 * * *",
		},
		Reference: ReferenceConfig{
			Industries: []string{
				"Communication Services",
				"Consumer Discretionary",
				"Consumer Staples",
				"Energy",
				"Financials",
				"Health Care",
				"Industrials",
				"Information Technology",
				"Materials",
				"Real Estate",
				"Utilities",
			},
			Countries:       []string{"China", "Germany", "India", "Singapore", "United Kingdom", "United States"},
			InvestmentTypes: []string{"Convertible Note", "Debt", "Equity", "SAFE Note", "Warrants"},
			RoundStages: []string{
				"Pre-Seed", "Seed", "Series A", "Series B", "Series C", "Series D+",
				"Growth Equity", "Mezzanine", "Other",
			},
			Currencies: []string{"USD", "SGD", "EUR", "GBP", "Other"},
		},
	}
}

// Load reads configuration from the optional TOML file named by CONFIG_FILE,
// then applies environment variables (including those from a .env file) on top.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile builds the configuration from defaults, the TOML file at path (skipped when
// path is empty) and environment overrides.
func LoadFile(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	config.Funds = normalizeList(config.Funds)
	sort.Strings(config.Funds)
	if len(config.Funds) == 0 {
		return nil, fmt.Errorf("at least one fund must be configured")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) error {
	config.App.Env = getEnv("APP_ENV", config.App.Env)
	config.App.LogLevel = getEnv("LOG_LEVEL", config.App.LogLevel)
	config.App.BaseCurrency = getEnv("BASE_CURRENCY", config.App.BaseCurrency)
	config.Server.Port = getEnv("SERVER_PORT", config.Server.Port)
	config.Server.Host = getEnv("SERVER_HOST", config.Server.Host)
	config.Database.Path = getEnv("DB_PATH", config.Database.Path)
	config.Snapshot.Schedule = getEnv("SNAPSHOT_SCHEDULE", config.Snapshot.Schedule)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config.CORS.AllowedOrigins = normalizeList(strings.Split(origins, ","))
	}
	if funds := os.Getenv("FUNDS"); funds != "" {
		config.Funds = strings.Split(funds, ",")
	}
	if enabled := os.Getenv("SNAPSHOT_ENABLED"); enabled != "" {
		b, err := strconv.ParseBool(enabled)
		if err != nil {
			return fmt.Errorf("invalid SNAPSHOT_ENABLED value %q: %w", enabled, err)
		}
		config.Snapshot.Enabled = b
	}

	return nil
}

// HasFund reports whether name is one of the configured funds.
func (c *Config) HasFund(name string) bool {
	for _, f := range c.Funds {
		if f == name {
			return true
		}
	}
	return false
}

// normalizeList trims entries and drops empty and duplicate values, keeping order.
func normalizeList(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
