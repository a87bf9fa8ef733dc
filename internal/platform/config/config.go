package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Symbol store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	SymbolStoreDriver string
	DatabaseURL       string
	SQLitePath        string

	RatesAPIURL      string
	RatesAPIKey      string
	RatesAPITimeout  time.Duration
	RatesAPIRPS      float64
	RatesSymbolsPath string
	RatesRatesPath   string

	DefaultBaseCurrency string

	LogLevel string
	LogFile  string

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("SYMBOL_STORE_DRIVER", DriverSQLite)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "currency_board.db")
	v.SetDefault("RATES_API_URL", "https://api.exchangerate.host")
	v.SetDefault("RATES_API_KEY", "")
	v.SetDefault("RATES_API_TIMEOUT", "10s")
	v.SetDefault("RATES_API_RPS", 5)
	v.SetDefault("RATES_SYMBOLS_PATH", "$.symbols")
	v.SetDefault("RATES_RATES_PATH", "$.rates")
	v.SetDefault("DEFAULT_BASE_CURRENCY", "USD")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		SymbolStoreDriver:   strings.ToLower(v.GetString("SYMBOL_STORE_DRIVER")),
		DatabaseURL:         v.GetString("PGSQL_URL"),
		SQLitePath:          v.GetString("SQLITE_PATH"),
		RatesAPIURL:         v.GetString("RATES_API_URL"),
		RatesAPIKey:         v.GetString("RATES_API_KEY"),
		RatesAPIRPS:         v.GetFloat64("RATES_API_RPS"),
		RatesSymbolsPath:    v.GetString("RATES_SYMBOLS_PATH"),
		RatesRatesPath:      v.GetString("RATES_RATES_PATH"),
		DefaultBaseCurrency: strings.ToUpper(v.GetString("DEFAULT_BASE_CURRENCY")),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFile:             v.GetString("LOG_FILE"),
		RateLimit:           v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	timeoutStr := v.GetString("RATES_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATES_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RatesAPITimeout = timeout

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.SymbolStoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("SYMBOL_STORE_DRIVER=%s requires PGSQL_URL", DriverPostgres)
		}
	case DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown SYMBOL_STORE_DRIVER %q", cfg.SymbolStoreDriver)
	}

	return cfg, nil
}
