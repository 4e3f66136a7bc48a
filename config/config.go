package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	CMC    CMCConfig    `mapstructure:"cmc"`
	Export ExportConfig `mapstructure:"export"`
	Log    LogConfig    `mapstructure:"log"`
}

// CMCConfig holds the CoinMarketCap quote endpoint settings.
type CMCConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`  // 0 leaves the http.Client default
	Currency string        `mapstructure:"currency"` // quote sub-object read from each asset, e.g. "USD"
}

type ExportConfig struct {
	Output    string `mapstructure:"output"`
	SheetName string `mapstructure:"sheet_name"`
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

const (
	DefaultBaseURL = "https://pro-api.coinmarketcap.com"
	DefaultOutput  = "crypto_table.xlsx"
)

// Load loads application configuration using Viper.
// It reads config.yaml when present and overrides with environment variables.
// A non-empty path must point to a readable config file.
func Load(path string) (*Config, error) {
	// .env is optional; variables already set in the process win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config") // config.yaml
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
		}
	}

	// Support environment variables with dot notation (e.g., CMC_BASE_URL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("cmc.api_key", "API_KEY", "CMC_PRO_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cmc.base_url", DefaultBaseURL)
	v.SetDefault("cmc.timeout", time.Duration(0))
	v.SetDefault("cmc.currency", "USD")

	v.SetDefault("export.output", DefaultOutput)
	v.SetDefault("export.sheet_name", "Sheet1")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_file", "")
	v.SetDefault("log.environment", "dev")
}
