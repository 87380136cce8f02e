package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App   AppConfig
	Log   LogConfig
	Tally TallyConfig
	Sync  SyncConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// TallyConfig holds Tally gateway connection settings
type TallyConfig struct {
	Host        string
	Port        int
	CompanyName string
	Username    string
	Password    string
	Timeout     time.Duration
	UseSSL      bool
}

// SyncConfig holds sync run settings
type SyncConfig struct {
	Mode      string   // full, incremental
	DataTypes []string // masters, ledgers, vouchers, inventory, all
	BatchSize int
	FromDate  string // YYYYMMDD
	ToDate    string // YYYYMMDD
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with OPS_ prefix (e.g., OPS_TALLY_HOST)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("OPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Tally: TallyConfig{
			Host:        v.GetString("tally.host"),
			Port:        v.GetInt("tally.port"),
			CompanyName: v.GetString("tally.company_name"),
			Username:    v.GetString("tally.username"),
			Password:    v.GetString("tally.password"),
			Timeout:     v.GetDuration("tally.timeout"),
			UseSSL:      v.GetBool("tally.use_ssl"),
		},
		Sync: SyncConfig{
			Mode:      v.GetString("sync.mode"),
			DataTypes: v.GetStringSlice("sync.data_types"),
			BatchSize: v.GetInt("sync.batch_size"),
			FromDate:  v.GetString("sync.from_date"),
			ToDate:    v.GetString("sync.to_date"),
		},
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "tallysync"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Tally.Host == "" {
		cfg.Tally.Host = "localhost"
	}
	if cfg.Tally.Port == 0 {
		cfg.Tally.Port = 9000
	}
	if cfg.Tally.Timeout == 0 {
		cfg.Tally.Timeout = 30 * time.Second
	}
	if cfg.Sync.Mode == "" {
		cfg.Sync.Mode = "full"
	}
	if len(cfg.Sync.DataTypes) == 0 {
		cfg.Sync.DataTypes = []string{"all"}
	}
	if cfg.Sync.BatchSize == 0 {
		cfg.Sync.BatchSize = 500
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Tally.Port < 1 || c.Tally.Port > 65535 {
		return fmt.Errorf("tally.port must be between 1 and 65535, got %d", c.Tally.Port)
	}
	if c.Sync.Mode != "full" && c.Sync.Mode != "incremental" {
		return fmt.Errorf("sync.mode must be 'full' or 'incremental', got %q", c.Sync.Mode)
	}
	if c.Sync.BatchSize < 1 {
		return fmt.Errorf("sync.batch_size must be positive, got %d", c.Sync.BatchSize)
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Tally.UseSSL && c.Tally.Host == "localhost" {
			return fmt.Errorf("tally.host must be set explicitly when use_ssl is enabled in production")
		}
	}

	return nil
}
