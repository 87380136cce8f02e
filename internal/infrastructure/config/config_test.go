package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"OPS_APP_NAME":           os.Getenv("OPS_APP_NAME"),
		"OPS_APP_ENV":            os.Getenv("OPS_APP_ENV"),
		"OPS_TALLY_HOST":         os.Getenv("OPS_TALLY_HOST"),
		"OPS_TALLY_PORT":         os.Getenv("OPS_TALLY_PORT"),
		"OPS_TALLY_COMPANY_NAME": os.Getenv("OPS_TALLY_COMPANY_NAME"),
		"OPS_TALLY_TIMEOUT":      os.Getenv("OPS_TALLY_TIMEOUT"),
		"OPS_SYNC_MODE":          os.Getenv("OPS_SYNC_MODE"),
		"OPS_SYNC_BATCH_SIZE":    os.Getenv("OPS_SYNC_BATCH_SIZE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "tallysync", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "localhost", cfg.Tally.Host)
		assert.Equal(t, 9000, cfg.Tally.Port)
		assert.Equal(t, 30*time.Second, cfg.Tally.Timeout)
		assert.Equal(t, "full", cfg.Sync.Mode)
		assert.Equal(t, []string{"all"}, cfg.Sync.DataTypes)
		assert.Equal(t, 500, cfg.Sync.BatchSize)
	})

	t.Run("loads values from environment variables with OPS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("OPS_APP_NAME", "test-sync")
		os.Setenv("OPS_APP_ENV", "testing")
		os.Setenv("OPS_TALLY_HOST", "tally.local")
		os.Setenv("OPS_TALLY_PORT", "9999")
		os.Setenv("OPS_TALLY_COMPANY_NAME", "Acme Traders")
		os.Setenv("OPS_TALLY_TIMEOUT", "10s")
		os.Setenv("OPS_SYNC_MODE", "incremental")
		os.Setenv("OPS_SYNC_BATCH_SIZE", "100")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-sync", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "tally.local", cfg.Tally.Host)
		assert.Equal(t, 9999, cfg.Tally.Port)
		assert.Equal(t, "Acme Traders", cfg.Tally.CompanyName)
		assert.Equal(t, 10*time.Second, cfg.Tally.Timeout)
		assert.Equal(t, "incremental", cfg.Sync.Mode)
		assert.Equal(t, 100, cfg.Sync.BatchSize)
	})

	t.Run("validates port range", func(t *testing.T) {
		clearEnv()
		os.Setenv("OPS_TALLY_PORT", "70000")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tally.port")
	})

	t.Run("validates sync mode", func(t *testing.T) {
		clearEnv()
		os.Setenv("OPS_SYNC_MODE", "delta")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync.mode")
	})

	t.Run("validates batch size", func(t *testing.T) {
		clearEnv()
		os.Setenv("OPS_SYNC_BATCH_SIZE", "-5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync.batch_size")
	})

	t.Run("zero batch size uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("OPS_SYNC_BATCH_SIZE", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (500) is used
		assert.Equal(t, 500, cfg.Sync.BatchSize)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"OPS_APP_ENV":       os.Getenv("OPS_APP_ENV"),
		"OPS_TALLY_HOST":    os.Getenv("OPS_TALLY_HOST"),
		"OPS_TALLY_USE_SSL": os.Getenv("OPS_TALLY_USE_SSL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("rejects ssl against default host in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("OPS_APP_ENV", "production")
		os.Setenv("OPS_TALLY_USE_SSL", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tally.host")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("OPS_APP_ENV", "production")
		os.Setenv("OPS_TALLY_HOST", "tally.internal.example.com")
		os.Setenv("OPS_TALLY_USE_SSL", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
		assert.True(t, cfg.Tally.UseSSL)
	})
}
