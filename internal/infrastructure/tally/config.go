package tally

import (
	"errors"
	"fmt"
	"time"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// Errors for Tally configuration
var (
	ErrConfigMissingHost    = errors.New("tally: host is required")
	ErrConfigInvalidPort    = errors.New("tally: port must be between 1 and 65535")
	ErrConfigMissingName    = errors.New("tally: connector name is required")
	ErrConfigInvalidBatch   = errors.New("tally: batch size must be between 1 and 5000")
	ErrConfigInvalidMode    = errors.New("tally: invalid sync mode")
	ErrConfigInvalidType    = errors.New("tally: invalid data type")
	ErrConfigInvalidTimeout = errors.New("tally: timeout must be positive")
)

const (
	// DefaultPort is the port Tally's HTTP gateway listens on
	DefaultPort = 9000
	// DefaultTimeout is the per-request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultBatchSize is the maximum records returned per extraction call
	DefaultBatchSize = 500
	// maxBatchSize bounds caller-supplied batch sizes
	maxBatchSize = 5000
)

// ConnectionConfig holds the parameters of one Tally gateway session.
type ConnectionConfig struct {
	// Host is the Tally server hostname or IP
	Host string
	// Port is the Tally HTTP gateway port
	Port int
	// CompanyName scopes exports to a Tally company when set
	CompanyName string
	// Username for gateway auth, if enabled on the Tally side
	Username string
	// Password for gateway auth, if enabled on the Tally side
	Password string
	// Timeout is the per-request timeout
	Timeout time.Duration
	// UseSSL selects https for the gateway URL
	UseSSL bool
}

// NewConnectionConfig creates a connection configuration with defaults.
func NewConnectionConfig(host string, port int) *ConnectionConfig {
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = DefaultPort
	}
	return &ConnectionConfig{
		Host:    host,
		Port:    port,
		Timeout: DefaultTimeout,
	}
}

// Validate validates the connection configuration and applies defaults.
func (c *ConnectionConfig) Validate() error {
	if c.Host == "" {
		return ErrConfigMissingHost
	}
	if c.Port < 1 || c.Port > 65535 {
		return ErrConfigInvalidPort
	}
	if c.Timeout < 0 {
		return ErrConfigInvalidTimeout
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// BaseURL derives the gateway base URL from the configuration.
func (c *ConnectionConfig) BaseURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}

// ConnectorConfig is the full configuration of one Tally connector instance.
type ConnectorConfig struct {
	// Name uniquely identifies this connector
	Name string
	// Connection holds the gateway session parameters
	Connection *ConnectionConfig
	// DataTypes are the data types extracted by default
	DataTypes []connector.DataType
	// SyncMode is the default sync mode
	SyncMode connector.SyncMode
	// BatchSize caps records per extraction call
	BatchSize int
}

// NewConnectorConfig creates a connector configuration with defaults.
func NewConnectorConfig(name string, conn *ConnectionConfig) *ConnectorConfig {
	return &ConnectorConfig{
		Name:       name,
		Connection: conn,
		DataTypes:  []connector.DataType{connector.DataTypeAll},
		SyncMode:   connector.SyncModeIncremental,
		BatchSize:  DefaultBatchSize,
	}
}

// Validate validates the connector configuration and applies defaults.
func (c *ConnectorConfig) Validate() error {
	if c.Name == "" {
		return ErrConfigMissingName
	}
	if c.Connection == nil {
		c.Connection = NewConnectionConfig("", 0)
	}
	if err := c.Connection.Validate(); err != nil {
		return err
	}
	if len(c.DataTypes) == 0 {
		c.DataTypes = []connector.DataType{connector.DataTypeAll}
	}
	for _, t := range c.DataTypes {
		if !t.IsValid() {
			return fmt.Errorf("%w: %q", ErrConfigInvalidType, t)
		}
	}
	if c.SyncMode == "" {
		c.SyncMode = connector.SyncModeIncremental
	}
	if !c.SyncMode.IsValid() {
		return fmt.Errorf("%w: %q", ErrConfigInvalidMode, c.SyncMode)
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BatchSize < 1 || c.BatchSize > maxBatchSize {
		return ErrConfigInvalidBatch
	}
	return nil
}
