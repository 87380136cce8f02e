package tally

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// maxResponseSize is the maximum allowed response size from the gateway (32MB).
// Tally exports whole reports in a single exchange, so bodies can be large.
const maxResponseSize = 32 * 1024 * 1024

// pingBody is the minimal well-formed export used as a liveness probe.
const pingBody = "<EXPORT><EXPORTDATA><REQUESTDESC><REPORTNAME>List of Companies</REPORTNAME></REQUESTDESC></EXPORTDATA></EXPORT>"

// Connection manages one HTTP session to the Tally XML gateway.
//
// Exchanges are strictly sequential; a Connection is not safe for concurrent
// use. Calling Connect on an already-connected Connection re-opens the client.
type Connection struct {
	config     *ConnectionConfig
	logger     *zap.Logger
	httpClient *http.Client
	connected  bool
}

// NewConnection creates a connection manager for the given configuration.
func NewConnection(config *ConnectionConfig, logger *zap.Logger) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connection{
		config: config,
		logger: logger,
	}, nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Connect opens the HTTP client and verifies gateway reachability with a
// liveness ping, failing fast when the gateway does not respond.
func (c *Connection) Connect(ctx context.Context) error {
	c.httpClient = &http.Client{Timeout: c.config.Timeout}
	if !c.Ping(ctx) {
		c.connected = false
		return fmt.Errorf("%w: gateway at %s did not respond to ping",
			connector.ErrGatewayUnreachable, c.config.BaseURL())
	}
	c.connected = true
	c.logger.Info("connected to Tally gateway", zap.String("base_url", c.config.BaseURL()))
	return nil
}

// Disconnect closes the session; a no-op when already disconnected.
func (c *Connection) Disconnect() {
	if c.httpClient == nil && !c.connected {
		return
	}
	c.httpClient = nil
	c.connected = false
	c.logger.Info("disconnected from Tally gateway")
}

// IsConnected reports whether the session is currently open.
func (c *Connection) IsConnected() bool {
	return c.connected
}

// Ping sends a trivial well-formed export request and reports HTTP success.
// Transport and timeout failures return false rather than an error; Ping is
// purely a health signal.
func (c *Connection) Ping(ctx context.Context) bool {
	if c.httpClient == nil {
		return false
	}
	payload := buildEnvelope(requestTypeExport, pingBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL()+"/", strings.NewReader(payload))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
	return resp.StatusCode == http.StatusOK
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// PostXML sends a raw XML payload to the gateway and returns the raw XML
// response. Requires a prior Connect.
func (c *Connection) PostXML(ctx context.Context, payload string) (string, error) {
	if !c.connected || c.httpClient == nil {
		return "", fmt.Errorf("%w: call Connect first", connector.ErrNotConnected)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL()+"/", strings.NewReader(payload))
	if err != nil {
		return "", connector.WrapRequestError(err)
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", connector.WrapRequestError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", connector.WrapRequestError(fmt.Errorf("read gateway response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", connector.NewRequestError(resp.StatusCode, string(body))
	}
	return string(body), nil
}

// ExportCollection posts an export request for a named collection and parses
// the textual response into a navigable document.
func (c *Connection) ExportCollection(ctx context.Context, req ExportRequest) (*Document, error) {
	payload := buildExportEnvelope(c.config, req)

	raw, err := c.PostXML(ctx, payload)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument([]byte(raw))
	if err != nil {
		return nil, connector.WrapRequestError(fmt.Errorf("parse gateway XML response: %w", err))
	}
	c.logger.Debug("exported collection",
		zap.String("collection", req.Collection),
		zap.String("report", req.ReportName))
	return doc, nil
}
