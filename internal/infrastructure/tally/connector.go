package tally

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// Connector implements the ErpConnector port for Tally Prime. It owns one
// gateway session and orchestrates per-type extraction, transformation and
// sync statistics.
//
// Usage:
//
//	cfg := tally.NewConnectorConfig("my-tally", tally.NewConnectionConfig("localhost", 9000))
//	conn, err := tally.NewConnector(cfg, logger)
//	if err := conn.Connect(ctx); err != nil { ... }
//	defer conn.Disconnect()
//	result, err := conn.Sync(ctx, connector.SyncRequest{FromDate: "20240101", ToDate: "20240131"})
type Connector struct {
	config *ConnectorConfig
	conn   *Connection
	logger *zap.Logger

	// Transformers are explicit values, not a hidden registry: they are
	// constructed here and dispatched per data type.
	masters      *MasterTransformer
	transactions *TransactionTransformer
}

// NewConnector creates a Tally connector from the given configuration.
func NewConnector(config *ConnectorConfig, logger *zap.Logger) (*Connector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := NewConnection(config.Connection, logger)
	if err != nil {
		return nil, err
	}
	return &Connector{
		config:       config,
		conn:         conn,
		logger:       logger,
		masters:      NewMasterTransformer(logger),
		transactions: NewTransactionTransformer(logger),
	}, nil
}

// ---------------------------------------------------------------------------
// ErpConnector interface
// ---------------------------------------------------------------------------

// Connect establishes the gateway session.
func (c *Connector) Connect(ctx context.Context) error {
	return c.conn.Connect(ctx)
}

// Disconnect closes the gateway session.
func (c *Connector) Disconnect() {
	c.conn.Disconnect()
}

// ValidateConnection probes gateway liveness with a ping. A session can be
// connected by flag yet fail a live ping if the remote restarted.
func (c *Connector) ValidateConnection(ctx context.Context) bool {
	return c.conn.Ping(ctx)
}

// FetchData extracts raw records for a single data type keyword: "masters",
// "ledgers", "vouchers", "inventory" or "all".
func (c *Connector) FetchData(ctx context.Context, query string) ([]connector.RawRecord, error) {
	if !c.conn.IsConnected() {
		return nil, fmt.Errorf("%w: call Connect first", connector.ErrNotConnected)
	}

	dataType := connector.DataType(strings.ToLower(strings.TrimSpace(query)))
	if !dataType.IsValid() {
		return nil, fmt.Errorf("%w: %q", connector.ErrUnknownDataType, query)
	}

	var records []connector.RawRecord
	for _, t := range connector.ExpandDataTypes([]connector.DataType{dataType}) {
		raw, err := c.extractByType(ctx, t, connector.ExtractOptions{})
		if err != nil {
			return nil, err
		}
		records = append(records, raw...)
	}
	return records, nil
}

// FetchAll extracts and transforms the requested data types. A failure on
// one type is logged and surfaced in the result's TypeErrors without
// blocking the other types.
func (c *Connector) FetchAll(ctx context.Context, opts connector.FetchOptions) (*connector.FetchResult, error) {
	if !c.conn.IsConnected() {
		return nil, fmt.Errorf("%w: call Connect first", connector.ErrNotConnected)
	}

	types := opts.DataTypes
	if len(types) == 0 {
		types = c.config.DataTypes
	}
	types = connector.ExpandDataTypes(types)

	result := &connector.FetchResult{
		TypeErrors: make(map[connector.DataType]string),
	}
	extractOpts := connector.ExtractOptions{FromDate: opts.FromDate, ToDate: opts.ToDate}

	for _, dataType := range types {
		raw, err := c.extractByType(ctx, dataType, extractOpts)
		if err != nil {
			c.logger.Error("error extracting Tally data",
				zap.String("data_type", dataType.String()),
				zap.Error(err))
			result.TypeErrors[dataType] = err.Error()
			continue
		}

		transformed := c.transformerFor(dataType).TransformBatch(raw)
		result.Records = append(result.Records, transformed...)
		c.logger.Info("extracted and transformed records",
			zap.String("data_type", dataType.String()),
			zap.Int("count", len(transformed)))
	}

	return result, nil
}

// Sync runs a complete sync operation and returns records plus statistics.
// Full mode discards the caller's date window to force a complete resync;
// incremental mode honors it.
func (c *Connector) Sync(ctx context.Context, req connector.SyncRequest) (*connector.SyncResult, error) {
	mode := req.Mode
	if mode == "" {
		mode = c.config.SyncMode
	}
	startedAt := time.Now().UTC()

	c.logger.Info("starting Tally sync",
		zap.String("mode", mode.String()),
		zap.String("connector", c.config.Name))

	fromDate, toDate := req.FromDate, req.ToDate
	if mode == connector.SyncModeFull {
		fromDate, toDate = "", ""
	}

	result, err := c.FetchAll(ctx, connector.FetchOptions{
		FromDate:  fromDate,
		ToDate:    toDate,
		DataTypes: req.DataTypes,
	})
	if err != nil {
		return nil, err
	}

	duration := time.Since(startedAt).Seconds()
	stats := ComputeStats(result.Records, duration)
	stats.TypeErrors = result.TypeErrors

	c.logger.Info("Tally sync completed",
		zap.Float64("duration_seconds", stats.DurationSeconds),
		zap.Int("total_records", stats.TotalRecords))

	return &connector.SyncResult{
		JobID:     uuid.New(),
		Mode:      mode,
		StartedAt: startedAt,
		Records:   result.Records,
		Stats:     stats,
	}, nil
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// extractByType dispatches extraction to the extractor for a concrete data
// type. Extractors are constructed per call; they hold no state beyond the
// shared connection.
func (c *Connector) extractByType(ctx context.Context, dataType connector.DataType, opts connector.ExtractOptions) ([]connector.RawRecord, error) {
	batchSize := c.config.BatchSize

	switch dataType {
	case connector.DataTypeMasters:
		return NewMasterExtractor(c.conn, batchSize, c.logger).Extract(ctx, opts)
	case connector.DataTypeLedgers:
		return NewLedgerExtractor(c.conn, batchSize, c.logger).Extract(ctx, opts)
	case connector.DataTypeVouchers:
		return NewVoucherExtractor(c.conn, batchSize, c.logger).Extract(ctx, opts)
	case connector.DataTypeInventory:
		return NewInventoryExtractor(c.conn, batchSize, c.logger).Extract(ctx, opts)
	default:
		return nil, fmt.Errorf("%w: %q", connector.ErrUnknownDataType, dataType)
	}
}

// transformerFor selects the transformer for a data type. Masters use the
// master transformer; ledgers, vouchers and inventory all use the
// transaction transformer.
func (c *Connector) transformerFor(dataType connector.DataType) connector.Transformer {
	if dataType == connector.DataTypeMasters {
		return c.masters
	}
	return c.transactions
}

// ComputeStats computes aggregate sync statistics from transformed records.
func ComputeStats(records []connector.UnifiedRecord, durationSeconds float64) connector.SyncStats {
	counts := make(map[connector.UnifiedType]int)
	for _, record := range records {
		counts[record.Type]++
	}
	return connector.SyncStats{
		TotalRecords:    len(records),
		DurationSeconds: math.Round(durationSeconds*1000) / 1000,
		ByType:          counts,
	}
}

// Ensure Connector implements the ErpConnector interface
var _ connector.ErpConnector = (*Connector)(nil)
