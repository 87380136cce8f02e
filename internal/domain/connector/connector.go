package connector

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// DataType represents an extractable data category
// ---------------------------------------------------------------------------

// DataType selects which category of ERP data to extract.
type DataType string

const (
	// DataTypeMasters selects stock item and party master data
	DataTypeMasters DataType = "masters"
	// DataTypeLedgers selects ledger accounts with balances
	DataTypeLedgers DataType = "ledgers"
	// DataTypeVouchers selects transaction vouchers
	DataTypeVouchers DataType = "vouchers"
	// DataTypeInventory selects stock movements and balances
	DataTypeInventory DataType = "inventory"
	// DataTypeAll selects every concrete data type
	DataTypeAll DataType = "all"
)

// IsValid returns true if the data type is valid
func (t DataType) IsValid() bool {
	switch t {
	case DataTypeMasters, DataTypeLedgers, DataTypeVouchers, DataTypeInventory, DataTypeAll:
		return true
	default:
		return false
	}
}

// String returns the string representation of DataType
func (t DataType) String() string {
	return string(t)
}

// ConcreteDataTypes returns the four concrete data types DataTypeAll expands to.
func ConcreteDataTypes() []DataType {
	return []DataType{DataTypeMasters, DataTypeLedgers, DataTypeVouchers, DataTypeInventory}
}

// ExpandDataTypes expands DataTypeAll into the concrete types. Lists without
// DataTypeAll are returned unchanged; an empty list expands to all types.
func ExpandDataTypes(types []DataType) []DataType {
	if len(types) == 0 {
		return ConcreteDataTypes()
	}
	for _, t := range types {
		if t == DataTypeAll {
			return ConcreteDataTypes()
		}
	}
	return types
}

// ---------------------------------------------------------------------------
// SyncMode represents the synchronization strategy
// ---------------------------------------------------------------------------

// SyncMode selects between a complete resync and a date-windowed sync.
type SyncMode string

const (
	// SyncModeFull resyncs everything, discarding any date window
	SyncModeFull SyncMode = "full"
	// SyncModeIncremental honors the caller's date window
	SyncModeIncremental SyncMode = "incremental"
)

// IsValid returns true if the sync mode is valid
func (m SyncMode) IsValid() bool {
	return m == SyncModeFull || m == SyncModeIncremental
}

// String returns the string representation of SyncMode
func (m SyncMode) String() string {
	return string(m)
}

// ---------------------------------------------------------------------------
// Extraction / Transformation Ports
// ---------------------------------------------------------------------------

// ExtractOptions carries the parameters of one extraction call. Dates use the
// source system's native format (YYYYMMDD for Tally). The zero value extracts
// everything the extractor supports.
type ExtractOptions struct {
	// FromDate is the inclusive start date for time-scoped data
	FromDate string
	// ToDate is the inclusive end date for time-scoped data
	ToDate string
	// SkipItems skips stock item extraction (master extractor)
	SkipItems bool
	// SkipParties skips party extraction (master extractor)
	SkipParties bool
	// SkipMovements skips movement extraction (inventory extractor)
	SkipMovements bool
	// SkipBalances skips balance extraction (inventory extractor)
	SkipBalances bool
	// VoucherTypes overrides the default voucher type filter (voucher extractor)
	VoucherTypes []string
}

// Extractor pulls one category of raw records from the ERP source, bounded
// by the extractor's batch size.
type Extractor interface {
	// Extract fetches raw records from the source
	Extract(ctx context.Context, opts ExtractOptions) ([]RawRecord, error)
}

// Transformer maps raw records to the unified schema.
type Transformer interface {
	// Transform maps one raw record to exactly one unified record, or
	// returns an error to signal the record should be dropped
	Transform(record RawRecord) (UnifiedRecord, error)

	// TransformBatch transforms all records, skipping and logging individual
	// failures so one bad record never fails the batch
	TransformBatch(records []RawRecord) []UnifiedRecord
}

// ---------------------------------------------------------------------------
// Fetch / Sync Types
// ---------------------------------------------------------------------------

// FetchOptions carries the parameters of a multi-type fetch.
type FetchOptions struct {
	// FromDate is the inclusive start date (source-native format)
	FromDate string
	// ToDate is the inclusive end date
	ToDate string
	// DataTypes selects which types to fetch; empty or containing
	// DataTypeAll fetches everything
	DataTypes []DataType
}

// FetchResult holds the unified records of a multi-type fetch together with
// the per-type errors that were swallowed to keep other types flowing.
type FetchResult struct {
	// Records are the successfully transformed unified records
	Records []UnifiedRecord
	// TypeErrors maps each failed data type to its error message
	TypeErrors map[DataType]string
}

// SyncRequest describes a sync run.
type SyncRequest struct {
	// Mode overrides the connector's configured sync mode when set
	Mode SyncMode
	// FromDate is the window start (ignored in full mode)
	FromDate string
	// ToDate is the window end (ignored in full mode)
	ToDate string
	// DataTypes overrides the connector's configured data types when set
	DataTypes []DataType
}

// SyncStats summarizes a completed sync run.
type SyncStats struct {
	// TotalRecords is the number of unified records produced
	TotalRecords int `json:"total_records"`
	// DurationSeconds is the wall-clock sync duration, rounded to 3 decimals
	DurationSeconds float64 `json:"duration_seconds"`
	// ByType counts records per unified type
	ByType map[UnifiedType]int `json:"by_type"`
	// TypeErrors maps failed data types to their error messages
	TypeErrors map[DataType]string `json:"type_errors,omitempty"`
}

// SyncResult is the outcome of one sync run.
type SyncResult struct {
	// JobID identifies this sync run
	JobID uuid.UUID
	// Mode is the sync mode that was applied
	Mode SyncMode
	// StartedAt is when the sync began
	StartedAt time.Time
	// Records are the unified records produced
	Records []UnifiedRecord
	// Stats summarizes the run
	Stats SyncStats
}

// ---------------------------------------------------------------------------
// ErpConnector Port Interface
// ---------------------------------------------------------------------------

// ErpConnector defines the port interface for ERP source connectors.
// This interface follows the Ports & Adapters pattern - it's defined in the
// domain layer, and concrete implementations (Tally) are in the
// infrastructure layer.
type ErpConnector interface {
	// Connect establishes the session to the ERP gateway, failing fast
	// when the gateway is unreachable
	Connect(ctx context.Context) error

	// Disconnect closes the session; a no-op when already disconnected
	Disconnect()

	// ValidateConnection probes gateway liveness independently of the
	// connected flag
	ValidateConnection(ctx context.Context) bool

	// FetchData extracts raw records for a single data type keyword
	FetchData(ctx context.Context, query string) ([]RawRecord, error)

	// FetchAll extracts and transforms the requested data types, isolating
	// per-type failures
	FetchAll(ctx context.Context, opts FetchOptions) (*FetchResult, error)

	// Sync runs a complete sync operation and returns records plus stats
	Sync(ctx context.Context, req SyncRequest) (*SyncResult, error)
}
