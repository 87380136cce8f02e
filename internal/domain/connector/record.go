package connector

// ---------------------------------------------------------------------------
// RecordType represents the type of a raw source record
// ---------------------------------------------------------------------------

// RecordType identifies the category of a raw record produced by an extractor.
type RecordType string

const (
	// RecordTypeStockItem is a stock item (SKU) master record
	RecordTypeStockItem RecordType = "stock_item"
	// RecordTypeParty is a customer/supplier master record
	RecordTypeParty RecordType = "party"
	// RecordTypeLedger is a ledger account record
	RecordTypeLedger RecordType = "ledger"
	// RecordTypeVoucher is a transaction voucher record
	RecordTypeVoucher RecordType = "voucher"
	// RecordTypeInventoryMovement is a stock movement derived from a voucher
	RecordTypeInventoryMovement RecordType = "inventory_movement"
	// RecordTypeStockBalance is a point-in-time stock balance record
	RecordTypeStockBalance RecordType = "stock_balance"
)

// IsValid returns true if the record type is valid
func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeStockItem, RecordTypeParty, RecordTypeLedger,
		RecordTypeVoucher, RecordTypeInventoryMovement, RecordTypeStockBalance:
		return true
	default:
		return false
	}
}

// String returns the string representation of RecordType
func (t RecordType) String() string {
	return string(t)
}

// ---------------------------------------------------------------------------
// UnifiedType represents the type of a normalized record
// ---------------------------------------------------------------------------

// UnifiedType identifies the category of a record in the unified schema.
type UnifiedType string

const (
	// UnifiedTypeItem is a normalized product/SKU record
	UnifiedTypeItem UnifiedType = "item"
	// UnifiedTypeParty is a normalized customer/supplier record
	UnifiedTypeParty UnifiedType = "party"
	// UnifiedTypeLedger is a normalized ledger account record
	UnifiedTypeLedger UnifiedType = "ledger"
	// UnifiedTypeTransaction is a normalized transaction record
	UnifiedTypeTransaction UnifiedType = "transaction"
	// UnifiedTypeInventoryMovement is a normalized stock movement record
	UnifiedTypeInventoryMovement UnifiedType = "inventory_movement"
	// UnifiedTypeStockBalance is a normalized stock balance record
	UnifiedTypeStockBalance UnifiedType = "stock_balance"
)

// IsValid returns true if the unified type is valid
func (t UnifiedType) IsValid() bool {
	switch t {
	case UnifiedTypeItem, UnifiedTypeParty, UnifiedTypeLedger,
		UnifiedTypeTransaction, UnifiedTypeInventoryMovement, UnifiedTypeStockBalance:
		return true
	default:
		return false
	}
}

// String returns the string representation of UnifiedType
func (t UnifiedType) String() string {
	return string(t)
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// RawRecord is a loosely-typed record as extracted from the source system.
// Fields hold the source field values keyed by normalized field name; the
// shape varies per record type and is transient within one extraction call.
type RawRecord struct {
	// Type tags the category of this record
	Type RecordType
	// Fields holds the extracted field values
	Fields map[string]any
}

// Text returns the string value of a field, or empty string if absent
// or not a string.
func (r RawRecord) Text(key string) string {
	if v, ok := r.Fields[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the float64 value of a field, or 0 if absent or not numeric.
func (r RawRecord) Float(key string) float64 {
	switch v := r.Fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Bool returns the bool value of a field, or false if absent or not a bool.
func (r RawRecord) Bool(key string) bool {
	if v, ok := r.Fields[key].(bool); ok {
		return v
	}
	return false
}

// UnifiedRecord is a record normalized into the platform's unified schema.
// Numeric fields are always float64 and natural keys are slugified; the
// originating raw record is retained for traceability.
type UnifiedRecord struct {
	// Type tags the unified category of this record
	Type UnifiedType
	// SourceID is the natural key of the record in the source system
	SourceID string
	// Fields holds the normalized field values
	Fields map[string]any
	// Raw is the originating raw record
	Raw RawRecord
}
