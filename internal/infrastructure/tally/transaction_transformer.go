package tally

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// TransactionTransformer maps raw voucher, ledger and inventory records to
// the unified schema.
type TransactionTransformer struct {
	baseTransformer
}

// NewTransactionTransformer creates a transaction transformer.
func NewTransactionTransformer(logger *zap.Logger) *TransactionTransformer {
	return &TransactionTransformer{newBaseTransformer(logger)}
}

// Transform maps one raw record to a unified record, dispatching on the
// record type.
func (t *TransactionTransformer) Transform(record connector.RawRecord) (connector.UnifiedRecord, error) {
	switch record.Type {
	case connector.RecordTypeVoucher:
		return t.transformVoucher(record)
	case connector.RecordTypeInventoryMovement:
		return t.transformInventoryMovement(record)
	case connector.RecordTypeStockBalance:
		return t.transformStockBalance(record)
	case connector.RecordTypeLedger:
		return t.transformLedger(record)
	default:
		return connector.UnifiedRecord{}, fmt.Errorf("%w: %q", ErrUnknownRecordType, record.Type)
	}
}

// TransformBatch transforms all records, skipping individual failures.
func (t *TransactionTransformer) TransformBatch(records []connector.RawRecord) []connector.UnifiedRecord {
	return t.transformBatch(records, t.Transform)
}

// transformVoucher maps a Tally voucher to the unified transaction schema,
// flattening ledger and inventory entries into one ordered line item list.
func (t *TransactionTransformer) transformVoucher(record connector.RawRecord) (connector.UnifiedRecord, error) {
	voucherNumber := record.Text("voucher_number")
	if voucherNumber == "" {
		return connector.UnifiedRecord{}, ErrMissingVoucherNumber
	}

	var lineItems []map[string]any
	for _, entry := range entryList(record, "ledger_entries") {
		lineItems = append(lineItems, map[string]any{
			"ledger_name": entry["ledger_name"],
			"amount":      safeFloat(entry["amount"], 0),
			"cost_centre": entry["cost_centre"],
		})
	}
	for _, entry := range entryList(record, "inventory_entries") {
		lineItems = append(lineItems, map[string]any{
			"item_name":  entry["item_name"],
			"quantity":   safeFloat(entry["quantity"], 0),
			"rate":       safeFloat(entry["rate"], 0),
			"amount":     safeFloat(entry["amount"], 0),
			"uom":        entry["uom"],
			"batch_name": entry["batch_name"],
		})
	}

	return connector.UnifiedRecord{
		Type:     connector.UnifiedTypeTransaction,
		SourceID: voucherNumber,
		Fields: map[string]any{
			"transaction_type": record.Text("voucher_type"),
			"transaction_date": normalizeDate(record.Text("date")),
			"party_name":       record.Text("party_name"),
			"amount":           safeFloat(record.Fields["amount"], 0),
			"currency":         "INR",
			"reference":        record.Text("reference"),
			"narration":        record.Text("narration"),
			"line_items":       lineItems,
			"is_cancelled":     record.Bool("is_cancelled"),
		},
		Raw: record,
	}, nil
}

// transformInventoryMovement maps a stock movement to the unified schema.
func (t *TransactionTransformer) transformInventoryMovement(record connector.RawRecord) (connector.UnifiedRecord, error) {
	sourceID := record.Text("voucher_number") + "_" + record.Text("item_name")
	return connector.UnifiedRecord{
		Type:     connector.UnifiedTypeInventoryMovement,
		SourceID: sourceID,
		Fields: map[string]any{
			"item_name":        record.Text("item_name"),
			"voucher_number":   record.Text("voucher_number"),
			"voucher_type":     record.Text("voucher_type"),
			"transaction_date": normalizeDate(record.Text("date")),
			"quantity":         safeFloat(record.Fields["quantity"], 0),
			"rate":             safeFloat(record.Fields["rate"], 0),
			"uom":              record.Text("uom"),
			"batch_name":       record.Text("batch_name"),
			"godown":           record.Text("godown"),
			"is_inward":        record.Bool("is_inward"),
			"net_value":        safeFloat(record.Fields["net_value"], 0),
		},
		Raw: record,
	}, nil
}

// transformStockBalance maps a stock balance to the unified schema.
func (t *TransactionTransformer) transformStockBalance(record connector.RawRecord) (connector.UnifiedRecord, error) {
	godown := record.Text("godown")
	if godown == "" {
		godown = "main"
	}
	return connector.UnifiedRecord{
		Type:     connector.UnifiedTypeStockBalance,
		SourceID: record.Text("item_name") + "_" + godown,
		Fields: map[string]any{
			"item_name": record.Text("item_name"),
			"godown":    record.Text("godown"),
			"quantity":  safeFloat(record.Fields["quantity"], 0),
			"rate":      safeFloat(record.Fields["rate"], 0),
			"value":     safeFloat(record.Fields["value"], 0),
			"uom":       record.Text("uom"),
		},
		Raw: record,
	}, nil
}

// transformLedger maps a ledger account to the unified schema.
func (t *TransactionTransformer) transformLedger(record connector.RawRecord) (connector.UnifiedRecord, error) {
	name := record.Text("name")
	if name == "" {
		return connector.UnifiedRecord{}, fmt.Errorf("%w: ledger", ErrMissingName)
	}
	return connector.UnifiedRecord{
		Type:     connector.UnifiedTypeLedger,
		SourceID: name,
		Fields: map[string]any{
			"ledger_name":     name,
			"parent_group":    record.Text("parent"),
			"opening_balance": safeFloat(record.Fields["opening_balance"], 0),
			"closing_balance": safeFloat(record.Fields["closing_balance"], 0),
			"is_revenue":      record.Bool("is_revenue"),
		},
		Raw: record,
	}, nil
}

// entryList reads a nested line item list from a raw record field.
func entryList(record connector.RawRecord, key string) []map[string]any {
	if entries, ok := record.Fields[key].([]map[string]any); ok {
		return entries
	}
	return nil
}

// Ensure TransactionTransformer implements the Transformer interface
var _ connector.Transformer = (*TransactionTransformer)(nil)
