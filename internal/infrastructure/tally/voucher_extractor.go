package tally

import (
	"context"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// defaultVoucherTypes are the voucher types extracted when the caller does
// not supply a filter.
var defaultVoucherTypes = []string{
	"Sales",
	"Purchase",
	"Receipt",
	"Payment",
	"Journal",
	"Contra",
	"Credit Note",
	"Debit Note",
}

// VoucherExtractor extracts transaction vouchers from Tally.
type VoucherExtractor struct {
	baseExtractor
}

// NewVoucherExtractor creates a voucher extractor.
func NewVoucherExtractor(conn *Connection, batchSize int, logger *zap.Logger) *VoucherExtractor {
	return &VoucherExtractor{newBaseExtractor(conn, batchSize, logger)}
}

// Extract fetches vouchers in the date window, filtered to the default or
// caller-supplied voucher type set, stopping once the batch size is reached.
func (e *VoucherExtractor) Extract(ctx context.Context, opts connector.ExtractOptions) ([]connector.RawRecord, error) {
	voucherTypes := opts.VoucherTypes
	if voucherTypes == nil {
		voucherTypes = defaultVoucherTypes
	}
	wanted := make(map[string]bool, len(voucherTypes))
	for _, t := range voucherTypes {
		wanted[t] = true
	}

	doc, err := e.conn.ExportCollection(ctx, ExportRequest{
		Collection: "Vouchers",
		ReportName: "Voucher Register",
		FromDate:   opts.FromDate,
		ToDate:     opts.ToDate,
	})
	if err != nil {
		return nil, err
	}

	vouchers, err := collectElements[voucherXML](doc, "VOUCHER")
	if err != nil {
		return nil, connector.WrapRequestError(err)
	}

	var records []connector.RawRecord
	for i := range vouchers {
		voucher := &vouchers[i]
		if len(wanted) > 0 && !wanted[voucher.TypeName] {
			continue
		}

		records = append(records, connector.RawRecord{
			Type: connector.RecordTypeVoucher,
			Fields: map[string]any{
				"voucher_number":    voucher.number(),
				"voucher_type":      voucher.TypeName,
				"date":              voucher.Date,
				"party_name":        voucher.PartyLedgerName,
				"narration":         voucher.Narration,
				"reference":         voucher.Reference,
				"amount":            parseFloat(voucher.Amount, 0),
				"ledger_entries":    extractLedgerEntries(voucher),
				"inventory_entries": extractInventoryEntries(voucher),
				"is_cancelled":      parseBool(voucher.IsCancelled),
				"guid":              voucher.GUIDAttr,
			},
		})

		if len(records) >= e.batchSize {
			break
		}
	}

	e.logger.Info("extracted vouchers from Tally", zap.Int("count", len(records)))
	return records, nil
}

// extractLedgerEntries parses the ledger line items of one voucher.
func extractLedgerEntries(voucher *voucherXML) []map[string]any {
	entries := make([]map[string]any, 0, len(voucher.LedgerEntries))
	for _, entry := range voucher.LedgerEntries {
		entries = append(entries, map[string]any{
			"ledger_name": entry.LedgerName,
			"amount":      parseFloat(entry.Amount, 0),
			"cost_centre": entry.CostCentre,
			"narration":   entry.Narration,
		})
	}
	return entries
}

// extractInventoryEntries parses the inventory line items of one voucher.
// ACTUALQTY arrives as "<qty> <uom>"; the unit is split off the tail.
func extractInventoryEntries(voucher *voucherXML) []map[string]any {
	entries := make([]map[string]any, 0, len(voucher.InventoryEntries))
	for _, entry := range voucher.InventoryEntries {
		_, uom := splitQuantity(entry.ActualQty)
		entries = append(entries, map[string]any{
			"item_name":  entry.StockItemName,
			"quantity":   parseFloat(entry.ActualQty, 0),
			"rate":       parseFloat(entry.Rate, 0),
			"amount":     parseFloat(entry.Amount, 0),
			"uom":        uom,
			"batch_name": entry.BatchName,
		})
	}
	return entries
}

// Ensure VoucherExtractor implements the Extractor interface
var _ connector.Extractor = (*VoucherExtractor)(nil)
