package tally

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// inwardVoucherTypes are the voucher types that increase stock.
var inwardVoucherTypes = map[string]bool{
	"Purchase":      true,
	"Receipt Note":  true,
	"Sales Return":  true,
	"Stock Journal": true,
}

// InventoryExtractor extracts stock movements and current stock balances
// from Tally.
type InventoryExtractor struct {
	baseExtractor
}

// NewInventoryExtractor creates an inventory extractor.
func NewInventoryExtractor(conn *Connection, batchSize int, logger *zap.Logger) *InventoryExtractor {
	return &InventoryExtractor{newBaseExtractor(conn, batchSize, logger)}
}

// Extract fetches stock movements (voucher-level) and point-in-time stock
// balances; either stream can be skipped via options.
func (e *InventoryExtractor) Extract(ctx context.Context, opts connector.ExtractOptions) ([]connector.RawRecord, error) {
	var records []connector.RawRecord

	if !opts.SkipMovements {
		movements, err := e.extractMovements(ctx, opts.FromDate, opts.ToDate)
		if err != nil {
			return nil, err
		}
		records = append(records, movements...)
		e.logger.Info("extracted inventory movements from Tally", zap.Int("count", len(movements)))
	}

	if !opts.SkipBalances {
		balances, err := e.extractStockBalances(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, balances...)
		e.logger.Info("extracted stock balance records from Tally", zap.Int("count", len(balances)))
	}

	return records, nil
}

// extractMovements derives movement records from voucher inventory entries,
// tagging each as inward or outward by voucher type.
func (e *InventoryExtractor) extractMovements(ctx context.Context, fromDate, toDate string) ([]connector.RawRecord, error) {
	doc, err := e.conn.ExportCollection(ctx, ExportRequest{
		Collection: "Vouchers",
		ReportName: "Inventory Vouchers",
		FromDate:   fromDate,
		ToDate:     toDate,
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
		for _, entry := range voucher.InventoryEntries {
			if entry.StockItemName == "" {
				continue
			}
			qtyText, uom := splitQuantity(entry.ActualQty)
			qty := parseFloat(qtyText, 0)

			records = append(records, connector.RawRecord{
				Type: connector.RecordTypeInventoryMovement,
				Fields: map[string]any{
					"item_name":      entry.StockItemName,
					"voucher_number": voucher.Number,
					"voucher_type":   voucher.TypeName,
					"date":           voucher.Date,
					"quantity":       math.Abs(qty),
					"rate":           parseFloat(entry.Rate, 0),
					"uom":            uom,
					"batch_name":     entry.BatchName,
					"godown":         entry.GodownName,
					"is_inward":      inwardVoucherTypes[voucher.TypeName],
					"net_value":      parseFloat(entry.Amount, 0),
				},
			})
		}

		if len(records) >= e.batchSize {
			break
		}
	}
	return records, nil
}

// extractStockBalances fetches current closing stock from the Stock Summary
// report.
func (e *InventoryExtractor) extractStockBalances(ctx context.Context) ([]connector.RawRecord, error) {
	doc, err := e.conn.ExportCollection(ctx, ExportRequest{
		Collection: "Stock Items",
		ReportName: "Stock Summary",
	})
	if err != nil {
		return nil, err
	}

	items, err := collectElements[stockItemXML](doc, "STOCKITEM")
	if err != nil {
		return nil, connector.WrapRequestError(err)
	}

	var records []connector.RawRecord
	for i := range items {
		item := &items[i]
		name := item.name()
		if name == "" {
			continue
		}
		records = append(records, connector.RawRecord{
			Type: connector.RecordTypeStockBalance,
			Fields: map[string]any{
				"item_name": name,
				"godown":    item.GodownName,
				"quantity":  parseFloat(item.ClosingQty, 0),
				"rate":      parseFloat(item.ClosingRate, 0),
				"value":     parseFloat(item.ClosingVal, 0),
				"uom":       item.BaseUnits,
			},
		})
	}
	return e.truncate(records), nil
}

// Ensure InventoryExtractor implements the Extractor interface
var _ connector.Extractor = (*InventoryExtractor)(nil)
