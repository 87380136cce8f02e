package tally

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// MasterExtractor extracts master data (stock items and parties) from Tally.
type MasterExtractor struct {
	baseExtractor
}

// NewMasterExtractor creates a master data extractor.
func NewMasterExtractor(conn *Connection, batchSize int, logger *zap.Logger) *MasterExtractor {
	return &MasterExtractor{newBaseExtractor(conn, batchSize, logger)}
}

// Extract fetches stock items and parties. Masters are not date-filtered;
// either category can be skipped via options.
func (e *MasterExtractor) Extract(ctx context.Context, opts connector.ExtractOptions) ([]connector.RawRecord, error) {
	var records []connector.RawRecord

	if !opts.SkipItems {
		items, err := e.extractStockItems(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, items...)
		e.logger.Info("extracted stock items from Tally", zap.Int("count", len(items)))
	}

	if !opts.SkipParties {
		parties, err := e.extractParties(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, parties...)
		e.logger.Info("extracted parties from Tally", zap.Int("count", len(parties)))
	}

	return records, nil
}

// extractStockItems fetches all stock items from the Stock Items report.
func (e *MasterExtractor) extractStockItems(ctx context.Context) ([]connector.RawRecord, error) {
	doc, err := e.conn.ExportCollection(ctx, ExportRequest{
		Collection: "Stock Items",
		ReportName: "Stock Items",
	})
	if err != nil {
		return nil, err
	}

	items, err := collectElements[stockItemXML](doc, "STOCKITEM")
	if err != nil {
		return nil, connector.WrapRequestError(err)
	}

	records := make([]connector.RawRecord, 0, len(items))
	for i := range items {
		item := &items[i]
		name := item.name()
		if name == "" {
			name = "unknown"
		}
		records = append(records, connector.RawRecord{
			Type: connector.RecordTypeStockItem,
			Fields: map[string]any{
				"name":             name,
				"alias":            item.Alias,
				"parent":           item.Parent,
				"uom":              item.BaseUnits,
				"opening_balance":  parseFloat(item.OpeningQty, 0),
				"opening_rate":     parseFloat(item.OpeningRate, 0),
				"opening_value":    parseFloat(item.OpeningVal, 0),
				"is_batch_enabled": parseBool(item.BatchWiseOn),
				"gst_applicable":   parseBool(item.GSTOn),
				"hsn_code":         item.HSNCode,
				"description":      item.Description,
			},
		})
	}
	return e.truncate(records), nil
}

// extractParties fetches all sundry debtors and creditors from the Ledger
// report. Customer/supplier flags derive from the parent group name.
func (e *MasterExtractor) extractParties(ctx context.Context) ([]connector.RawRecord, error) {
	doc, err := e.conn.ExportCollection(ctx, ExportRequest{
		Collection: "Ledgers",
		ReportName: "Ledger",
		Filters:    map[string]string{"PARENT": "Sundry Debtors,Sundry Creditors"},
	})
	if err != nil {
		return nil, err
	}

	ledgers, err := collectElements[ledgerXML](doc, "LEDGER")
	if err != nil {
		return nil, connector.WrapRequestError(err)
	}

	records := make([]connector.RawRecord, 0, len(ledgers))
	for i := range ledgers {
		ledger := &ledgers[i]
		name := ledger.name()
		if name == "" {
			name = "unknown"
		}
		parent := ledger.Parent
		lowerParent := strings.ToLower(parent)
		records = append(records, connector.RawRecord{
			Type: connector.RecordTypeParty,
			Fields: map[string]any{
				"name":            name,
				"parent":          parent,
				"address":         ledger.Address,
				"state":           ledger.CountryName,
				"country":         ledger.Contact,
				"mobile":          ledger.Mobile,
				"email":           ledger.Email,
				"gstin":           ledger.GSTIN,
				"pan":             ledger.PAN,
				"credit_limit":    parseFloat(ledger.CreditLimit, 0),
				"credit_days":     int(parseFloat(ledger.CreditPeriod, 0)),
				"is_customer":     strings.Contains(lowerParent, "debtor"),
				"is_supplier":     strings.Contains(lowerParent, "creditor"),
				"opening_balance": parseFloat(ledger.OpeningBalance, 0),
			},
		})
	}
	return e.truncate(records), nil
}

// Ensure MasterExtractor implements the Extractor interface
var _ connector.Extractor = (*MasterExtractor)(nil)
