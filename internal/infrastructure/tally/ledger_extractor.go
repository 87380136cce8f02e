package tally

import (
	"context"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// LedgerExtractor extracts ledger accounts and their balances from Tally.
type LedgerExtractor struct {
	baseExtractor
}

// NewLedgerExtractor creates a ledger account extractor.
func NewLedgerExtractor(conn *Connection, batchSize int, logger *zap.Logger) *LedgerExtractor {
	return &LedgerExtractor{newBaseExtractor(conn, batchSize, logger)}
}

// Extract fetches all ledger accounts. The optional date window scopes
// balance calculation on the Tally side.
func (e *LedgerExtractor) Extract(ctx context.Context, opts connector.ExtractOptions) ([]connector.RawRecord, error) {
	doc, err := e.conn.ExportCollection(ctx, ExportRequest{
		Collection: "Ledgers",
		ReportName: "Ledger",
		FromDate:   opts.FromDate,
		ToDate:     opts.ToDate,
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
		records = append(records, connector.RawRecord{
			Type: connector.RecordTypeLedger,
			Fields: map[string]any{
				"name":               name,
				"parent":             ledger.Parent,
				"opening_balance":    parseFloat(ledger.OpeningBalance, 0),
				"closing_balance":    parseFloat(ledger.ClosingBalance, 0),
				"is_revenue":         parseBool(ledger.IsRevenue),
				"gst_duty_head":      ledger.GSTDutyHead,
				"tax_classification": ledger.TaxClass,
			},
		})
	}

	e.logger.Info("extracted ledger records from Tally", zap.Int("count", len(records)))
	return e.truncate(records), nil
}

// Ensure LedgerExtractor implements the Extractor interface
var _ connector.Extractor = (*LedgerExtractor)(nil)
