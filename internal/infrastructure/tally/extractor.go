package tally

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// baseExtractor carries the connection, batch bound and logger shared by all
// extractors.
type baseExtractor struct {
	conn      *Connection
	batchSize int
	logger    *zap.Logger
}

func newBaseExtractor(conn *Connection, batchSize int, logger *zap.Logger) baseExtractor {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseExtractor{conn: conn, batchSize: batchSize, logger: logger}
}

// truncate bounds a record slice at the extractor's batch size. The gateway
// has no server-side pagination; local truncation is the only size control.
func (b baseExtractor) truncate(records []connector.RawRecord) []connector.RawRecord {
	if len(records) > b.batchSize {
		return records[:b.batchSize]
	}
	return records
}

// ---------------------------------------------------------------------------
// Defensive field parsing shared by all extractors
// ---------------------------------------------------------------------------

// parseFloat parses a Tally numeric string, stripping thousands separators.
// Unparsable text falls back to def; parsing never fails hard because the
// gateway routinely emits blank or decorated numbers.
func parseFloat(s string, def float64) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	f, _ := d.Float64()
	return f
}

// parseBool parses a Tally boolean string. Tally represents booleans as
// "Yes"/"No" or "TRUE"/"FALSE"; anything outside {yes, true, 1} is false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

// splitQuantity splits a Tally quantity string like "5 Nos" into its numeric
// part and unit of measure. Either part may be empty.
func splitQuantity(s string) (qty string, uom string) {
	parts := strings.Fields(s)
	if len(parts) > 0 {
		qty = parts[0]
	}
	if len(parts) > 1 {
		uom = parts[1]
	}
	return qty, uom
}
