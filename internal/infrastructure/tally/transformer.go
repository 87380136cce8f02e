package tally

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// Errors signalling that a record must be dropped during transformation
var (
	ErrMissingName          = errors.New("tally: record has no name")
	ErrMissingVoucherNumber = errors.New("tally: voucher has no voucher number")
	ErrUnknownRecordType    = errors.New("tally: unknown record type")
)

// baseTransformer holds the shared transform-batch machinery. One bad record
// is logged and skipped, never failing the whole batch.
type baseTransformer struct {
	logger *zap.Logger
}

func newBaseTransformer(logger *zap.Logger) baseTransformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseTransformer{logger: logger}
}

// transformBatch applies transform to every record, collecting the successes.
func (b baseTransformer) transformBatch(
	records []connector.RawRecord,
	transform func(connector.RawRecord) (connector.UnifiedRecord, error),
) []connector.UnifiedRecord {
	results := make([]connector.UnifiedRecord, 0, len(records))
	failed := 0
	for _, record := range records {
		unified, err := transform(record)
		if err != nil {
			failed++
			b.logger.Warn("failed to transform record",
				zap.String("record_type", record.Type.String()),
				zap.String("record_key", recordKey(record)),
				zap.Error(err))
			continue
		}
		results = append(results, unified)
	}
	if failed > 0 {
		b.logger.Warn("skipped records due to transformation errors", zap.Int("count", failed))
	}
	return results
}

// recordKey extracts the natural key of a raw record for log correlation.
func recordKey(record connector.RawRecord) string {
	if name := record.Text("name"); name != "" {
		return name
	}
	if number := record.Text("voucher_number"); number != "" {
		return number
	}
	return "?"
}

// ---------------------------------------------------------------------------
// Shared normalization helpers
// ---------------------------------------------------------------------------

// slugify converts a Tally name to a safe code: uppercase with spaces and
// slashes replaced by underscores.
func slugify(name string) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "/", "_")
}

// safeFloat coerces a raw field value to float64, falling back to def.
func safeFloat(v any, def float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case string:
		return parseFloat(x, def)
	default:
		return def
	}
}

// normalizeDate normalizes Tally date strings to ISO format (YYYY-MM-DD).
// Tally emits dates as YYYYMMDD or DD-MM-YYYY; anything else passes through
// unchanged.
func normalizeDate(dateStr string) string {
	cleaned := strings.TrimSpace(dateStr)
	if cleaned == "" {
		return dateStr
	}
	if len(cleaned) == 8 && isDigits(cleaned) {
		return cleaned[:4] + "-" + cleaned[4:6] + "-" + cleaned[6:8]
	}
	if len(cleaned) == 10 && strings.Contains(cleaned, "-") {
		parts := strings.Split(cleaned, "-")
		if len(parts) == 3 && len(parts[0]) == 2 {
			return parts[2] + "-" + parts[1] + "-" + parts[0]
		}
	}
	return cleaned
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
