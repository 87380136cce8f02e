package tally

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
)

// MasterTransformer maps raw master records (stock items, parties) to the
// unified schema.
type MasterTransformer struct {
	baseTransformer
}

// NewMasterTransformer creates a master data transformer.
func NewMasterTransformer(logger *zap.Logger) *MasterTransformer {
	return &MasterTransformer{newBaseTransformer(logger)}
}

// Transform maps one raw master record to a unified record, dispatching on
// the record type.
func (t *MasterTransformer) Transform(record connector.RawRecord) (connector.UnifiedRecord, error) {
	switch record.Type {
	case connector.RecordTypeStockItem:
		return t.transformStockItem(record)
	case connector.RecordTypeParty:
		return t.transformParty(record)
	default:
		return connector.UnifiedRecord{}, fmt.Errorf("%w: %q", ErrUnknownRecordType, record.Type)
	}
}

// TransformBatch transforms all records, skipping individual failures.
func (t *MasterTransformer) TransformBatch(records []connector.RawRecord) []connector.UnifiedRecord {
	return t.transformBatch(records, t.Transform)
}

// transformStockItem maps a Tally stock item to the unified item schema.
func (t *MasterTransformer) transformStockItem(record connector.RawRecord) (connector.UnifiedRecord, error) {
	name := record.Text("name")
	if name == "" {
		return connector.UnifiedRecord{}, fmt.Errorf("%w: stock item", ErrMissingName)
	}

	uom := record.Text("uom")
	if uom == "" {
		uom = "EA"
	}
	category := record.Text("parent")
	if category == "" {
		category = "Uncategorized"
	}

	return connector.UnifiedRecord{
		Type:     connector.UnifiedTypeItem,
		SourceID: name,
		Fields: map[string]any{
			"sku_code":     slugify(name),
			"product_name": name,
			"description":  record.Text("description"),
			"uom":          uom,
			"category":     category,
			"unit_cost":    safeFloat(record.Fields["opening_rate"], 0),
			"hsn_code":     record.Text("hsn_code"),
			"is_active":    true,
		},
		Raw: record,
	}, nil
}

// transformParty maps a Tally party to the unified party schema. The party
// type derives from the customer/supplier flags.
func (t *MasterTransformer) transformParty(record connector.RawRecord) (connector.UnifiedRecord, error) {
	name := record.Text("name")
	if name == "" {
		return connector.UnifiedRecord{}, fmt.Errorf("%w: party", ErrMissingName)
	}

	isCustomer := record.Bool("is_customer")
	isSupplier := record.Bool("is_supplier")
	var partyType string
	switch {
	case isCustomer && isSupplier:
		partyType = "both"
	case isCustomer:
		partyType = "customer"
	case isSupplier:
		partyType = "supplier"
	default:
		partyType = "other"
	}

	return connector.UnifiedRecord{
		Type:     connector.UnifiedTypeParty,
		SourceID: name,
		Fields: map[string]any{
			"party_code": slugify(name),
			"party_name": name,
			"party_type": partyType,
			"email":      record.Text("email"),
			"phone":      record.Text("mobile"),
			"address":    record.Text("address"),
			"gstin":      record.Text("gstin"),
			"is_active":  true,
		},
		Raw: record,
	}, nil
}

// Ensure MasterTransformer implements the Transformer interface
var _ connector.Transformer = (*MasterTransformer)(nil)
