package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordType_IsValid(t *testing.T) {
	valid := []RecordType{
		RecordTypeStockItem, RecordTypeParty, RecordTypeLedger,
		RecordTypeVoucher, RecordTypeInventoryMovement, RecordTypeStockBalance,
	}
	for _, rt := range valid {
		assert.True(t, rt.IsValid(), rt.String())
	}
	assert.False(t, RecordType("invoice").IsValid())
	assert.False(t, RecordType("").IsValid())
}

func TestUnifiedType_IsValid(t *testing.T) {
	valid := []UnifiedType{
		UnifiedTypeItem, UnifiedTypeParty, UnifiedTypeLedger,
		UnifiedTypeTransaction, UnifiedTypeInventoryMovement, UnifiedTypeStockBalance,
	}
	for _, ut := range valid {
		assert.True(t, ut.IsValid(), ut.String())
	}
	assert.False(t, UnifiedType("product").IsValid())
}

func TestRawRecord_Accessors(t *testing.T) {
	record := RawRecord{
		Type: RecordTypeStockItem,
		Fields: map[string]any{
			"name":     "Widget A",
			"quantity": 42.5,
			"count":    7,
			"active":   true,
		},
	}

	t.Run("Text", func(t *testing.T) {
		assert.Equal(t, "Widget A", record.Text("name"))
		assert.Equal(t, "", record.Text("missing"))
		assert.Equal(t, "", record.Text("quantity"), "non-string field reads as empty")
	})

	t.Run("Float", func(t *testing.T) {
		assert.Equal(t, 42.5, record.Float("quantity"))
		assert.Equal(t, 7.0, record.Float("count"))
		assert.Equal(t, 0.0, record.Float("missing"))
		assert.Equal(t, 0.0, record.Float("name"), "non-numeric field reads as zero")
	})

	t.Run("Bool", func(t *testing.T) {
		assert.True(t, record.Bool("active"))
		assert.False(t, record.Bool("missing"))
		assert.False(t, record.Bool("name"))
	})
}
