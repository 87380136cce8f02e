package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataType_IsValid(t *testing.T) {
	tests := []struct {
		dataType DataType
		valid    bool
	}{
		{DataTypeMasters, true},
		{DataTypeLedgers, true},
		{DataTypeVouchers, true},
		{DataTypeInventory, true},
		{DataTypeAll, true},
		{DataType("payroll"), false},
		{DataType(""), false},
		{DataType("Masters"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.dataType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.dataType.IsValid())
		})
	}
}

func TestExpandDataTypes(t *testing.T) {
	t.Run("empty list expands to all concrete types", func(t *testing.T) {
		types := ExpandDataTypes(nil)
		assert.Equal(t, ConcreteDataTypes(), types)
	})

	t.Run("all expands to concrete types", func(t *testing.T) {
		types := ExpandDataTypes([]DataType{DataTypeAll})
		assert.Equal(t, ConcreteDataTypes(), types)
	})

	t.Run("all mixed with concrete types still expands", func(t *testing.T) {
		types := ExpandDataTypes([]DataType{DataTypeMasters, DataTypeAll})
		assert.Equal(t, ConcreteDataTypes(), types)
	})

	t.Run("concrete list returned unchanged", func(t *testing.T) {
		in := []DataType{DataTypeVouchers, DataTypeMasters}
		assert.Equal(t, in, ExpandDataTypes(in))
	})
}

func TestConcreteDataTypes(t *testing.T) {
	types := ConcreteDataTypes()

	assert.Len(t, types, 4)
	assert.NotContains(t, types, DataTypeAll)
	for _, dt := range types {
		assert.True(t, dt.IsValid())
	}
}

func TestSyncMode_IsValid(t *testing.T) {
	assert.True(t, SyncModeFull.IsValid())
	assert.True(t, SyncModeIncremental.IsValid())
	assert.False(t, SyncMode("delta").IsValid())
	assert.False(t, SyncMode("").IsValid())
}
