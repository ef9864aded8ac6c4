package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoiceflow/gst-export/internal/domain/gst"
)

func TestClassify_ValidGSTINAlwaysB2B(t *testing.T) {
	// GSTIN validity dominates invoice value.
	for _, total := range []string{"0", "100", "249999.99", "250000", "99000000"} {
		assert.Equal(t, gst.TypeB2B, gst.Classify(d(total), true), "total %s", total)
	}
}

func TestClassify_UnregisteredBelowThresholdIsB2C(t *testing.T) {
	assert.Equal(t, gst.TypeB2C, gst.Classify(d("249999.99"), false))
	assert.Equal(t, gst.TypeB2C, gst.Classify(d("100"), false))
	assert.Equal(t, gst.TypeB2C, gst.Classify(d("0"), false))
}

func TestClassify_ThresholdIsExclusiveOnB2CSide(t *testing.T) {
	assert.Equal(t, gst.TypeCDNR, gst.Classify(d("250000.00"), false))
	assert.Equal(t, gst.TypeCDNR, gst.Classify(d("300000"), false))
}

func TestSheetColumns_MatchPerCategorySchemas(t *testing.T) {
	assert.Len(t, gst.TypeB2B.SheetColumns(), 12)
	assert.Len(t, gst.TypeB2C.SheetColumns(), 9)
	assert.Len(t, gst.TypeCDNR.SheetColumns(), 10)

	assert.Contains(t, gst.TypeB2B.SheetColumns(), "Customer GSTIN")
	assert.NotContains(t, gst.TypeB2C.SheetColumns(), "Customer GSTIN")
	assert.Contains(t, gst.TypeCDNR.SheetColumns(), "Reason")
}

func TestSheetRow_WidthMatchesColumns(t *testing.T) {
	r := gst.ExportRecord{
		InvoiceNumber: "INV-001",
		ClientGSTIN:   "27ABCDE1234F1Z5",
		Type:          gst.TypeB2B,
	}
	for _, typ := range gst.AllTransactionTypes {
		assert.Len(t, typ.SheetRow(r), len(typ.SheetColumns()),
			"category %s: row width must match header width", typ)
	}
}
