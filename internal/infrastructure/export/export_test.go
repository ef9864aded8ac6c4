package export_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
)

// Shared fixtures for the encoder tests. One representative record per
// category, numbers chosen so sums are easy to eyeball.

func b2bRecord() gst.ExportRecord {
	return gst.ExportRecord{
		InvoiceNumber: "INV-2024-001",
		InvoiceDate:   "14/08/2024",
		ClientName:    "Acme Traders",
		ClientGSTIN:   "27ABCDE1234F1Z5",
		HSNCode:       "998314",
		PlaceOfSupply: "Maharashtra",
		TaxableValue:  decimal.NewFromInt(1000),
		CGST:          decimal.NewFromInt(90),
		SGST:          decimal.NewFromInt(90),
		IGST:          decimal.Zero,
		TotalTax:      decimal.NewFromInt(180),
		InvoiceValue:  decimal.NewFromInt(1180),
		AppliedRate:   decimal.NewFromInt(18),
		Type:          gst.TypeB2B,
		GSTINValid:    true,
		Status:        "paid",
		DueDate:       "13/09/2024",
	}
}

func b2cRecord() gst.ExportRecord {
	r := b2bRecord()
	r.InvoiceNumber = "INV-2024-002"
	r.ClientName = "Walk-in Customer"
	r.ClientGSTIN = ""
	r.Type = gst.TypeB2C
	r.GSTINValid = false
	return r
}

func cdnrRecord() gst.ExportRecord {
	r := b2bRecord()
	r.InvoiceNumber = "INV-2024-003"
	r.ClientName = "Big Unregistered Buyer"
	r.ClientGSTIN = "27ABCDE1234F1Y5"
	r.TaxableValue = decimal.NewFromInt(300000)
	r.TotalTax = decimal.NewFromInt(54000)
	r.CGST = decimal.NewFromInt(27000)
	r.SGST = decimal.NewFromInt(27000)
	r.InvoiceValue = decimal.NewFromInt(354000)
	r.Type = gst.TypeCDNR
	r.GSTINValid = false
	return r
}

func reportContext(records []gst.ExportRecord) gstreport.ReportContext {
	return gstreport.ReportContext{
		Summary: gst.Summarize(records),
		Period: gstreport.Period{
			Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
			Label: "Q3 (Jul-Sep)",
		},
		GeneratedAt: time.Date(2024, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}
