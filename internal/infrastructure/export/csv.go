package export

import (
	"fmt"
	"strings"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
)

const csvMIME = "text/csv"

// csvHeader is the fixed flat column set: every record regardless of
// category, with the transaction type as an ordinary column.
var csvHeader = []string{
	"Invoice Number", "Invoice Date", "Customer Name", "Customer GSTIN",
	"HSN Code", "Taxable Value", "CGST Amount", "SGST Amount", "IGST Amount",
	"Total Tax", "Invoice Value", "Place of Supply", "Transaction Type",
}

// CSVEncoder writes a single flat table over all records. Every field is
// quoted, not just the ones that need it: downstream GST tooling expects the
// fully-quoted RFC 4180 style, which encoding/csv cannot be forced into, so
// the rows are assembled directly.
type CSVEncoder struct{}

// NewCSVEncoder builds the encoder.
func NewCSVEncoder() *CSVEncoder { return &CSVEncoder{} }

// Encode renders the records as UTF-8 delimited text.
func (e *CSVEncoder) Encode(records []gst.ExportRecord, rc gstreport.ReportContext) (gstreport.File, error) {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, r := range records {
		writeCSVRow(&b, []string{
			r.InvoiceNumber,
			r.InvoiceDate,
			r.ClientName,
			r.ClientGSTIN,
			r.HSNCode,
			r.TaxableValue.StringFixed(2),
			r.CGST.StringFixed(2),
			r.SGST.StringFixed(2),
			r.IGST.StringFixed(2),
			r.TotalTax.StringFixed(2),
			r.InvoiceValue.StringFixed(2),
			r.PlaceOfSupply,
			string(r.Type),
		})
	}

	return gstreport.File{
		Data:     []byte(b.String()),
		Filename: fmt.Sprintf("GST_Report_%s.csv", rc.GeneratedAt.Format("2006-01-02")),
		MIMEType: csvMIME,
	}, nil
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
