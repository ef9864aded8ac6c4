// Package export implements the format encoders of the GST report: a
// multi-sheet workbook (excelize), delimited text, a structured JSON document
// and a printable PDF summary (maroto). Encoders are stateless and share the
// gstreport.Encoder port.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
)

const (
	xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	summarySheet    = "Summary"
	validationSheet = "Validation Errors"

	gstinRemediation = "Verify the GSTIN with the customer and correct it before filing"
)

// ExcelEncoder produces the GSTR-ready workbook: a summary sheet first, one
// sheet per non-empty category, and a validation-error sheet when any record
// carries an invalid GSTIN.
type ExcelEncoder struct{}

// NewExcelEncoder builds the encoder.
func NewExcelEncoder() *ExcelEncoder { return &ExcelEncoder{} }

// Encode writes the workbook and returns its bytes.
func (e *ExcelEncoder) Encode(records []gst.ExportRecord, rc gstreport.ReportContext) (gstreport.File, error) {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary so it is positioned first.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return gstreport.File{}, fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, rc); err != nil {
		return gstreport.File{}, err
	}

	buckets := gst.ByType(records)
	for _, typ := range gst.AllTransactionTypes {
		bucket := buckets[typ]
		if len(bucket) == 0 {
			continue // sheet omission rule: empty categories get no sheet
		}
		if err := writeCategorySheet(f, typ, bucket); err != nil {
			return gstreport.File{}, err
		}
	}

	if invalid := gst.InvalidGSTIN(records); len(invalid) > 0 {
		if err := writeValidationSheet(f, invalid); err != nil {
			return gstreport.File{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return gstreport.File{}, fmt.Errorf("write workbook: %w", err)
	}

	return gstreport.File{
		Data:     buf.Bytes(),
		Filename: workbookFilename(rc),
		MIMEType: xlsxMIME,
	}, nil
}

func writeSummarySheet(f *excelize.File, rc gstreport.ReportContext) error {
	s := rc.Summary
	rows := [][]interface{}{
		{"GST Report Summary"},
		{"Generated on:", rc.GeneratedAt.Format("02/01/2006 15:04:05")},
		{"Period:", periodText(rc.Period)},
		{},
		{"Metric", "Value"},
		{"Total Invoices", s.TotalInvoices},
		{"Total Taxable Value", decimalCell(s.TotalTaxableValue)},
		{"Total Tax Amount", decimalCell(s.TotalTaxAmount)},
		{"Total Invoice Value", decimalCell(s.TotalInvoiceValue)},
		{},
		{"Transaction Breakdown"},
		{"B2B Transactions", s.CountByType[gst.TypeB2B]},
		{"B2C Transactions", s.CountByType[gst.TypeB2C]},
		{"CDNR Transactions", s.CountByType[gst.TypeCDNR]},
	}
	return writeRows(f, summarySheet, rows)
}

func writeCategorySheet(f *excelize.File, typ gst.TransactionType, bucket []gst.ExportRecord) error {
	name := string(typ)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}

	rows := make([][]interface{}, 0, len(bucket)+1)
	header := make([]interface{}, 0, len(typ.SheetColumns()))
	for _, h := range typ.SheetColumns() {
		header = append(header, h)
	}
	rows = append(rows, header)
	for _, r := range bucket {
		rows = append(rows, typ.SheetRow(r))
	}
	return writeRows(f, name, rows)
}

func writeValidationSheet(f *excelize.File, invalid []gst.ExportRecord) error {
	if _, err := f.NewSheet(validationSheet); err != nil {
		return fmt.Errorf("sheet %s: %w", validationSheet, err)
	}

	rows := [][]interface{}{
		{"Invoice Number", "Customer Name", "Customer GSTIN", "Transaction Type", "Issue", "Recommended Action"},
	}
	for _, r := range invalid {
		rows = append(rows, []interface{}{
			r.InvoiceNumber, r.ClientName, r.DisplayGSTIN(), string(r.Type),
			"GSTIN failed structural validation", gstinRemediation,
		})
	}
	return writeRows(f, validationSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue // blank spacer row
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// workbookFilename: GSTN_Report[_<label>]_<YYYY-MM-DD>.xlsx
func workbookFilename(rc gstreport.ReportContext) string {
	date := rc.GeneratedAt.Format("2006-01-02")
	if label := sanitizeLabel(rc.Period.Label); label != "" {
		return fmt.Sprintf("GSTN_Report_%s_%s.xlsx", label, date)
	}
	return fmt.Sprintf("GSTN_Report_%s.xlsx", date)
}

// sanitizeLabel keeps period labels filename-safe: "Q1 (Jan-Mar)" -> "Q1_Jan-Mar".
func sanitizeLabel(label string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

func decimalCell(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func periodText(p gstreport.Period) string {
	const layout = "2006-01-02"
	var start, end string
	if !p.Start.IsZero() {
		start = p.Start.Format(layout)
	}
	if !p.End.IsZero() {
		end = p.End.Format(layout)
	}
	text := start + " to " + end
	if p.Label != "" {
		text += " (" + p.Label + ")"
	}
	return text
}
