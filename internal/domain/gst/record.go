package gst

import (
	"github.com/shopspring/decimal"

	"github.com/invoiceflow/gst-export/internal/domain/entity"
)

// DateLayout is how invoice and due dates are rendered on the report,
// matching the dd/mm/yyyy convention used on Indian tax invoices.
const DateLayout = "02/01/2006"

// ExportRecord is the normalized form of one invoice on the GST report.
// All monetary fields are rounded to 2 decimals; immutable once produced.
type ExportRecord struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"` // dd/mm/yyyy
	ClientName    string          `json:"clientName"`
	ClientGSTIN   string          `json:"clientGSTIN"`
	HSNCode       string          `json:"hsnCode"`
	PlaceOfSupply string          `json:"placeOfSupply"`
	TaxableValue  decimal.Decimal `json:"taxableValue"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	InvoiceValue  decimal.Decimal `json:"invoiceValue"`
	AppliedRate   decimal.Decimal `json:"appliedRate"` // percent
	Type          TransactionType `json:"transactionType"`
	GSTINValid    bool            `json:"gstinValid"`
	Status        string          `json:"status"`
	DueDate       string          `json:"dueDate"` // dd/mm/yyyy

	// Invoice is the source record, attached by reference for traceability.
	// Read-only; not serialized.
	Invoice *entity.Invoice `json:"-"`
}

// DisplayGSTIN is what appears in GSTIN cells: "N/A" when the client has no
// GSTIN on file at all.
func (r ExportRecord) DisplayGSTIN() string {
	if r.ClientGSTIN == "" {
		return "N/A"
	}
	return r.ClientGSTIN
}

// ── Per-category workbook projections ─────────────────────────────────────────
//
// Each regulatory category carries its own column set on the GSTR sheets:
// B2B and CDNR expose the counterparty GSTIN, B2C does not; B2B reports the
// split tax components, B2C and CDNR a single tax amount. Keeping the header
// and row projections on the TransactionType keeps the three in one place and
// makes a new category an exhaustive-switch change.

// SheetColumns returns the workbook header row for the category.
func (t TransactionType) SheetColumns() []string {
	switch t {
	case TypeB2B:
		return []string{
			"Invoice Number", "Invoice Date", "Customer Name", "Customer GSTIN",
			"HSN Code", "Taxable Value", "CGST Amount", "SGST Amount",
			"IGST Amount", "Total Tax", "Invoice Value", "Place of Supply",
		}
	case TypeB2C:
		return []string{
			"Invoice Number", "Invoice Date", "Customer Name", "HSN Code",
			"Taxable Value", "Tax Rate", "Tax Amount", "Invoice Value",
			"Place of Supply",
		}
	case TypeCDNR:
		return []string{
			"Invoice Number", "Invoice Date", "Customer Name", "Customer GSTIN",
			"HSN Code", "Taxable Value", "Tax Amount", "Invoice Value",
			"Place of Supply", "Reason",
		}
	}
	panic("gst: unknown transaction type " + string(t))
}

// cdnrReason annotates why an unregistered high-value invoice lands on the
// CDNR sheet.
const cdnrReason = "High Value B2C Transaction"

// SheetRow projects a record onto the category's column set. Money cells are
// float64 so the workbook stores them as numbers; the values are already
// rounded to 2 decimals.
func (t TransactionType) SheetRow(r ExportRecord) []interface{} {
	switch t {
	case TypeB2B:
		return []interface{}{
			r.InvoiceNumber, r.InvoiceDate, r.ClientName, r.ClientGSTIN,
			r.HSNCode, cell(r.TaxableValue), cell(r.CGST), cell(r.SGST),
			cell(r.IGST), cell(r.TotalTax), cell(r.InvoiceValue), r.PlaceOfSupply,
		}
	case TypeB2C:
		return []interface{}{
			r.InvoiceNumber, r.InvoiceDate, r.ClientName, r.HSNCode,
			cell(r.TaxableValue), r.AppliedRate.String() + "%", cell(r.TotalTax),
			cell(r.InvoiceValue), r.PlaceOfSupply,
		}
	case TypeCDNR:
		return []interface{}{
			r.InvoiceNumber, r.InvoiceDate, r.ClientName, r.DisplayGSTIN(),
			r.HSNCode, cell(r.TaxableValue), cell(r.TotalTax),
			cell(r.InvoiceValue), r.PlaceOfSupply, cdnrReason,
		}
	}
	panic("gst: unknown transaction type " + string(t))
}

func cell(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// ── Summary ───────────────────────────────────────────────────────────────────

// Summary aggregates the full normalized record set for the report header.
type Summary struct {
	TotalInvoices     int             `json:"totalInvoices"`
	TotalTaxableValue decimal.Decimal `json:"totalTaxableValue"`
	TotalTaxAmount    decimal.Decimal `json:"totalTaxAmount"`
	TotalInvoiceValue decimal.Decimal `json:"totalInvoiceValue"`
	// CountByType has an entry for every category, zero or not.
	CountByType map[TransactionType]int `json:"transactionBreakdown"`
}

// Summarize computes the cross-record aggregates. Records arrive with their
// monetary fields already rounded, so the sums are exact over the rounded
// values (round-per-record, then sum).
func Summarize(records []ExportRecord) Summary {
	s := Summary{
		TotalInvoices:     len(records),
		TotalTaxableValue: decimal.Zero,
		TotalTaxAmount:    decimal.Zero,
		TotalInvoiceValue: decimal.Zero,
		CountByType:       make(map[TransactionType]int, len(AllTransactionTypes)),
	}
	for _, t := range AllTransactionTypes {
		s.CountByType[t] = 0
	}
	for _, r := range records {
		s.TotalTaxableValue = s.TotalTaxableValue.Add(r.TaxableValue)
		s.TotalTaxAmount = s.TotalTaxAmount.Add(r.TotalTax)
		s.TotalInvoiceValue = s.TotalInvoiceValue.Add(r.InvoiceValue)
		s.CountByType[r.Type]++
	}
	return s
}

// ByType partitions records by category, preserving input order within each
// bucket.
func ByType(records []ExportRecord) map[TransactionType][]ExportRecord {
	out := make(map[TransactionType][]ExportRecord, len(AllTransactionTypes))
	for _, r := range records {
		out[r.Type] = append(out[r.Type], r)
	}
	return out
}

// InvalidGSTIN filters the records whose GSTIN failed structural validation.
// These feed the workbook's validation-error sheet.
func InvalidGSTIN(records []ExportRecord) []ExportRecord {
	var out []ExportRecord
	for _, r := range records {
		if !r.GSTINValid {
			out = append(out, r)
		}
	}
	return out
}
