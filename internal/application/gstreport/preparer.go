package gstreport

import (
	"github.com/shopspring/decimal"

	"github.com/invoiceflow/gst-export/internal/domain/entity"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
	pkggst "github.com/invoiceflow/gst-export/pkg/gst"
)

// defaultRate is assumed when an invoice carries tax but no nominal rate.
var defaultRate = decimal.NewFromInt(18)

// Config is the explicit report configuration. It is passed in at
// construction, never read from package state, so the preparer is testable
// with arbitrary jurisdictions.
type Config struct {
	// HomeState is the supplier's own place of business. A counterparty in
	// any other state makes the supply interstate (IGST instead of
	// CGST+SGST).
	HomeState string
	// DefaultProfile substitutes for clients with no tax profile on file.
	DefaultProfile entity.TaxProfile
}

// Preparer maps raw invoices into normalized export records.
type Preparer struct {
	cfg Config
}

// NewPreparer builds a preparer with the given configuration.
func NewPreparer(cfg Config) *Preparer {
	return &Preparer{cfg: cfg}
}

// Prepare normalizes each invoice into an ExportRecord: resolve the client's
// tax profile (or the configured default), derive interstate vs intrastate
// from the place of supply, split the tax amount, classify, and round every
// monetary field to 2 decimals.
//
// Prepare operates on exactly the set it is given. Date and status filtering
// belong to the caller (the export use case), never here.
func (p *Preparer) Prepare(invoices []entity.Invoice, profiles map[int]entity.TaxProfile) []gst.ExportRecord {
	records := make([]gst.ExportRecord, 0, len(invoices))
	for i := range invoices {
		records = append(records, p.normalize(&invoices[i], profiles))
	}
	return records
}

func (p *Preparer) normalize(inv *entity.Invoice, profiles map[int]entity.TaxProfile) gst.ExportRecord {
	profile, ok := profiles[inv.ClientID]
	if !ok {
		profile = p.cfg.DefaultProfile
	}

	interState := profile.PlaceOfSupply != p.cfg.HomeState

	// A zero rate alongside a positive tax amount means the rate was never
	// captured; bill it against the standard slab.
	rate := inv.TaxRate
	if rate.IsZero() && inv.TaxAmount.IsPositive() {
		rate = defaultRate
	}

	breakdown := gst.ComputeBreakdown(inv.TaxAmount, rate, interState)
	valid := pkggst.ValidateGSTIN(profile.GSTIN)

	return gst.ExportRecord{
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.CreatedAt.Format(gst.DateLayout),
		ClientName:    inv.ClientName,
		ClientGSTIN:   profile.GSTIN,
		HSNCode:       profile.HSNCode,
		PlaceOfSupply: profile.PlaceOfSupply,
		TaxableValue:  inv.Subtotal.Round(2),
		CGST:          breakdown.CGST.Round(2),
		SGST:          breakdown.SGST.Round(2),
		IGST:          breakdown.IGST.Round(2),
		TotalTax:      inv.TaxAmount.Round(2),
		InvoiceValue:  inv.Total.Round(2),
		AppliedRate:   breakdown.AppliedRate,
		Type:          gst.Classify(inv.Total, valid),
		GSTINValid:    valid,
		Status:        inv.Status,
		DueDate:       inv.DueDate.Format(gst.DateLayout),
		Invoice:       inv,
	}
}
