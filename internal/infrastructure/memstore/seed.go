package memstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceflow/gst-export/internal/domain/entity"
)

// SeedTaxProfiles is the development lookup table. Some GSTINs are
// deliberately malformed so the validation-error sheet has material to show
// in demos.
func SeedTaxProfiles() map[int]entity.TaxProfile {
	return map[int]entity.TaxProfile{
		1: {GSTIN: "27ABCDE1234F1Z5", HSNCode: "998314", PlaceOfSupply: "Maharashtra"},
		2: {GSTIN: "19FGHIJ5678K2Y4", HSNCode: "998313", PlaceOfSupply: "West Bengal"},
		3: {GSTIN: "32KLMNO9012L3X6", HSNCode: "998312", PlaceOfSupply: "Kerala"},
		4: {GSTIN: "06PQRST3456M4W7", HSNCode: "998315", PlaceOfSupply: "Haryana"},
		5: {GSTIN: "23UVWXY7890N5V8", HSNCode: "998316", PlaceOfSupply: "Madhya Pradesh"},
	}
}

// SeedInvoices returns a demo invoice set spanning statuses, states and the
// value range around the B2C/CDNR threshold.
func SeedInvoices() []entity.Invoice {
	now := time.Now()
	mk := func(id int, number string, clientID int, clientName, subtotal, rate, tax, total, status string, daysAgo int) entity.Invoice {
		return entity.Invoice{
			ID:            id,
			InvoiceNumber: number,
			ClientID:      clientID,
			ClientName:    clientName,
			Subtotal:      dec(subtotal),
			TaxRate:       dec(rate),
			TaxAmount:     dec(tax),
			Total:         dec(total),
			Status:        status,
			CreatedAt:     now.AddDate(0, 0, -daysAgo),
			DueDate:       now.AddDate(0, 0, -daysAgo+30),
		}
	}
	return []entity.Invoice{
		mk(1, "INV-2024-001", 1, "TechCorp Solutions", "1000.00", "18", "180.00", "1180.00", entity.StatusPaid, 5),
		mk(2, "INV-2024-002", 2, "Bengal Traders", "25000.00", "18", "4500.00", "29500.00", entity.StatusSent, 12),
		mk(3, "INV-2024-003", 3, "Kochi Exports", "254237.29", "18", "45762.71", "300000.00", entity.StatusSent, 20),
		mk(4, "INV-2024-004", 4, "Gurgaon Retail", "8000.00", "5", "400.00", "8400.00", entity.StatusPaid, 33),
		mk(5, "INV-2024-005", 5, "Indore Services", "12500.00", "12", "1500.00", "14000.00", entity.StatusOverdue, 48),
		mk(6, "INV-2024-006", 1, "TechCorp Solutions", "50000.00", "18", "9000.00", "59000.00", entity.StatusDraft, 2),
		mk(7, "INV-2024-007", 6, "Walk-in Client", "2000.00", "18", "360.00", "2360.00", entity.StatusPaid, 9),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("memstore: bad seed amount " + s)
	}
	return d
}
