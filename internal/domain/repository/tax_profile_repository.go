package repository

import "github.com/invoiceflow/gst-export/internal/domain/entity"

// TaxProfileRepository resolves GST registration details per client.
type TaxProfileRepository interface {
	// ProfilesByClientID returns the full lookup table keyed by client ID.
	// Clients without a profile are simply absent; the report preparer
	// substitutes its configured default for them.
	ProfilesByClientID() (map[int]entity.TaxProfile, error)
}
