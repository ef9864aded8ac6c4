package repository

import "github.com/invoiceflow/gst-export/internal/domain/entity"

// InvoiceRepository is the read-only port onto the invoice record store.
// The export core never writes through it.
type InvoiceRepository interface {
	ListAll() ([]entity.Invoice, error)
}
