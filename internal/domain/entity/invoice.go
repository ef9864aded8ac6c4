package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

// Invoice is an invoice header as supplied by the record store.
// The GST export core reads it and never mutates it.
type Invoice struct {
	ID            int
	InvoiceNumber string
	ClientID      int
	ClientName    string
	Subtotal      decimal.Decimal // taxable value before tax
	TaxRate       decimal.Decimal // nominal GST rate in percent (0, 5, 12, 18, 28)
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal // Subtotal + TaxAmount, within rounding tolerance
	Status        string
	CreatedAt     time.Time
	DueDate       time.Time
}
