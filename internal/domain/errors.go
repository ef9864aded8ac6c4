package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoInvoices        = errors.New("no invoices match the selected criteria")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
