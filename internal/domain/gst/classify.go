package gst

import "github.com/shopspring/decimal"

// TransactionType is the regulatory category an invoice is reported under
// in GSTR-1. The three categories carry different column sets in the
// workbook export; SheetColumns in record.go is the per-category projection.
type TransactionType string

const (
	TypeB2B  TransactionType = "B2B"  // counterparty holds a valid GSTIN
	TypeB2C  TransactionType = "B2C"  // unregistered counterparty, small value
	TypeCDNR TransactionType = "CDNR" // unregistered counterparty, high value
)

// AllTransactionTypes in report order. Encoders iterate this slice so that
// adding a category is a single-place change.
var AllTransactionTypes = []TransactionType{TypeB2B, TypeB2C, TypeCDNR}

// b2cThreshold is the invoice value at and above which an unregistered
// counterparty must be reported under CDNR instead of B2C.
var b2cThreshold = decimal.NewFromInt(250000)

// Classify assigns the regulatory category. GSTIN validity dominates invoice
// value: a registered counterparty is always B2B. For unregistered ones the
// boundary is exclusive on the B2C side (249999.99 is B2C, 250000.00 is CDNR).
func Classify(total decimal.Decimal, gstinValid bool) TransactionType {
	if gstinValid {
		return TypeB2B
	}
	if total.LessThan(b2cThreshold) {
		return TypeB2C
	}
	return TypeCDNR
}
