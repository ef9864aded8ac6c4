// Package gst implements the domain rules of the GST report: the
// CGST/SGST/IGST breakdown, the regulatory transaction categories and the
// normalized export record that every output format is built from.
package gst

import "github.com/shopspring/decimal"

// slab is one row of the GST rate table: how a nominal rate splits between
// the central and state components, and its integrated equivalent.
type slab struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
}

// rateSlabs is the fixed slab table keyed by nominal rate percent.
// Only the published GST slabs appear here; anything else resolves through
// defaultSlabKey.
var rateSlabs = map[int64]slab{
	0:  {decimal.Zero, decimal.Zero, decimal.Zero},
	5:  {dec("2.5"), dec("2.5"), dec("5")},
	12: {dec("6"), dec("6"), dec("12")},
	18: {dec("9"), dec("9"), dec("18")},
	28: {dec("14"), dec("14"), dec("28")},
}

// defaultSlabKey is applied when the nominal rate is not a published slab.
// 18% is the standard services rate and what the billing UI defaults to,
// so an unrecognized rate is reported against it rather than dropped.
const defaultSlabKey = 18

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("gst: bad slab literal " + s)
	}
	return d
}

// Breakdown is the split of a tax amount into GST components.
// Exactly one of (CGST+SGST) and IGST is nonzero for a nonzero tax amount.
type Breakdown struct {
	CGST        decimal.Decimal
	SGST        decimal.Decimal
	IGST        decimal.Decimal
	AppliedRate decimal.Decimal // percent actually reported for the slab
}

// ComputeBreakdown splits taxAmount according to the slab for nominalRate.
// Interstate supplies carry the whole amount as IGST; intrastate supplies
// split it evenly between CGST and SGST. Values are returned at full
// precision; rounding to 2 decimals happens at record normalization.
func ComputeBreakdown(taxAmount, nominalRate decimal.Decimal, interState bool) Breakdown {
	var key int64 = defaultSlabKey
	if nominalRate.IsInteger() {
		if _, ok := rateSlabs[nominalRate.IntPart()]; ok {
			key = nominalRate.IntPart()
		}
	}
	s := rateSlabs[key]

	if interState {
		return Breakdown{
			CGST:        decimal.Zero,
			SGST:        decimal.Zero,
			IGST:        taxAmount,
			AppliedRate: s.IGST,
		}
	}
	half := taxAmount.Div(decimal.NewFromInt(2))
	return Breakdown{
		CGST:        half,
		SGST:        half,
		IGST:        decimal.Zero,
		AppliedRate: s.CGST.Add(s.SGST),
	}
}
