package gstreport

import (
	"time"

	"github.com/invoiceflow/gst-export/internal/domain/entity"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// Filters selects which invoices enter the report. Zero Start/End leave that
// side of the range open. The range is inclusive on both ends against the
// invoice creation timestamp. Range sanity (start <= end, start not in the
// future) is the caller's responsibility.
type Filters struct {
	Start       time.Time
	End         time.Time
	Status      string // one of the entity statuses, or StatusAll / ""
	PeriodLabel string // annotation only; never affects filtering
}

// Matches reports whether a single invoice passes the filters.
func (f Filters) Matches(inv entity.Invoice) bool {
	if !f.Start.IsZero() && inv.CreatedAt.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && inv.CreatedAt.After(f.End) {
		return false
	}
	if f.Status != "" && f.Status != StatusAll && inv.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the invoices passing the filters, preserving input order.
func (f Filters) Apply(invoices []entity.Invoice) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if f.Matches(inv) {
			out = append(out, inv)
		}
	}
	return out
}

// Period returns the filter window as report annotation.
func (f Filters) Period() Period {
	return Period{Start: f.Start, End: f.End, Label: f.PeriodLabel}
}

// ── Period presets ────────────────────────────────────────────────────────────
//
// The export dialog offers quarter and month shortcuts for GSTR filing
// periods. A preset resolves to an inclusive range covering whole days:
// midnight on the first day through the last nanosecond of the last day.

var quarterLabels = [4]string{"Q1 (Jan-Mar)", "Q2 (Apr-Jun)", "Q3 (Jul-Sep)", "Q4 (Oct-Dec)"}

// QuarterFilters builds Filters for calendar quarter q (1-4) of year.
// Out-of-range quarters are clamped to Q1.
func QuarterFilters(year, q int, loc *time.Location) Filters {
	if q < 1 || q > 4 {
		q = 1
	}
	startMonth := time.Month((q-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, loc)
	return Filters{
		Start:       start,
		End:         start.AddDate(0, 3, 0).Add(-time.Nanosecond),
		Status:      StatusAll,
		PeriodLabel: quarterLabels[q-1],
	}
}

// MonthFilters builds Filters covering one calendar month.
func MonthFilters(year int, month time.Month, loc *time.Location) Filters {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Filters{
		Start:       start,
		End:         start.AddDate(0, 1, 0).Add(-time.Nanosecond),
		Status:      StatusAll,
		PeriodLabel: month.String(),
	}
}
