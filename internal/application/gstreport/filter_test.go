package gstreport_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func invOn(created time.Time, status string) entity.Invoice {
	return entity.Invoice{CreatedAt: created, Status: status}
}

func TestFilters_DateRangeInclusiveBothEnds(t *testing.T) {
	f := gstreport.Filters{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	}

	assert.True(t, f.Matches(invOn(f.Start, entity.StatusPaid)))
	assert.True(t, f.Matches(invOn(f.End, entity.StatusPaid)))
	assert.True(t, f.Matches(invOn(day(2024, 1, 15), entity.StatusPaid)))
	assert.False(t, f.Matches(invOn(day(2023, 12, 31), entity.StatusPaid)))
	assert.False(t, f.Matches(invOn(day(2024, 2, 1), entity.StatusPaid)))
}

func TestFilters_OpenEndedSides(t *testing.T) {
	onlyStart := gstreport.Filters{Start: day(2024, 6, 1)}
	assert.True(t, onlyStart.Matches(invOn(day(2030, 1, 1), entity.StatusPaid)))
	assert.False(t, onlyStart.Matches(invOn(day(2024, 5, 31), entity.StatusPaid)))

	empty := gstreport.Filters{}
	assert.True(t, empty.Matches(invOn(day(1999, 1, 1), entity.StatusDraft)))
}

func TestFilters_StatusAllAndEmptyPassEverything(t *testing.T) {
	for _, status := range []string{"", gstreport.StatusAll} {
		f := gstreport.Filters{Status: status}
		assert.True(t, f.Matches(invOn(day(2024, 1, 1), entity.StatusDraft)))
		assert.True(t, f.Matches(invOn(day(2024, 1, 1), entity.StatusCancelled)))
	}
}

func TestFilters_SpecificStatus(t *testing.T) {
	f := gstreport.Filters{Status: entity.StatusPaid}
	assert.True(t, f.Matches(invOn(day(2024, 1, 1), entity.StatusPaid)))
	assert.False(t, f.Matches(invOn(day(2024, 1, 1), entity.StatusSent)))
}

func TestFilters_ApplyPreservesOrder(t *testing.T) {
	invoices := []entity.Invoice{
		{ID: 1, CreatedAt: day(2024, 1, 10), Status: entity.StatusPaid},
		{ID: 2, CreatedAt: day(2024, 2, 10), Status: entity.StatusPaid},
		{ID: 3, CreatedAt: day(2024, 1, 20), Status: entity.StatusPaid},
	}
	f := gstreport.Filters{Start: day(2024, 1, 1), End: day(2024, 1, 31)}

	got := f.Apply(invoices)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestQuarterFilters_CoversWholeQuarter(t *testing.T) {
	f := gstreport.QuarterFilters(2024, 1, time.UTC)

	assert.Equal(t, "Q1 (Jan-Mar)", f.PeriodLabel)
	assert.True(t, f.Matches(invOn(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), entity.StatusPaid)))
	assert.True(t, f.Matches(invOn(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), entity.StatusPaid)))
	assert.False(t, f.Matches(invOn(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), entity.StatusPaid)))
}

func TestQuarterFilters_ClampsOutOfRange(t *testing.T) {
	f := gstreport.QuarterFilters(2024, 9, time.UTC)
	assert.Equal(t, "Q1 (Jan-Mar)", f.PeriodLabel)
}

func TestMonthFilters_CoversWholeMonth(t *testing.T) {
	f := gstreport.MonthFilters(2024, time.February, time.UTC)

	assert.Equal(t, "February", f.PeriodLabel)
	// 2024 is a leap year.
	assert.True(t, f.Matches(invOn(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC), entity.StatusPaid)))
	assert.False(t, f.Matches(invOn(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), entity.StatusPaid)))
}

func TestFilters_PeriodLabelNeverAffectsFiltering(t *testing.T) {
	labelled := gstreport.Filters{PeriodLabel: "Q4 (Oct-Dec)"}
	assert.True(t, labelled.Matches(invOn(day(2024, 1, 1), entity.StatusPaid)))
}
