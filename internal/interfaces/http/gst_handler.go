package http

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invoiceflow/gst-export/internal/application/dto"
	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain"
)

// GSTHandler serves the GST report export endpoints.
type GSTHandler struct {
	uc *gstreport.ExportUseCase
}

// NewGSTHandler builds the handler.
func NewGSTHandler(uc *gstreport.ExportUseCase) *GSTHandler {
	return &GSTHandler{uc: uc}
}

// Export generates a GST report and streams it as a download.
// GET /api/gst/export?format=excel&start=2024-01-01&end=2024-03-31&status=paid
// Period presets: ?quarter=q1&year=2024 or ?month=8&year=2024.
func (h *GSTHandler) Export(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTERS", Message: err.Error()})
	}

	format := gstreport.Format(c.Query("format", string(gstreport.FormatExcel)))

	file, err := h.uc.Export(c.Context(), format, filters)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
		case errors.Is(err, domain.ErrNoInvoices):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_INVOICES", Message: "no invoices match the selected criteria"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
		}
	}

	c.Set(fiber.HeaderContentType, file.MIMEType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}

// Preview returns how many invoices the current filters would export.
// GET /api/gst/export/preview
func (h *GSTHandler) Preview(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTERS", Message: err.Error()})
	}

	count, err := h.uc.CountMatching(c.Context(), filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(dto.ExportPreviewResponse{
		MatchingInvoices: count,
		PeriodLabel:      filters.PeriodLabel,
	})
}

// parseFilters resolves the request into gstreport.Filters. Preset params
// (quarter, month) win over explicit dates; explicit ranges are validated
// here because the core trusts its callers on range sanity.
func parseFilters(c *fiber.Ctx) (gstreport.Filters, error) {
	status := c.Query("status", gstreport.StatusAll)

	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return gstreport.Filters{}, fmt.Errorf("invalid year %q", y)
		}
		year = n
	}

	if q := c.Query("quarter"); q != "" {
		n, err := parseQuarter(q)
		if err != nil {
			return gstreport.Filters{}, err
		}
		f := gstreport.QuarterFilters(year, n, time.Local)
		f.Status = status
		return f, nil
	}

	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			return gstreport.Filters{}, fmt.Errorf("invalid month %q", m)
		}
		f := gstreport.MonthFilters(year, time.Month(n), time.Local)
		f.Status = status
		return f, nil
	}

	f := gstreport.Filters{Status: status, PeriodLabel: c.Query("period")}

	const layout = "2006-01-02"
	if s := c.Query("start"); s != "" {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err != nil {
			return gstreport.Filters{}, fmt.Errorf("invalid start date %q", s)
		}
		f.Start = t
	}
	if e := c.Query("end"); e != "" {
		t, err := time.ParseInLocation(layout, e, time.Local)
		if err != nil {
			return gstreport.Filters{}, fmt.Errorf("invalid end date %q", e)
		}
		// Inclusive through the whole end day.
		f.End = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End) {
		return gstreport.Filters{}, errors.New("start date cannot be after end date")
	}
	if f.Start.After(time.Now()) {
		return gstreport.Filters{}, errors.New("start date cannot be in the future")
	}

	return f, nil
}

func parseQuarter(q string) (int, error) {
	switch q {
	case "q1", "Q1":
		return 1, nil
	case "q2", "Q2":
		return 2, nil
	case "q3", "Q3":
		return 3, nil
	case "q4", "Q4":
		return 4, nil
	}
	return 0, fmt.Errorf("invalid quarter %q", q)
}
