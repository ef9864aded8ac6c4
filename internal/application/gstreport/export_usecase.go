package gstreport

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invoiceflow/gst-export/internal/domain"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
	"github.com/invoiceflow/gst-export/internal/domain/repository"
	"github.com/invoiceflow/gst-export/pkg/logger"
)

// Format selects the output encoding of an export request.
type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatPDF   Format = "pdf"
)

// ExportUseCase is the boundary the export core exposes to the HTTP layer:
// load invoices, filter, normalize, aggregate, encode. Every request is
// independent and idempotent; nothing is cached between calls.
type ExportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	profileRepo repository.TaxProfileRepository
	preparer    *Preparer
	encoders    map[Format]Encoder
	log         *logger.Logger
	now         func() time.Time
}

// NewExportUseCase wires the use case. The encoders map defines which format
// selectors this instance accepts; anything else fails with
// domain.ErrUnsupportedFormat.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	profileRepo repository.TaxProfileRepository,
	preparer *Preparer,
	encoders map[Format]Encoder,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo: invoiceRepo,
		profileRepo: profileRepo,
		preparer:    preparer,
		encoders:    encoders,
		log:         log,
		now:         time.Now,
	}
}

// Export runs the full pipeline for one request.
//
// Returns:
//   - domain.ErrUnsupportedFormat for an unrecognized format selector.
//   - domain.ErrNoInvoices when the filtered invoice set is empty; no
//     encoder runs in that case.
//   - an error wrapped with a format prefix ("excel export failed: ...")
//     when the selected encoder fails. Retrying is the caller's decision.
func (uc *ExportUseCase) Export(ctx context.Context, format Format, filters Filters) (File, error) {
	enc, ok := uc.encoders[format]
	if !ok {
		return File{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	records, err := uc.prepareRecords(ctx, filters)
	if err != nil {
		return File{}, err
	}

	rc := ReportContext{
		Summary:     gst.Summarize(records),
		Period:      filters.Period(),
		GeneratedAt: uc.now(),
	}

	file, err := enc.Encode(records, rc)
	if err != nil {
		return File{}, fmt.Errorf("%s export failed: %w", format, err)
	}

	uc.log.Info().
		Str("export_id", uuid.NewString()).
		Str("format", string(format)).
		Int("invoices", len(records)).
		Str("filename", file.Filename).
		Msg("GST report exported")

	return file, nil
}

// CountMatching backs the export dialog's preview ("N invoices will be
// exported") without running any encoder.
func (uc *ExportUseCase) CountMatching(ctx context.Context, filters Filters) (int, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return 0, fmt.Errorf("gstreport: list invoices: %w", err)
	}
	return len(filters.Apply(invoices)), nil
}

func (uc *ExportUseCase) prepareRecords(_ context.Context, filters Filters) ([]gst.ExportRecord, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("gstreport: list invoices: %w", err)
	}

	filtered := filters.Apply(invoices)
	if len(filtered) == 0 {
		return nil, domain.ErrNoInvoices
	}

	profiles, err := uc.profileRepo.ProfilesByClientID()
	if err != nil {
		return nil, fmt.Errorf("gstreport: load tax profiles: %w", err)
	}

	return uc.preparer.Prepare(filtered, profiles), nil
}
