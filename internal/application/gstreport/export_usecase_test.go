package gstreport_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain"
	"github.com/invoiceflow/gst-export/internal/domain/entity"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
	"github.com/invoiceflow/gst-export/pkg/logger"
)

// ── test doubles ──────────────────────────────────────────────────────────────

type stubInvoiceRepo struct {
	invoices []entity.Invoice
	err      error
}

func (s *stubInvoiceRepo) ListAll() ([]entity.Invoice, error) { return s.invoices, s.err }

type stubProfileRepo struct {
	profiles map[int]entity.TaxProfile
}

func (s *stubProfileRepo) ProfilesByClientID() (map[int]entity.TaxProfile, error) {
	return s.profiles, nil
}

type spyEncoder struct {
	calls   int
	lastRC  gstreport.ReportContext
	lastLen int
	file    gstreport.File
	err     error
}

func (s *spyEncoder) Encode(records []gst.ExportRecord, rc gstreport.ReportContext) (gstreport.File, error) {
	s.calls++
	s.lastRC = rc
	s.lastLen = len(records)
	return s.file, s.err
}

func newUseCase(repo *stubInvoiceRepo, enc gstreport.Encoder) *gstreport.ExportUseCase {
	return gstreport.NewExportUseCase(
		repo,
		&stubProfileRepo{profiles: map[int]entity.TaxProfile{
			1: {GSTIN: validGSTINMaharashtra, HSNCode: "998314", PlaceOfSupply: "Maharashtra"},
		}},
		gstreport.NewPreparer(testConfig()),
		map[gstreport.Format]gstreport.Encoder{gstreport.FormatExcel: enc},
		logger.Nop(),
	)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestExport_HappyPath(t *testing.T) {
	enc := &spyEncoder{file: gstreport.File{
		Data: []byte("xlsx"), Filename: "GSTN_Report_2024-08-30.xlsx", MIMEType: "application/x",
	}}
	uc := newUseCase(&stubInvoiceRepo{invoices: []entity.Invoice{baseInvoice()}}, enc)

	file, err := uc.Export(context.Background(), gstreport.FormatExcel, gstreport.Filters{})

	require.NoError(t, err)
	assert.Equal(t, "GSTN_Report_2024-08-30.xlsx", file.Filename)
	assert.Equal(t, 1, enc.calls)
	assert.Equal(t, 1, enc.lastLen)
	assert.Equal(t, 1, enc.lastRC.Summary.TotalInvoices)
	assert.False(t, enc.lastRC.GeneratedAt.IsZero())
}

func TestExport_EmptyFilteredSetFailsBeforeEncoding(t *testing.T) {
	enc := &spyEncoder{}
	uc := newUseCase(&stubInvoiceRepo{invoices: []entity.Invoice{baseInvoice()}}, enc)

	// The only invoice is from 2024; a 1999 window matches nothing.
	filters := gstreport.Filters{
		Start: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	_, err := uc.Export(context.Background(), gstreport.FormatExcel, filters)

	assert.ErrorIs(t, err, domain.ErrNoInvoices)
	assert.Zero(t, enc.calls, "no encoder may run for an empty set")
}

func TestExport_UnknownFormat(t *testing.T) {
	enc := &spyEncoder{}
	uc := newUseCase(&stubInvoiceRepo{invoices: []entity.Invoice{baseInvoice()}}, enc)

	_, err := uc.Export(context.Background(), gstreport.Format("xml"), gstreport.Filters{})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Zero(t, enc.calls)
}

func TestExport_EncoderFailureWrappedWithFormatPrefix(t *testing.T) {
	enc := &spyEncoder{err: errors.New("workbook boom")}
	uc := newUseCase(&stubInvoiceRepo{invoices: []entity.Invoice{baseInvoice()}}, enc)

	_, err := uc.Export(context.Background(), gstreport.FormatExcel, gstreport.Filters{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "excel export failed")
	assert.Contains(t, err.Error(), "workbook boom")
}

func TestExport_RepositoryErrorPropagates(t *testing.T) {
	enc := &spyEncoder{}
	uc := newUseCase(&stubInvoiceRepo{err: errors.New("store offline")}, enc)

	_, err := uc.Export(context.Background(), gstreport.FormatExcel, gstreport.Filters{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store offline")
	assert.Zero(t, enc.calls)
}

func TestCountMatching(t *testing.T) {
	old := baseInvoice()
	old.ID = 2
	old.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := newUseCase(&stubInvoiceRepo{invoices: []entity.Invoice{baseInvoice(), old}}, &spyEncoder{})

	count, err := uc.CountMatching(context.Background(), gstreport.Filters{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExport_FiltersStatusBeforePreparing(t *testing.T) {
	enc := &spyEncoder{}
	paid := baseInvoice()
	draft := baseInvoice()
	draft.ID = 2
	draft.Status = entity.StatusDraft
	uc := newUseCase(&stubInvoiceRepo{invoices: []entity.Invoice{paid, draft}}, enc)

	_, err := uc.Export(context.Background(), gstreport.FormatExcel,
		gstreport.Filters{Status: entity.StatusPaid})

	require.NoError(t, err)
	assert.Equal(t, 1, enc.lastLen, "draft invoice must be filtered out")
}
