package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
)

const pdfMIME = "application/pdf"

var (
	pdfColorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFEncoder produces the printable summary report with Maroto v2: report
// header, period, aggregate metrics, category breakdown and a compact table
// of all records.
type PDFEncoder struct{}

// NewPDFEncoder builds the encoder.
func NewPDFEncoder() *PDFEncoder { return &PDFEncoder{} }

// Encode generates the PDF and returns its bytes.
func (e *PDFEncoder) Encode(records []gst.ExportRecord, rc gstreport.ReportContext) (gstreport.File, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("GST Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(pdfHeaderRow(rc))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.5}))
	m.AddRows(pdfSummaryRows(rc.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.3}))
	m.AddRows(pdfTableHeaderRow())
	m.AddRows(pdfTableRows(records)...)

	doc, err := m.Generate()
	if err != nil {
		return gstreport.File{}, fmt.Errorf("generate document: %w", err)
	}

	return gstreport.File{
		Data:     doc.GetBytes(),
		Filename: fmt.Sprintf("GST_Report_%s.pdf", rc.GeneratedAt.Format("2006-01-02")),
		MIMEType: pdfMIME,
	}, nil
}

func pdfHeaderRow(rc gstreport.ReportContext) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("GST Report Summary", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: pdfColorPrimary, Top: 1,
			}),
			text.New("Period: "+periodText(rc.Period), props.Text{
				Size: 9, Top: 9, Color: pdfColorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+rc.GeneratedAt.Format("02/01/2006 15:04:05"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: pdfColorGray,
			}),
		),
	)
}

func pdfSummaryRows(s gst.Summary) []core.Row {
	metric := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Top: 1})),
		)
	}
	return []core.Row{
		metric("Total Invoices", fmt.Sprintf("%d", s.TotalInvoices)),
		metric("Total Taxable Value", s.TotalTaxableValue.StringFixed(2)),
		metric("Total Tax Amount", s.TotalTaxAmount.StringFixed(2)),
		metric("Total Invoice Value", s.TotalInvoiceValue.StringFixed(2)),
		metric("B2B / B2C / CDNR", fmt.Sprintf("%d / %d / %d",
			s.CountByType[gst.TypeB2B], s.CountByType[gst.TypeB2C], s.CountByType[gst.TypeCDNR])),
	}
}

func pdfTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: pdfColorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Invoice", 2, align.Left),
		h("Date", 2, align.Left),
		h("Customer", 3, align.Left),
		h("Type", 1, align.Center),
		h("Taxable", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

func pdfTableRows(records []gst.ExportRecord) []core.Row {
	out := make([]core.Row, 0, len(records))
	for _, r := range records {
		out = append(out, row.New(6).Add(
			col.New(2).Add(text.New(r.InvoiceNumber, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.InvoiceDate, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(r.ClientName, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(string(r.Type), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.TaxableValue.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(r.InvoiceValue.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return out
}
