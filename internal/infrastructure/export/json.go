package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain/gst"
)

const (
	jsonMIME = "application/json"

	// jsonFormatTag versions the document shape for forward compatibility.
	jsonFormatTag = "GST_EXPORT_JSON_V1.0"
)

func init() {
	// Monetary fields serialize as JSON numbers, not quoted strings, to match
	// what the report consumers parse.
	decimal.MarshalJSONWithoutQuotes = true
}

// JSONEncoder emits the structured document: metadata, summary and the full
// normalized record list.
type JSONEncoder struct{}

// NewJSONEncoder builds the encoder.
func NewJSONEncoder() *JSONEncoder { return &JSONEncoder{} }

type jsonPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Label     string `json:"label,omitempty"`
}

type jsonMetadata struct {
	GeneratedOn  time.Time  `json:"generatedOn"`
	Period       jsonPeriod `json:"period"`
	TotalRecords int        `json:"totalRecords"`
	Format       string     `json:"format"`
}

type jsonDocument struct {
	Metadata     jsonMetadata       `json:"metadata"`
	Summary      gst.Summary        `json:"summary"`
	Transactions []gst.ExportRecord `json:"transactions"`
}

// Encode renders the document with stable field order; encoding the same
// record set twice differs only in metadata.generatedOn.
func (e *JSONEncoder) Encode(records []gst.ExportRecord, rc gstreport.ReportContext) (gstreport.File, error) {
	doc := jsonDocument{
		Metadata: jsonMetadata{
			GeneratedOn:  rc.GeneratedAt,
			Period:       toJSONPeriod(rc.Period),
			TotalRecords: len(records),
			Format:       jsonFormatTag,
		},
		Summary:      rc.Summary,
		Transactions: records,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return gstreport.File{}, fmt.Errorf("marshal document: %w", err)
	}

	return gstreport.File{
		Data:     data,
		Filename: fmt.Sprintf("GST_Report_%s.json", rc.GeneratedAt.Format("2006-01-02")),
		MIMEType: jsonMIME,
	}, nil
}

func toJSONPeriod(p gstreport.Period) jsonPeriod {
	const layout = "2006-01-02"
	out := jsonPeriod{Label: p.Label}
	if !p.Start.IsZero() {
		out.StartDate = p.Start.Format(layout)
	}
	if !p.End.IsZero() {
		out.EndDate = p.End.Format(layout)
	}
	return out
}
