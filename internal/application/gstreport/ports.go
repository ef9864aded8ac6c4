// Package gstreport orchestrates the GST report pipeline: filtering the
// invoice set, normalizing it into export records and handing the result to
// one of the format encoders.
package gstreport

import (
	"time"

	"github.com/invoiceflow/gst-export/internal/domain/gst"
)

// File is a finished export payload. Callers own the I/O: the HTTP layer
// streams it as a download, tests inspect the bytes directly.
type File struct {
	Data     []byte
	Filename string
	MIMEType string
}

// Period is the reporting window, used for annotation only — the record set
// is already filtered when it reaches an encoder.
type Period struct {
	Start time.Time
	End   time.Time
	Label string // optional preset label ("Q1 (Jan-Mar)", "August"); empty for custom ranges
}

// ReportContext carries everything an encoder needs beyond the records
// themselves.
type ReportContext struct {
	Summary     gst.Summary
	Period      Period
	GeneratedAt time.Time
}

// Encoder turns a non-empty normalized record set into an export payload.
// Encoders are stateless; emptiness is rejected upstream by the use case.
type Encoder interface {
	Encode(records []gst.ExportRecord, rc ReportContext) (File, error)
}
