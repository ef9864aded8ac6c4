package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ExportPreviewResponse backs the export dialog preview.
type ExportPreviewResponse struct {
	MatchingInvoices int    `json:"matchingInvoices"`
	PeriodLabel      string `json:"periodLabel,omitempty"`
}
