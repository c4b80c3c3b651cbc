package services

import (
	"errors"
	"io"

	"github.com/vishal-keshav/expense-track/src/models"
)

var (
	// ErrParsingFailed wraps failures to read the upload as delimited text.
	ErrParsingFailed = errors.New("parsing failed")
	// ErrReportNotFound is returned by GetReport for unknown or expired IDs.
	ErrReportNotFound = errors.New("report not found")
)

// UploadResult is the JSON payload returned after a successful upload. The
// embedded report is flattened, so the client sees
// {report_id, dates, totals, items}.
type UploadResult struct {
	ReportID string `json:"report_id"`
	*models.ExpenseReport
}

// UploadService processes an uploaded CSV export into a daily expense report
// and keeps recent reports available for re-fetching.
type UploadService interface {
	ProcessUpload(file io.Reader, filename string) (*UploadResult, error)
	GetReport(reportID string) (*UploadResult, error)
}
