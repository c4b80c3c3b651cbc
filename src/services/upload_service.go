package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/vishal-keshav/expense-track/src/logger"
	"github.com/vishal-keshav/expense-track/src/parsers"
	"github.com/vishal-keshav/expense-track/src/processor"
	"github.com/vishal-keshav/expense-track/src/security/validation"
)

type uploadServiceImpl struct {
	expenseProcessor *processor.DailyExpenseProcessor
	reportCache      *cache.Cache
	uploadDir        string
}

func NewUploadService(
	expenseProcessor *processor.DailyExpenseProcessor,
	reportCache *cache.Cache,
	uploadDir string,
) UploadService {
	return &uploadServiceImpl{
		expenseProcessor: expenseProcessor,
		reportCache:      reportCache,
		uploadDir:        uploadDir,
	}
}

func (s *uploadServiceImpl) ProcessUpload(file io.Reader, filename string) (*UploadResult, error) {
	startTime := time.Now()
	format := parsers.DetectFormat(filename)
	logger.L.Info("ProcessUpload START", "filename", filename, "format", format.String())

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	stagedPath, err := s.stageUpload(filename, data)
	if err != nil {
		return nil, fmt.Errorf("staging upload: %w", err)
	}
	logger.L.Debug("Upload staged", "path", stagedPath)

	txs, err := parsers.GetParser(format).Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}

	report, err := s.expenseProcessor.Process(txs, format.SignPolicy())
	if err != nil {
		return nil, err
	}

	result := &UploadResult{
		ReportID:      uuid.NewString(),
		ExpenseReport: report,
	}
	s.reportCache.Set(result.ReportID, result, cache.DefaultExpiration)

	logger.L.Info("ProcessUpload END",
		"filename", filename,
		"format", format.String(),
		"reportID", result.ReportID,
		"days", len(report.Dates),
		"duration", time.Since(startTime))
	return result, nil
}

func (s *uploadServiceImpl) GetReport(reportID string) (*UploadResult, error) {
	if cached, found := s.reportCache.Get(reportID); found {
		return cached.(*UploadResult), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
}

// stageUpload writes the raw bytes under the upload directory, keyed by a
// fresh UUID so concurrent or repeated uploads of the same filename never
// clobber each other.
func (s *uploadServiceImpl) stageUpload(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}
	staged := filepath.Join(s.uploadDir, uuid.NewString()+"_"+validation.SanitizeFilename(filename))
	if err := os.WriteFile(staged, data, 0o644); err != nil {
		return "", fmt.Errorf("writing staged file: %w", err)
	}
	return staged, nil
}
