package discover

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/vishal-keshav/expense-track/src/logger"
	"github.com/vishal-keshav/expense-track/src/models"
	"github.com/vishal-keshav/expense-track/src/utils"
)

// rawRow maps the columns of a Discover credit card export. The export
// carries more columns (category, post date) which gocsv ignores.
type rawRow struct {
	TransDate   string `csv:"Trans. Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// DiscoverParser parses Discover credit card CSV exports. Discover reports
// charges as positive amounts and payments/credits as negative; the expense
// filter (applied downstream) keeps amounts > 0 unchanged.
type DiscoverParser struct{}

func NewParser() *DiscoverParser {
	return &DiscoverParser{}
}

func (p *DiscoverParser) Parse(file io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows []rawRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("failed to read Discover CSV: %w", err)
	}

	var txs []models.Transaction
	for _, raw := range rows {
		date, err := utils.ParseDate(raw.TransDate)
		if err != nil {
			logger.L.Debug("Skipping Discover row with invalid date", "date", raw.TransDate)
			continue
		}
		amount, err := utils.ParseAmount(raw.Amount)
		if err != nil {
			logger.L.Debug("Skipping Discover row with invalid amount", "amount", raw.Amount)
			continue
		}
		if raw.Description == "" {
			continue
		}
		txs = append(txs, models.Transaction{
			Date:        date,
			Description: raw.Description,
			Amount:      amount,
		})
	}
	return txs, nil
}
