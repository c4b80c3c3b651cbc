package applecard

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/vishal-keshav/expense-track/src/logger"
	"github.com/vishal-keshav/expense-track/src/models"
	"github.com/vishal-keshav/expense-track/src/utils"
)

type rawRow struct {
	TransactionDate string `csv:"Transaction Date"`
	Description     string `csv:"Description"`
	AmountUSD       string `csv:"Amount (USD)"`
}

// AppleCardParser parses Apple Card monthly transaction exports. Like
// Discover, purchases are positive and payments negative; the expense filter
// (applied downstream) keeps amounts > 0 unchanged.
type AppleCardParser struct{}

func NewParser() *AppleCardParser {
	return &AppleCardParser{}
}

func (p *AppleCardParser) Parse(file io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows []rawRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("failed to read Apple Card CSV: %w", err)
	}

	var txs []models.Transaction
	for _, raw := range rows {
		date, err := utils.ParseDate(raw.TransactionDate)
		if err != nil {
			logger.L.Debug("Skipping Apple Card row with invalid date", "date", raw.TransactionDate)
			continue
		}
		amount, err := utils.ParseAmount(raw.AmountUSD)
		if err != nil {
			logger.L.Debug("Skipping Apple Card row with invalid amount", "amount", raw.AmountUSD)
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
