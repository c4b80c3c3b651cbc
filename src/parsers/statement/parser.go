package statement

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vishal-keshav/expense-track/src/logger"
	"github.com/vishal-keshav/expense-track/src/models"
	"github.com/vishal-keshav/expense-track/src/utils"
)

const (
	// The statement export opens with account metadata before the data rows.
	skipRows = 7

	colDate        = 0
	colDescription = 1
	colAmount      = 2
	// Column 3 is a running balance and is discarded.

	minFields = 3
)

// StatementParser parses the default bank statement export: no header,
// positional columns date, description, amount, running_total. Debits are
// negative; the expense filter (applied downstream) keeps amounts < 0 and
// negates them.
type StatementParser struct{}

func NewParser() *StatementParser {
	return &StatementParser{}
}

func (p *StatementParser) Parse(file io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read statement CSV: %w", err)
	}

	if len(records) > skipRows {
		records = records[skipRows:]
	} else {
		records = nil
	}

	var txs []models.Transaction
	for _, record := range records {
		if len(record) < minFields {
			continue
		}
		date, err := utils.ParseDate(record[colDate])
		if err != nil {
			logger.L.Debug("Skipping statement row with invalid date", "date", record[colDate])
			continue
		}
		amount, err := utils.ParseAmount(record[colAmount])
		if err != nil {
			logger.L.Debug("Skipping statement row with invalid amount", "amount", record[colAmount])
			continue
		}
		if record[colDescription] == "" {
			continue
		}
		txs = append(txs, models.Transaction{
			Date:        date,
			Description: record[colDescription],
			Amount:      amount,
		})
	}
	return txs, nil
}
