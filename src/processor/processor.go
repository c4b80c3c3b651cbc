package processor

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vishal-keshav/expense-track/src/logger"
	"github.com/vishal-keshav/expense-track/src/models"
	"github.com/vishal-keshav/expense-track/src/utils"
)

// ErrNoValidData is returned when an upload yields no usable rows at all:
// every row was dropped during parsing, so there is no date range to
// aggregate over.
var ErrNoValidData = errors.New("no valid transactions found in file")

// DailyExpenseProcessor turns normalized transactions into a per-day expense
// report over the continuous calendar range spanned by the data.
type DailyExpenseProcessor struct{}

func NewDailyExpenseProcessor() *DailyExpenseProcessor {
	return &DailyExpenseProcessor{}
}

// Process aggregates transactions by calendar day. The date range spans every
// parsed transaction, but only rows retained by the sign policy contribute to
// totals and items; every day between the earliest and latest transaction
// date appears in the report, days without expenses with a total of 0.
// Totals are accumulated as decimals and only converted to floats when the
// report is assembled.
func (p *DailyExpenseProcessor) Process(txs []models.Transaction, policy models.SignPolicy) (*models.ExpenseReport, error) {
	if len(txs) == 0 {
		return nil, ErrNoValidData
	}

	minDate, maxDate := dateBounds(txs)

	sums := make(map[string]decimal.Decimal)
	items := make(map[string][]models.LineItem)
	retained := 0
	for _, tx := range txs {
		amount, ok := policy.Apply(tx.Amount)
		if !ok {
			continue
		}
		retained++
		key := tx.Date.Format(utils.DisplayDateFormat)
		sums[key] = sums[key].Add(amount)
		items[key] = append(items[key], models.LineItem{
			Description: tx.Description,
			Amount:      amount.InexactFloat64(),
		})
	}

	var dates []string
	var totals []float64
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		key := d.Format(utils.DisplayDateFormat)
		dates = append(dates, key)
		totals = append(totals, sums[key].InexactFloat64())
	}

	logger.L.Debug("Aggregated expense report",
		"transactions", len(txs),
		"retained", retained,
		"days", len(dates),
		"from", dates[0],
		"to", dates[len(dates)-1])

	return &models.ExpenseReport{
		Dates:  dates,
		Totals: totals,
		Items:  items,
	}, nil
}

// dateBounds returns the earliest and latest transaction dates, truncated to
// midnight so the day-by-day walk lines up with the grouping keys.
func dateBounds(txs []models.Transaction) (time.Time, time.Time) {
	minDate := truncateToDay(txs[0].Date)
	maxDate := minDate
	for _, tx := range txs[1:] {
		d := truncateToDay(tx.Date)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}
	return minDate, maxDate
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
