package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized row after vendor-specific parsing. Amount
// keeps the vendor's sign convention; the aggregation step applies the
// format's SignPolicy to decide which rows count as expenses.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// SignPolicy is the per-format rule determining which transactions count as
// expenses and how their sign is normalized for display.
type SignPolicy int

const (
	// KeepPositive retains amounts > 0 unchanged (card exports report
	// charges as positive).
	KeepPositive SignPolicy = iota
	// KeepNegativeAsPositive retains amounts < 0 and negates them (bank
	// statements report debits as negative).
	KeepNegativeAsPositive
)

// Apply returns the non-negative display amount and whether the transaction
// is retained as an expense under this policy.
func (p SignPolicy) Apply(amount decimal.Decimal) (decimal.Decimal, bool) {
	if p == KeepNegativeAsPositive {
		if amount.IsNegative() {
			return amount.Neg(), true
		}
		return decimal.Zero, false
	}
	if amount.IsPositive() {
		return amount, true
	}
	return decimal.Zero, false
}

// LineItem is a single transaction as it appears in the report for a day.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ExpenseReport is the per-day aggregate returned to the client.
//
// Dates is the continuous calendar sequence from the earliest to the latest
// transaction date, ascending, with no gaps. Totals is index-aligned with
// Dates (0 for days without transactions). Items only contains keys for days
// that actually had transactions.
type ExpenseReport struct {
	Dates  []string              `json:"dates"`
	Totals []float64             `json:"totals"`
	Items  map[string][]LineItem `json:"items"`
}
