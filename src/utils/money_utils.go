package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a currency cell into a decimal. It tolerates the
// decorations seen in bank exports: a currency sign, thousands separators,
// and accounting-style parentheses for negatives.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
