package statement

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../../testdata/statement_export.csv")
	require.NoError(t, err)

	p := NewParser()
	txs, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, txs, 4)

	// Amounts keep the statement's sign convention: debits negative.
	assert.Equal(t, "GROCERY OUTLET PURCHASE", txs[0].Description)
	assert.Equal(t, "-52.30", txs[0].Amount.StringFixed(2))
	assert.Equal(t, "2024-01-03", txs[0].Date.Format("2006-01-02"))

	assert.Equal(t, "COFFEE SHOP", txs[1].Description)
	assert.Equal(t, "-4.20", txs[1].Amount.StringFixed(2))

	assert.Equal(t, "PAYROLL DEPOSIT", txs[2].Description)
	assert.True(t, txs[2].Amount.IsPositive())

	assert.Equal(t, "ELECTRIC COMPANY BILL", txs[3].Description)
	assert.Equal(t, "-120.00", txs[3].Amount.StringFixed(2))
	assert.Equal(t, "2024-01-06", txs[3].Date.Format("2006-01-02"))
}

func TestStatementParser_SkipsPreambleRows(t *testing.T) {
	// Preamble rows would parse as garbage; all 7 must be discarded.
	csv := strings.Repeat("Some Header:,value\n", 7) +
		"01/03/2024,LUNCH,-12.50,987.50\n"

	txs, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "LUNCH", txs[0].Description)
	assert.Equal(t, "-12.50", txs[0].Amount.StringFixed(2))
}

func TestStatementParser_FileShorterThanPreamble(t *testing.T) {
	csv := "Account Number:,123\nCurrency:,USD\n"

	txs, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestStatementParser_ShortRowsSkipped(t *testing.T) {
	csv := strings.Repeat("x,y\n", 7) +
		"01/03/2024,ONLY TWO FIELDS\n" +
		"01/03/2024,KEPT,-3.00,997.00\n"

	txs, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "KEPT", txs[0].Description)
}

func TestStatementParser_RunningTotalDiscarded(t *testing.T) {
	csv := strings.Repeat("x,y\n", 7) +
		"01/03/2024,PURCHASE,-10.00,99999.99\n"

	txs, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "-10.00", txs[0].Amount.StringFixed(2))
}
