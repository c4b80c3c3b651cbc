package discover

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../../testdata/Discover-Statement-20240131.csv")
	require.NoError(t, err)

	p := NewParser()
	txs, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, txs, 4)

	assert.Equal(t, "STARBUCKS STORE 1234", txs[0].Description)
	assert.Equal(t, "5.75", txs[0].Amount.StringFixed(2))
	assert.Equal(t, "2024-01-02", txs[0].Date.Format("2006-01-02"))

	assert.Equal(t, "AMAZON MKTPL*AB1CD", txs[1].Description)
	assert.Equal(t, "23.49", txs[1].Amount.StringFixed(2))

	// Payments come through with their vendor sign; the expense filter is
	// applied during aggregation, not here.
	assert.Equal(t, "INTERNET PAYMENT - THANK YOU", txs[2].Description)
	assert.Equal(t, "-150.00", txs[2].Amount.StringFixed(2))

	assert.Equal(t, "SHELL OIL 5771", txs[3].Description)
	assert.Equal(t, "41.20", txs[3].Amount.StringFixed(2))
	assert.Equal(t, "2024-01-07", txs[3].Date.Format("2006-01-02"))
}

func TestDiscoverParser_DropsUnparseableRows(t *testing.T) {
	csv := "Trans. Date,Post Date,Description,Amount,Category\n" +
		"notadate,01/05/2024,UNPARSEABLE DATE,5.00,Misc\n" +
		"01/05/2024,01/05/2024,,5.00,Misc\n" +
		"01/05/2024,01/05/2024,UNPARSEABLE AMOUNT,abc,Misc\n" +
		"01/05/2024,01/05/2024,KEPT ROW,5.00,Misc\n"

	txs, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "KEPT ROW", txs[0].Description)
}

func TestDiscoverParser_ExtraColumnsIgnored(t *testing.T) {
	csv := "Trans. Date,Post Date,Description,Amount,Category\n" +
		"01/05/2024,01/05/2024,COFFEE,5.00,Restaurants\n"

	txs, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "5.00", txs[0].Amount.StringFixed(2))
}

func TestDiscoverParser_EmptyFile(t *testing.T) {
	txs, err := NewParser().Parse(strings.NewReader("Trans. Date,Post Date,Description,Amount,Category\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}
