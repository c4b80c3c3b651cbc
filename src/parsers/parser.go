package parsers

import (
	"io"

	"github.com/vishal-keshav/expense-track/src/models"
)

// Parser converts one vendor's CSV export into normalized transactions.
// Implementations apply the vendor's column mapping and silently drop rows
// that cannot be coerced (bad date, bad amount, empty description); amounts
// keep the vendor's sign. An error is returned only when the file as a whole
// cannot be read as delimited text.
type Parser interface {
	Parse(file io.Reader) ([]models.Transaction, error)
}
