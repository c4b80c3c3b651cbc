package parsers

import (
	"strings"

	"github.com/vishal-keshav/expense-track/src/models"
	"github.com/vishal-keshav/expense-track/src/parsers/applecard"
	"github.com/vishal-keshav/expense-track/src/parsers/discover"
	"github.com/vishal-keshav/expense-track/src/parsers/statement"
)

// Format identifies one of the supported vendor CSV layouts.
type Format int

const (
	// FormatStatement is the default bank statement export: headerless,
	// positional columns, 7 preamble rows.
	FormatStatement Format = iota
	FormatDiscover
	FormatApple
)

func (f Format) String() string {
	switch f {
	case FormatDiscover:
		return "discover"
	case FormatApple:
		return "apple"
	default:
		return "statement"
	}
}

// SignPolicy returns the expense-retention rule for this format's vendor:
// card exports report charges as positive, the bank statement reports debits
// as negative.
func (f Format) SignPolicy() models.SignPolicy {
	if f == FormatStatement {
		return models.KeepNegativeAsPositive
	}
	return models.KeepPositive
}

// DetectFormat classifies an uploaded file by its filename. Matching is
// case-sensitive and checked in order; anything unrecognized falls through to
// the statement format rather than failing.
func DetectFormat(filename string) Format {
	switch {
	case strings.HasPrefix(filename, "Discover"):
		return FormatDiscover
	case strings.HasPrefix(filename, "Apple"):
		return FormatApple
	default:
		return FormatStatement
	}
}

// GetParser returns the parser for a format. There is no error case: unknown
// values map to the statement parser, mirroring DetectFormat's default.
func GetParser(format Format) Parser {
	switch format {
	case FormatDiscover:
		return discover.NewParser()
	case FormatApple:
		return applecard.NewParser()
	default:
		return statement.NewParser()
	}
}
