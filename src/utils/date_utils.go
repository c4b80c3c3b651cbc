package utils

import (
	"strings"
	"time"
)

// DisplayDateFormat is the date format used in report keys.
const DisplayDateFormat = "2006-01-02"

// dateLayouts are the input layouts accepted across the supported vendor
// exports, tried in order. Discover and Apple Card use US-style dates; the
// statement export has been seen with both US and ISO dates.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"01/02/06",
}

// ParseDate parses a date cell from a vendor CSV. It is best-effort: the
// caller treats an error as "this row has no usable date", not as a failure
// of the whole file.
func ParseDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
