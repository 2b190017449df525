package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// reMoney matches a monetary token: digits with optional thousands
// separators and exactly two decimal places, e.g. "1,350.00" or "75.50".
var reMoney = regexp.MustCompile(`\d[\d,]*\.\d{2}`)

// ParseAmount converts a monetary string like "135,000.00" or "7.5%" to a
// decimal, stripping thousands separators and percent signs.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	return decimal.NewFromString(s)
}

// validAmount reports whether a monetary token survives numeric conversion.
func validAmount(s string) bool {
	_, err := ParseAmount(s)
	return err == nil
}
