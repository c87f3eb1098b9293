package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount parses a monetary cell. Thousands separators (",") are dropped;
// text that still does not parse yields zero, so callers must use
// IsExplicitZero to tell "0" apart from garbage.
func Amount(text string) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// IsExplicitZero reports whether the cell literally holds "0".
func IsExplicitZero(text string) bool {
	return strings.TrimSpace(text) == "0"
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Integer parses a non-negative integer cell.
func Integer(text string) (int, bool) {
	s := strings.TrimSpace(text)
	if !digitsOnly.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
