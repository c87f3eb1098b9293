package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/cleared-dev/gastos/internal/model"
)

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fallbackLayouts are tried in order when a cell is not plain YYYY-MM-DD.
// Slash dates with a four-digit year are day-first; "01-02-06" is the
// month-first form spreadsheets emit for their built-in short date format.
var fallbackLayouts = []string{
	"2006/01/02",
	"2006-1-2",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"01-02-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"20060102",
}

// Date parses a calendar-day cell. No timezone conversion happens: the day
// written is the day returned, at UTC midnight.
func Date(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	if isoDate.MatchString(s) {
		t, err := time.Parse(model.DateFormat, s)
		return t, err == nil
	}

	for _, layout := range fallbackLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
