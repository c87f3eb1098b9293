package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale formats amounts as 1,234.56, which the importer reads back.
const DefaultLocale = "en-US"

// SpanishMonths are the month names used in default export file names.
var SpanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// amountFormatter renders amounts with two decimals, grouping the integer
// digits the way the locale does.
type amountFormatter struct {
	group string
}

// newAmountFormatter rejects locales whose amounts the importer cannot read
// back: the decimal separator must be "." and grouping, if any, ",".
func newAmountFormatter(locale string) (amountFormatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return amountFormatter{}, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	sample := message.NewPrinter(tag).Sprintf("%.2f", 1234.5)
	group, point, ok := separators(sample)
	if !ok || point != "." || (group != "," && group != "") {
		return amountFormatter{}, fmt.Errorf("locale %q writes amounts as %q, want 1,234.50", locale, sample)
	}
	return amountFormatter{group: group}, nil
}

// separators splits a rendering of 1234.5 into its grouping and decimal
// separators.
func separators(sample string) (group, point string, ok bool) {
	if !strings.HasPrefix(sample, "1") || !strings.HasSuffix(sample, "50") {
		return "", "", false
	}
	mid := sample[1 : len(sample)-2]
	i := strings.Index(mid, "234")
	if i < 0 {
		return "", "", false
	}
	return mid[:i], mid[i+3:], true
}

// format renders zero as a bare "0", the only zero spelling the importer
// accepts. Digits come from the decimal itself, so no precision is lost.
func (f amountFormatter) format(d decimal.Decimal) string {
	if d.Round(2).IsZero() {
		return "0"
	}
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + groupDigits(whole, f.group) + "." + frac
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// DefaultFileName is transacciones_<month>_<year>.xlsx for t.
func DefaultFileName(t time.Time, months [12]string) string {
	return fmt.Sprintf("transacciones_%s_%d.xlsx", months[t.Month()-1], t.Year())
}

// RangeFileName names an export bounded by from and to.
func RangeFileName(from, to time.Time) string {
	return fmt.Sprintf("transacciones_%s_%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02"))
}
