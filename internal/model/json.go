package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// recordJSON is the flat JSON shape of a Record, discriminated by type.
type recordJSON struct {
	Type          CanonicalType   `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Store         StoreID         `json:"store"`
	Description   string          `json:"description,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	ClosingsCount *int            `json:"closingsCount,omitempty"`
	PeriodStart   string          `json:"periodStart,omitempty"`
	PeriodEnd     string          `json:"periodEnd,omitempty"`
}

// DecodeRecords parses a JSON array of records.
func DecodeRecords(data []byte) ([]Record, error) {
	var raw []recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, r := range raw {
		rec, err := r.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeRecords renders records as an indented JSON array.
func EncodeRecords(records []Record) ([]byte, error) {
	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		out = append(out, fromRecord(r))
	}
	return json.MarshalIndent(out, "", "  ")
}

func (r recordJSON) toRecord() (Record, error) {
	if !r.Type.Valid() {
		return nil, fmt.Errorf("unknown record type %q", r.Type)
	}
	date, err := parseJSONDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", r.Date, err)
	}
	if r.Amount.IsNegative() {
		return nil, fmt.Errorf("negative amount %s", r.Amount)
	}
	if r.Store != Store1 && r.Store != Store2 {
		return nil, fmt.Errorf("unknown store %d", r.Store)
	}

	base := Base{Amount: r.Amount.Round(2), Date: date, Store: r.Store}
	switch r.Type {
	case TypeIncome:
		return IncomeRecord{Base: base, Description: r.Description}, nil
	case TypeExpense:
		return ExpenseRecord{Base: base, Description: r.Description}, nil
	case TypeSalary:
		return SalaryRecord{Base: base, Description: r.Description}, nil
	case TypeSupplier:
		return SupplierRecord{Base: base, Supplier: r.Supplier}, nil
	}

	rec := ClosingRecord{Base: base, ClosingsCount: r.ClosingsCount}
	if r.PeriodStart != "" {
		d, err := parseJSONDate(r.PeriodStart)
		if err != nil {
			return nil, fmt.Errorf("parsing periodStart %q: %w", r.PeriodStart, err)
		}
		rec.PeriodStart = &d
	}
	if r.PeriodEnd != "" {
		d, err := parseJSONDate(r.PeriodEnd)
		if err != nil {
			return nil, fmt.Errorf("parsing periodEnd %q: %w", r.PeriodEnd, err)
		}
		rec.PeriodEnd = &d
	}
	return rec, nil
}

func fromRecord(r Record) recordJSON {
	b := r.Common()
	out := recordJSON{
		Type:        r.Type(),
		Amount:      b.Amount,
		Date:        b.Date.Format(DateFormat),
		Store:       b.Store,
		Description: Description(r),
	}
	switch v := r.(type) {
	case SupplierRecord:
		out.Supplier = v.Supplier
	case ClosingRecord:
		out.ClosingsCount = v.ClosingsCount
		if v.PeriodStart != nil {
			out.PeriodStart = v.PeriodStart.Format(DateFormat)
		}
		if v.PeriodEnd != nil {
			out.PeriodEnd = v.PeriodEnd.Format(DateFormat)
		}
	}
	return out
}

// parseJSONDate accepts a calendar day or a timestamp whose date part is used.
func parseJSONDate(s string) (time.Time, error) {
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	return time.Parse(DateFormat, s)
}
