// Package rows validates imported spreadsheet rows and turns them into
// canonical records.
package rows

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/normalize"
)

// StoreResolver matches free text to a known store.
type StoreResolver interface {
	Resolve(text string) (model.Store, bool)
	All() []model.Store
}

// Validated holds rows that passed validation, already parsed. Only Validate
// produces a non-empty Validated, so Transform never sees unchecked input.
type Validated struct {
	rows []parsedRow
}

// Len returns the number of validated rows.
func (v Validated) Len() int { return len(v.rows) }

type parsedRow struct {
	typ         model.CanonicalType
	amount      decimal.Decimal
	date        time.Time
	store       model.StoreID
	description string
	supplier    string
	closings    *int
	periodStart *time.Time
	periodEnd   *time.Time
}

// Validate checks rows against the required header and the per-type field
// rules. Every row is inspected and every problem is reported; the returned
// Validated is empty unless the result is valid.
func Validate(rows []model.RawRow, stores StoreResolver) (Validated, model.ValidationResult) {
	var res model.ValidationResult

	if len(rows) == 0 {
		res.Errors = []string{ErrEmpty}
		res.Issues = []error{errors.New(ErrEmpty)}
		return Validated{}, res
	}

	for _, col := range model.RequiredColumns {
		if !rows[0].Has(col) {
			addIssue(&res, StructuralError{Column: col})
		}
	}
	if len(res.Issues) > 0 {
		return Validated{}, res
	}

	storeHint := storeNames(stores)
	parsed := make([]parsedRow, 0, len(rows))
	for i, row := range rows {
		p, errs := validateRow(row, i+2, stores, storeHint)
		for _, e := range errs {
			addIssue(&res, e)
		}
		if len(errs) == 0 {
			parsed = append(parsed, p)
		}
	}

	if len(res.Issues) > 0 {
		return Validated{}, res
	}
	res.Valid = true
	return Validated{rows: parsed}, res
}

func validateRow(row model.RawRow, rowNum int, stores StoreResolver, storeHint string) (parsedRow, []error) {
	var p parsedRow
	var errs []error
	fail := func(field, value, reason string) {
		errs = append(errs, FieldError{Row: rowNum, Field: field, Value: value, Reason: reason})
	}
	cell := func(col string) string { return strings.TrimSpace(row[col]) }

	if tipo := cell(model.ColTipo); tipo == "" {
		fail(model.ColTipo, "", reasonRequired)
	} else if t, ok := normalize.Type(tipo); !ok {
		fail(model.ColTipo, tipo, reasonBadType)
	} else {
		p.typ = t
	}

	if monto := cell(model.ColMonto); monto == "" {
		fail(model.ColMonto, "", reasonRequired)
	} else {
		amt := normalize.Amount(monto)
		switch {
		case amt.IsZero() && !normalize.IsExplicitZero(monto):
			fail(model.ColMonto, monto, reasonBadNumber)
		case amt.IsNegative():
			fail(model.ColMonto, monto, reasonNegative)
		default:
			p.amount = amt
		}
	}

	if fecha := cell(model.ColFecha); fecha == "" {
		fail(model.ColFecha, "", reasonRequired)
	} else if d, ok := normalize.Date(fecha); !ok {
		fail(model.ColFecha, fecha, reasonBadDate)
	} else {
		p.date = d
	}

	if local := cell(model.ColLocal); local == "" {
		fail(model.ColLocal, "", reasonRequired)
	} else if st, ok := stores.Resolve(local); !ok {
		fail(model.ColLocal, local, fmt.Sprintf(reasonBadStoreFmt, storeHint))
	} else {
		p.store = st.ID
	}

	p.description = cell(model.ColDescripcion)
	p.supplier = cell(model.ColProveedor)

	if p.typ == model.TypeClosing {
		if v := cell(model.ColPeriodoInicio); v != "" {
			if d, ok := normalize.Date(v); ok {
				p.periodStart = &d
			} else {
				fail(model.ColPeriodoInicio, v, reasonBadDate)
			}
		}
		if v := cell(model.ColPeriodoFin); v != "" {
			if d, ok := normalize.Date(v); ok {
				p.periodEnd = &d
			} else {
				fail(model.ColPeriodoFin, v, reasonBadDate)
			}
		}
		if v := cell(model.ColCierresCantidad); v != "" {
			if n, ok := normalize.Integer(v); ok {
				p.closings = &n
			} else {
				fail(model.ColCierresCantidad, v, reasonBadCount)
			}
		}
	}

	return p, errs
}

func addIssue(res *model.ValidationResult, err error) {
	res.Issues = append(res.Issues, err)
	res.Errors = append(res.Errors, err.Error())
}

// storeNames renders "A o B" / "A, B o C" for error hints.
func storeNames(stores StoreResolver) string {
	all := stores.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " o " + names[len(names)-1]
	}
}
