package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CanonicalType is one of the five recognized transaction categories.
type CanonicalType string

const (
	TypeIncome   CanonicalType = "income"
	TypeExpense  CanonicalType = "expense"
	TypeClosing  CanonicalType = "closing_deposit"
	TypeSupplier CanonicalType = "supplier_payment"
	TypeSalary   CanonicalType = "salary_payment"
)

// AllTypes lists the canonical types in display order.
var AllTypes = []CanonicalType{TypeIncome, TypeExpense, TypeClosing, TypeSupplier, TypeSalary}

// Label returns the Spanish label used in workbooks.
func (t CanonicalType) Label() string {
	switch t {
	case TypeIncome:
		return "Ingreso"
	case TypeExpense:
		return "Egreso"
	case TypeClosing:
		return "Cierre"
	case TypeSupplier:
		return "Proveedor"
	case TypeSalary:
		return "Salario"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the canonical types.
func (t CanonicalType) Valid() bool {
	for _, c := range AllTypes {
		if c == t {
			return true
		}
	}
	return false
}

// DateFormat is the calendar-day layout used on the wire and in workbooks.
const DateFormat = "2006-01-02"

// Base holds the fields shared by every record variant.
type Base struct {
	Amount decimal.Decimal // >= 0, two fractional digits
	Date   time.Time       // calendar day at UTC midnight
	Store  StoreID
}

// Record is a canonical transaction. The concrete type determines the
// backend form it is submitted to.
type Record interface {
	Type() CanonicalType
	Common() Base
	isRecord()
}

// IncomeRecord is money received at a store.
type IncomeRecord struct {
	Base
	Description string
}

// ExpenseRecord is a general store expense.
type ExpenseRecord struct {
	Base
	Description string
}

// ClosingRecord is a cash-closing deposit covering one or more closings.
type ClosingRecord struct {
	Base
	ClosingsCount *int
	PeriodStart   *time.Time
	PeriodEnd     *time.Time
}

// SupplierRecord is a payment to a supplier.
type SupplierRecord struct {
	Base
	Supplier string
}

// SalaryRecord is a salary payment.
type SalaryRecord struct {
	Base
	Description string
}

func (IncomeRecord) Type() CanonicalType   { return TypeIncome }
func (ExpenseRecord) Type() CanonicalType  { return TypeExpense }
func (ClosingRecord) Type() CanonicalType  { return TypeClosing }
func (SupplierRecord) Type() CanonicalType { return TypeSupplier }
func (SalaryRecord) Type() CanonicalType   { return TypeSalary }

func (r IncomeRecord) Common() Base   { return r.Base }
func (r ExpenseRecord) Common() Base  { return r.Base }
func (r ClosingRecord) Common() Base  { return r.Base }
func (r SupplierRecord) Common() Base { return r.Base }
func (r SalaryRecord) Common() Base   { return r.Base }

func (IncomeRecord) isRecord()   {}
func (ExpenseRecord) isRecord()  {}
func (ClosingRecord) isRecord()  {}
func (SupplierRecord) isRecord() {}
func (SalaryRecord) isRecord()   {}

// Description returns the free-text description of r, or "" for variants
// that do not carry one.
func Description(r Record) string {
	switch v := r.(type) {
	case IncomeRecord:
		return v.Description
	case ExpenseRecord:
		return v.Description
	case SalaryRecord:
		return v.Description
	default:
		return ""
	}
}
