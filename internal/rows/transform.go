package rows

import "github.com/cleared-dev/gastos/internal/model"

// Transform maps validated rows to records, one per row, in input order.
// Amounts are rounded to two fractional digits.
func Transform(v Validated) []model.Record {
	records := make([]model.Record, 0, len(v.rows))
	for _, p := range v.rows {
		records = append(records, p.record())
	}
	return records
}

func (p parsedRow) record() model.Record {
	base := model.Base{Amount: p.amount.Round(2), Date: p.date, Store: p.store}

	switch p.typ {
	case model.TypeIncome:
		return model.IncomeRecord{Base: base, Description: p.description}
	case model.TypeExpense:
		return model.ExpenseRecord{Base: base, Description: p.description}
	case model.TypeClosing:
		return model.ClosingRecord{
			Base:          base,
			ClosingsCount: p.closings,
			PeriodStart:   p.periodStart,
			PeriodEnd:     p.periodEnd,
		}
	case model.TypeSupplier:
		return model.SupplierRecord{Base: base, Supplier: p.supplier}
	case model.TypeSalary:
		return model.SalaryRecord{Base: base, Description: p.description}
	}
	// Validate only admits canonical types.
	panic("rows: unvalidated type " + string(p.typ))
}
