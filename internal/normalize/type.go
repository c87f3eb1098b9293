package normalize

import (
	"sort"
	"strings"

	"github.com/cleared-dev/gastos/internal/model"
)

// typeSynonyms maps every accepted spelling to its canonical type. Each
// spelling belongs to exactly one type.
var typeSynonyms = map[string]model.CanonicalType{
	"Ingreso":  model.TypeIncome,
	"Ingresos": model.TypeIncome,
	"Income":   model.TypeIncome,

	"Egreso":  model.TypeExpense,
	"Egresos": model.TypeExpense,
	"Gasto":   model.TypeExpense,
	"Gastos":  model.TypeExpense,
	"Expense": model.TypeExpense,

	"Cierre":             model.TypeClosing,
	"Cierres":            model.TypeClosing,
	"Cierre de caja":     model.TypeClosing,
	"Depósito de cierre": model.TypeClosing,
	"Closing":            model.TypeClosing,
	"Closing deposit":    model.TypeClosing,

	"Proveedor":        model.TypeSupplier,
	"Proveedores":      model.TypeSupplier,
	"Pago a proveedor": model.TypeSupplier,
	"Pago proveedor":   model.TypeSupplier,
	"Supplier":         model.TypeSupplier,
	"Supplier payment": model.TypeSupplier,

	"Salario":         model.TypeSalary,
	"Salarios":        model.TypeSalary,
	"Sueldo":          model.TypeSalary,
	"Pago de salario": model.TypeSalary,
	"Salary":          model.TypeSalary,
	"Salary payment":  model.TypeSalary,

	string(model.TypeIncome):   model.TypeIncome,
	string(model.TypeExpense):  model.TypeExpense,
	string(model.TypeClosing):  model.TypeClosing,
	string(model.TypeSupplier): model.TypeSupplier,
	string(model.TypeSalary):   model.TypeSalary,
}

var foldedSynonyms = func() map[string]model.CanonicalType {
	m := make(map[string]model.CanonicalType, len(typeSynonyms))
	for k, v := range typeSynonyms {
		m[Fold(k)] = v
	}
	return m
}()

// Type resolves text to a canonical type: exact spelling first, then a
// case- and accent-insensitive match. On a miss it returns the original text
// unchanged and false.
func Type(text string) (model.CanonicalType, bool) {
	s := strings.TrimSpace(text)
	if t, ok := typeSynonyms[s]; ok {
		return t, true
	}
	if t, ok := foldedSynonyms[Fold(s)]; ok {
		return t, true
	}
	return model.CanonicalType(text), false
}

// TypeSynonyms returns the accepted spellings for t in alphabetical order,
// excluding the internal token.
func TypeSynonyms(t model.CanonicalType) []string {
	var out []string
	for k, v := range typeSynonyms {
		if v == t && k != string(t) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
