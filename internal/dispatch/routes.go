package dispatch

import "github.com/cleared-dev/gastos/internal/model"

// Backend endpoints, relative to the configured base URL.
const (
	PathTransactions     = "/transactions"
	PathClosingDeposits  = "/api/forms/closing-deposits"
	PathSupplierPayments = "/api/forms/supplier-payments"
	PathSalaryPayments   = "/api/forms/salary-payments"
)

// Route returns the endpoint a record of type t is posted to.
func Route(t model.CanonicalType) string {
	switch t {
	case model.TypeClosing:
		return PathClosingDeposits
	case model.TypeSupplier:
		return PathSupplierPayments
	case model.TypeSalary:
		return PathSalaryPayments
	default:
		return PathTransactions
	}
}
