package dispatch

import (
	"encoding/json"

	"github.com/cleared-dev/gastos/internal/model"
)

// payload is the JSON body posted for one record.
type payload struct {
	Type          model.CanonicalType `json:"type"`
	Amount        json.Number         `json:"amount"`
	Date          string              `json:"date"`
	Store         model.StoreID       `json:"store"`
	Description   string              `json:"description"`
	DepositDate   string              `json:"depositDate,omitempty"`
	PaymentDate   string              `json:"paymentDate,omitempty"`
	Supplier      string              `json:"supplier,omitempty"`
	ClosingsCount *int                `json:"closingsCount,omitempty"`
	PeriodStart   string              `json:"periodStart,omitempty"`
	PeriodEnd     string              `json:"periodEnd,omitempty"`
}

func newPayload(r model.Record) payload {
	b := r.Common()
	date := b.Date.Format(model.DateFormat)
	// Closing and supplier records send an empty description.
	p := payload{
		Type:        r.Type(),
		Amount:      json.Number(b.Amount.StringFixed(2)),
		Date:        date,
		Store:       b.Store,
		Description: model.Description(r),
	}

	switch v := r.(type) {
	case model.IncomeRecord, model.ExpenseRecord:
	case model.SalaryRecord:
		p.DepositDate = date
	case model.ClosingRecord:
		p.DepositDate = date
		p.ClosingsCount = v.ClosingsCount
		if v.PeriodStart != nil {
			p.PeriodStart = v.PeriodStart.Format(model.DateFormat)
		}
		if v.PeriodEnd != nil {
			p.PeriodEnd = v.PeriodEnd.Format(model.DateFormat)
		}
	case model.SupplierRecord:
		p.PaymentDate = date
		p.Supplier = v.Supplier
	}
	return p
}
