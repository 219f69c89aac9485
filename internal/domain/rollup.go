package domain

import "github.com/shopspring/decimal"

// Rollup summarizes one slice of the ledger. Pending is always derived as
// Total minus Paid at construction and may go negative when a slice has been
// overpaid.
type Rollup struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

// NewRollup builds a rollup from a total and a paid amount.
func NewRollup(total, paid decimal.Decimal) Rollup {
	return Rollup{
		Total:   total,
		Paid:    paid,
		Pending: total.Sub(paid),
	}
}

// Add combines two rollups component-wise.
func (r Rollup) Add(o Rollup) Rollup {
	return Rollup{
		Total:   r.Total.Add(o.Total),
		Paid:    r.Paid.Add(o.Paid),
		Pending: r.Pending.Add(o.Pending),
	}
}

// Sub subtracts a rollup component-wise. Net revenue is the sales rollup
// minus the expense rollup; subtracting the pending components yields the
// same value as recomputing total minus paid on the result.
func (r Rollup) Sub(o Rollup) Rollup {
	return Rollup{
		Total:   r.Total.Sub(o.Total),
		Paid:    r.Paid.Sub(o.Paid),
		Pending: r.Pending.Sub(o.Pending),
	}
}

// Report is the full output of one aggregation: per-category and per-domain
// rollups plus the net revenue figure. Reports are recomputed wholesale on
// every invocation and never mutated.
type Report struct {
	Categories map[Category]Rollup `json:"categories"`
	Domains    map[Domain]Rollup   `json:"domains"`
	Revenue    Rollup              `json:"revenue"`
}
